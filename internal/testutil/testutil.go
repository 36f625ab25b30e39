package testutil

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mindmate/mindmate-server/internal/api"
	"github.com/mindmate/mindmate-server/internal/config"
	"github.com/mindmate/mindmate-server/internal/domain"
	"github.com/mindmate/mindmate-server/internal/repository"
	repoPostgres "github.com/mindmate/mindmate-server/internal/repository/postgres"
	"github.com/mindmate/mindmate-server/internal/service"
	"github.com/mindmate/mindmate-server/internal/token"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB manages a testcontainers PostgreSQL instance
type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// NewTestDB creates a new PostgreSQL testcontainer and returns a connection
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:15-alpine",
		tcPostgres.WithDatabase("test_mindmate"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	// Run migrations
	err = db.AutoMigrate(
		&domain.User{},
		&domain.JournalEntry{},
	)
	if err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	testDB := &TestDB{
		Container: container,
		DB:        db,
		DSN:       dsn,
	}

	t.Cleanup(func() {
		testDB.Cleanup()
	})

	return testDB
}

// Cleanup terminates the container
func (tdb *TestDB) Cleanup() {
	if tdb.Container != nil {
		ctx := context.Background()
		tdb.Container.Terminate(ctx)
	}
}

// Truncate clears all tables for test isolation
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	tables := []string{
		"journal_entries",
		"users",
	}

	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			t.Logf("warning: failed to truncate %s: %v", table, err)
		}
	}
}

// TestConfig returns a configuration suitable for testing
func TestConfig() *config.Config {
	return &config.Config{
		Port:           "0", // Random port
		Environment:    "test",
		CORSOrigin:     "http://localhost:5173",
		RequestTimeout: 10 * time.Second,
		JWTSecret:      "test-jwt-secret-key-for-testing-only",
		TokenTTL:       time.Hour,
		ChatBaseURL:    "http://invalid.invalid",
		ChatModel:      "test-model",
	}
}

// StubCompleter is a chat.Completer for tests. It records the last message
// and returns a canned reply or error.
type StubCompleter struct {
	Reply       string
	Err         error
	LastMessage string
}

func (s *StubCompleter) Complete(ctx context.Context, message string) (string, error) {
	s.LastMessage = message
	if s.Err != nil {
		return "", s.Err
	}
	return s.Reply, nil
}

// TestServer holds all components for integration testing
type TestServer struct {
	Server    *httptest.Server
	DB        *TestDB
	Repos     *repository.Repositories
	Services  *service.Services
	Tokens    *token.Manager
	Completer *StubCompleter
	Config    *config.Config
}

// NewTestServer creates a complete test server with all dependencies.
// The server is TLS so the Secure session cookie round-trips through a
// client cookie jar the same way it does in a browser.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	testDB := NewTestDB(t)
	cfg := TestConfig()

	repos := repoPostgres.NewRepositories(testDB.DB)
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	completer := &StubCompleter{Reply: "stub reply"}

	services := service.NewServices(repos, tokens, completer)
	router := api.NewRouter(services, tokens, cfg)

	server := httptest.NewTLSServer(router)

	ts := &TestServer{
		Server:    server,
		DB:        testDB,
		Repos:     repos,
		Services:  services,
		Tokens:    tokens,
		Completer: completer,
		Config:    cfg,
	}

	t.Cleanup(func() {
		server.Close()
	})

	return ts
}

// Client returns an HTTP client that trusts the test server's certificate
// and keeps cookies between requests. Each call returns a fresh client with
// its own jar, so tests can hold independent sessions.
func (ts *TestServer) Client(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}
	return &http.Client{
		Transport: ts.Server.Client().Transport,
		Jar:       jar,
	}
}

// BaseURL returns the test server's base URL
func (ts *TestServer) BaseURL() string {
	return ts.Server.URL
}

// APIURL returns the full API URL for a given path
func (ts *TestServer) APIURL(path string) string {
	return fmt.Sprintf("%s/api%s", ts.Server.URL, path)
}
