package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mindmate/mindmate-server/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("user_%s@test.com", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), 10)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// EntryBuilder creates journal entries owned by a given user
type EntryBuilder struct {
	userID uuid.UUID
	date   time.Time
	mood   string
	entry  string
	tags   []string
}

// NewEntryBuilder creates an EntryBuilder with default values
func NewEntryBuilder(userID uuid.UUID) *EntryBuilder {
	return &EntryBuilder{
		userID: userID,
		date:   time.Now(),
		mood:   "calm",
		entry:  "a default test entry",
		tags:   []string{},
	}
}

// WithDate sets the entry date
func (b *EntryBuilder) WithDate(date time.Time) *EntryBuilder {
	b.date = date
	return b
}

// WithMood sets the mood label
func (b *EntryBuilder) WithMood(mood string) *EntryBuilder {
	b.mood = mood
	return b
}

// WithEntry sets the entry text
func (b *EntryBuilder) WithEntry(text string) *EntryBuilder {
	b.entry = text
	return b
}

// WithTags sets the tags
func (b *EntryBuilder) WithTags(tags ...string) *EntryBuilder {
	b.tags = tags
	return b
}

// Build creates the journal entry in the database
func (b *EntryBuilder) Build(t *testing.T, db *gorm.DB) *domain.JournalEntry {
	t.Helper()

	entry := &domain.JournalEntry{
		ID:        uuid.New(),
		UserID:    b.userID,
		Date:      b.date,
		Mood:      b.mood,
		Entry:     b.entry,
		Tags:      datatypes.NewJSONSlice(b.tags),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create journal entry: %v", err)
	}

	return entry
}

// UserResponse matches the API auth response body
type UserResponse struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
}

// Signup registers a user through the API with the given client. The session
// cookie lands in the client's jar.
func (ts *TestServer) Signup(t *testing.T, client *http.Client, email, password string) UserResponse {
	t.Helper()

	resp := ts.PostJSON(t, client, "/auth/signup", map[string]string{
		"email":    email,
		"password": password,
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup failed with status %d", resp.StatusCode)
	}

	var user UserResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		t.Fatalf("failed to decode signup response: %v", err)
	}
	return user
}

// PostJSON sends a POST request with a JSON body
func (ts *TestServer) PostJSON(t *testing.T, client *http.Client, path string, body interface{}) *http.Response {
	t.Helper()
	return ts.doJSON(t, client, http.MethodPost, path, body)
}

// PutJSON sends a PUT request with a JSON body
func (ts *TestServer) PutJSON(t *testing.T, client *http.Client, path string, body interface{}) *http.Response {
	t.Helper()
	return ts.doJSON(t, client, http.MethodPut, path, body)
}

// Get sends a GET request
func (ts *TestServer) Get(t *testing.T, client *http.Client, path string) *http.Response {
	t.Helper()
	return ts.doJSON(t, client, http.MethodGet, path, nil)
}

// Delete sends a DELETE request
func (ts *TestServer) Delete(t *testing.T, client *http.Client, path string) *http.Response {
	t.Helper()
	return ts.doJSON(t, client, http.MethodDelete, path, nil)
}

func (ts *TestServer) doJSON(t *testing.T, client *http.Client, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.APIURL(path), reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}
