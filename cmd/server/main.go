package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mindmate/mindmate-server/internal/api"
	"github.com/mindmate/mindmate-server/internal/chat"
	"github.com/mindmate/mindmate-server/internal/config"
	"github.com/mindmate/mindmate-server/internal/repository/postgres"
	"github.com/mindmate/mindmate-server/internal/service"
	"github.com/mindmate/mindmate-server/internal/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Initialize repositories
	repos := postgres.NewRepositories(db)

	// Token manager and chat provider client, built once and injected
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	completer := chat.NewClient(cfg.ChatBaseURL, cfg.ChatAPIKey, cfg.ChatModel)

	// Initialize services
	services := service.NewServices(repos, tokens, completer)

	// Initialize router
	router := api.NewRouter(services, tokens, cfg)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
