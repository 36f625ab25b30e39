package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mindmate/mindmate-server/internal/api/handlers"
	"github.com/mindmate/mindmate-server/internal/api/middleware"
	"github.com/mindmate/mindmate-server/internal/config"
	"github.com/mindmate/mindmate-server/internal/service"
	"github.com/mindmate/mindmate-server/internal/token"
)

func NewRouter(services *service.Services, tokens *token.Manager, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.CORS(cfg.CORSOrigin))

	// Health check
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("API is running..."))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, tokens.TTL())
	journalHandler := handlers.NewJournalHandler(services.Journal)
	chatHandler := handlers.NewChatHandler(services.Chat)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)

			// Login status check
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(tokens))
				r.Get("/", authHandler.Me)
			})
		})

		r.Route("/journal", func(r chi.Router) {
			r.Use(middleware.Auth(tokens))
			r.Post("/", journalHandler.Create)
			r.Get("/", journalHandler.List)
			r.Put("/{id}", journalHandler.Update)
			r.Delete("/{id}", journalHandler.Delete)
		})

		r.Route("/chat", func(r chi.Router) {
			r.Use(middleware.Auth(tokens))
			r.Post("/", chatHandler.Send)
		})
	})

	return r
}
