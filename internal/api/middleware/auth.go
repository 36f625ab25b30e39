package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/mindmate/mindmate-server/internal/token"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

// Auth reads the session cookie, verifies the token and puts the
// authenticated user ID on the request context. Requests without a valid
// token are rejected with 401 before reaching the handler.
func Auth(tokens *token.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				unauthorized(w, "No token found in cookies.")
				return
			}

			userID, err := tokens.Verify(cookie.Value)
			if err != nil {
				log.Printf("ERROR [middleware.Auth] token verification failed: %v", err)
				unauthorized(w, "Invalid or expired token.")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
