package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/mindmate/mindmate-server/internal/api/middleware"
	"github.com/mindmate/mindmate-server/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	tokenTTL    time.Duration
}

func NewAuthHandler(authService *service.AuthService, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokenTTL:    tokenTTL,
	}
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	result, err := h.authService.Signup(r.Context(), service.SignupInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists):
			respondMessage(w, http.StatusBadRequest, "Email already exists!")
		case errors.Is(err, service.ErrPasswordTooShort):
			respondMessage(w, http.StatusBadRequest, "Password must be at least 6 characters!")
		default:
			log.Printf("ERROR [auth.Signup] %v", err)
			respondMessage(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.setSessionCookie(w, result.Token)

	respondJSON(w, http.StatusCreated, UserResponse{
		ID:    result.User.ID.String(),
		Email: result.User.Email,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Please enter email and password.")
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailNotFound):
			respondMessage(w, http.StatusBadRequest, "Email not found.")
		case errors.Is(err, service.ErrInvalidCredentials):
			respondMessage(w, http.StatusBadRequest, "Incorrect password.")
		default:
			log.Printf("ERROR [auth.Login] %v", err)
			respondMessage(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.setSessionCookie(w, result.Token)

	respondJSON(w, http.StatusOK, UserResponse{
		ID:    result.User.ID.String(),
		Email: result.User.Email,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	// Clearing requires the same attributes the cookie was set with,
	// otherwise browsers keep the old one around.
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	respondMessage(w, http.StatusOK, "Logged out successfully.")
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondMessage(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("ERROR [auth.Me] %v", err)
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
