package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mindmate/mindmate-server/internal/domain"
	"github.com/mindmate/mindmate-server/internal/repository"
	"github.com/mindmate/mindmate-server/internal/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrEmailNotFound      = errors.New("email not found")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrUserNotFound       = errors.New("user not found")
)

const (
	minPasswordLength = 6
	bcryptCost        = 10
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Manager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

type SignupInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthResult carries the authenticated user and a freshly issued session
// token. The token travels to the client only as a cookie; it is never part
// of a response body.
type AuthResult struct {
	User  *domain.User
	Token string
}

func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	if len(input.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	// Fast-path duplicate check. The unique index on email is the real
	// guard; a concurrent signup that slips past this check fails on
	// insert and is mapped to the same error below.
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return s.issueToken(user)
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *domain.User) (*AuthResult, error) {
	signed, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		User:  user,
		Token: signed,
	}, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
