package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mindmate/mindmate-server/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// JournalRepository scopes every read and mutation by the owning user ID.
// There is no unscoped variant: the owner filter is part of the query, not
// an application-level check after the fact.
type JournalRepository interface {
	Create(ctx context.Context, entry *domain.JournalEntry) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.JournalEntry, error)
	UpdateOwned(ctx context.Context, id, userID uuid.UUID, fields *domain.JournalEntry) (*domain.JournalEntry, error)
	DeleteOwned(ctx context.Context, id, userID uuid.UUID) error
}

type Repositories struct {
	User    UserRepository
	Journal JournalRepository
}
