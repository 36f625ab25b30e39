package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/mindmate/mindmate-server/internal/domain"
	"gorm.io/gorm"
)

type journalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) *journalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) Create(ctx context.Context, entry *domain.JournalEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *journalRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.JournalEntry, error) {
	var entries []*domain.JournalEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateOwned replaces the mutable fields of the entry matching both id and
// owner. Zero rows affected means the entry does not exist or belongs to a
// different user; both surface as gorm.ErrRecordNotFound.
func (r *journalRepository) UpdateOwned(ctx context.Context, id, userID uuid.UUID, fields *domain.JournalEntry) (*domain.JournalEntry, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.JournalEntry{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"date":  fields.Date,
			"mood":  fields.Mood,
			"entry": fields.Entry,
			"tags":  fields.Tags,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var updated domain.JournalEntry
	err := r.db.WithContext(ctx).First(&updated, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *journalRepository) DeleteOwned(ctx context.Context, id, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Delete(&domain.JournalEntry{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
