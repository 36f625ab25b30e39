package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mindmate/mindmate-server/internal/domain"
	"github.com/mindmate/mindmate-server/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrMissingEntryFields = errors.New("date, mood and entry are required")
)

// JournalService owns all journal reads and writes. The caller's user ID is a
// required parameter on every operation; client-supplied owner fields never
// reach this layer.
type JournalService struct {
	journalRepo repository.JournalRepository
}

func NewJournalService(journalRepo repository.JournalRepository) *JournalService {
	return &JournalService{journalRepo: journalRepo}
}

type EntryInput struct {
	Date  time.Time
	Mood  string
	Entry string
	Tags  []string
}

func (i EntryInput) validate() error {
	if i.Date.IsZero() || i.Mood == "" || i.Entry == "" {
		return ErrMissingEntryFields
	}
	return nil
}

// normalizedTags keeps omitted tags as an empty list so they serialize as
// [] instead of null.
func (i EntryInput) normalizedTags() []string {
	if i.Tags == nil {
		return []string{}
	}
	return i.Tags
}

func (s *JournalService) Create(ctx context.Context, userID uuid.UUID, input EntryInput) (*domain.JournalEntry, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	entry := &domain.JournalEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      input.Date,
		Mood:      input.Mood,
		Entry:     input.Entry,
		Tags:      datatypes.NewJSONSlice(input.normalizedTags()),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.journalRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *JournalService) List(ctx context.Context, userID uuid.UUID) ([]*domain.JournalEntry, error) {
	return s.journalRepo.ListByUserID(ctx, userID)
}

func (s *JournalService) Update(ctx context.Context, userID, entryID uuid.UUID, input EntryInput) (*domain.JournalEntry, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	fields := &domain.JournalEntry{
		Date:  input.Date,
		Mood:  input.Mood,
		Entry: input.Entry,
		Tags:  datatypes.NewJSONSlice(input.normalizedTags()),
	}

	updated, err := s.journalRepo.UpdateOwned(ctx, entryID, userID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}

	return updated, nil
}

func (s *JournalService) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	err := s.journalRepo.DeleteOwned(ctx, entryID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEntryNotFound
		}
		return err
	}
	return nil
}
