package postgres

import (
	"github.com/mindmate/mindmate-server/internal/domain"
	"github.com/mindmate/mindmate-server/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables. The unique index on users.email is the
	// authoritative uniqueness guard; the application-level duplicate
	// check is only a fast path.
	err = db.AutoMigrate(
		&domain.User{},
		&domain.JournalEntry{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:    NewUserRepository(db),
		Journal: NewJournalRepository(db),
	}
}
