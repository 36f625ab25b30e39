package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type JournalEntry struct {
	ID        uuid.UUID                   `json:"_id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID                   `json:"user" gorm:"type:uuid;not null;index"`
	Date      time.Time                   `json:"date" gorm:"not null"`
	Mood      string                      `json:"mood" gorm:"not null"`
	Entry     string                      `json:"entry" gorm:"not null"`
	Tags      datatypes.JSONSlice[string] `json:"tags"`
	CreatedAt time.Time                   `json:"createdAt"`
	UpdatedAt time.Time                   `json:"updatedAt"`
}
