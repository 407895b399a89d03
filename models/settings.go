package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudioSettings is a single studio-wide row. The scheduling package
// falls back to its own defaults when the row is absent.
type StudioSettings struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SlotMinutes   int       `json:"slot_minutes" gorm:"default:15"`
	BufferMinutes int       `json:"buffer_minutes" gorm:"default:10"`
	Timezone      string    `json:"timezone" gorm:"default:America/Sao_Paulo"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (s *StudioSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
