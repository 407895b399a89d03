package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is a bookable catalog entry. DurationMin is the actual
// appointment length in minutes; DurationMax bounds how much calendar
// time a slot must clear before it can be offered.
type Service struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	PriceCents  int             `json:"price_cents"`
	DurationMin int             `json:"duration_min"`
	DurationMax int             `json:"duration_max"`
	Active      bool            `json:"active" gorm:"default:true"`
	Options     []ServiceOption `json:"options,omitempty" gorm:"foreignKey:ServiceID"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ServiceOption carries signed price/duration deltas applied on top of
// its parent service when chosen at booking time.
type ServiceOption struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ServiceID        uuid.UUID `json:"service_id" gorm:"type:uuid"`
	Name             string    `json:"name"`
	PriceDeltaCents  int       `json:"price_delta_cents"`
	DurationDeltaMin int       `json:"duration_delta_min"`
	Active           bool      `json:"active" gorm:"default:true"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (o *ServiceOption) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
