package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Active    bool       `json:"active" gorm:"default:true"`
	Services  []Service  `json:"services,omitempty" gorm:"many2many:employee_services;"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Offers reports whether the employee is qualified for the service.
// Services must be preloaded.
func (e *Employee) Offers(serviceID uuid.UUID) bool {
	for _, s := range e.Services {
		if s.ID == serviceID {
			return true
		}
	}
	return false
}
