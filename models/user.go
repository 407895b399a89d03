package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	RoleClient   = "client"
)

// User is a client account. Staff members are Employee records; an
// employee may additionally have a User with the "employee" role to
// log in and see their own agenda.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Password  string    `json:"password,omitempty"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role" gorm:"default:client"`
	Blocked   bool      `json:"blocked" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
