package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusNoShow    AppointmentStatus = "NO_SHOW"
)

// OptionSnapshot freezes a chosen option's identity at booking time so
// later catalog edits never rewrite history.
type OptionSnapshot struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type OptionsSnapshot []OptionSnapshot

// Value implements the driver.Valuer interface.
func (o OptionsSnapshot) Value() (driver.Value, error) {
	if len(o) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface.
func (o *OptionsSnapshot) Scan(value interface{}) error {
	if value == nil {
		*o = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal OptionsSnapshot: unsupported type %T", value)
	}
	return json.Unmarshal(data, o)
}

// Appointment is a reservation. Price, duration, client contact fields
// and chosen options are snapshots captured at booking time.
//
// The partial unique index over (employee, date, start time) on
// CONFIRMED rows is the storage-level backstop against double booking.
// Cancelled and no-show rows stay out of the index so a freed slot can
// be rebooked and cancelled again without tripping it.
type Appointment struct {
	ID              uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	ClientID        uuid.UUID         `json:"client_id" gorm:"type:uuid;index"`
	Client          User              `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	EmployeeID      uuid.UUID         `json:"employee_id" gorm:"type:uuid;uniqueIndex:ux_confirmed_slot"`
	Employee        Employee          `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	ServiceID       uuid.UUID         `json:"service_id" gorm:"type:uuid"`
	Service         Service           `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	AppointmentDate time.Time         `json:"appointment_date" gorm:"uniqueIndex:ux_confirmed_slot"`
	StartTime       string            `json:"start_time" gorm:"uniqueIndex:ux_confirmed_slot,where:status = 'CONFIRMED'"` // "HH:MM"
	EndTime         string            `json:"end_time"`
	Status          AppointmentStatus `json:"status" gorm:"index"`
	PriceCents      int               `json:"price_cents"`
	DurationMin     int               `json:"duration_min"`
	ClientName      string            `json:"client_name"`
	ClientEmail     string            `json:"client_email"`
	ClientPhone     string            `json:"client_phone"`
	OptionsSnapshot OptionsSnapshot   `json:"options_snapshot,omitempty" gorm:"type:json"`
	CancelledAt     *time.Time        `json:"cancelled_at,omitempty"`
	CancelReason    string            `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = StatusConfirmed
	}
	return nil
}

// CanTransition reports whether the status change is allowed:
// CONFIRMED -> CANCELLED or NO_SHOW; terminal states never transition.
func (a *Appointment) CanTransition(next AppointmentStatus) bool {
	if a.Status != StatusConfirmed {
		return false
	}
	return next == StatusCancelled || next == StatusNoShow
}

// Substitution is an immutable audit record of a staff reassignment.
type Substitution struct {
	ID                 uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AppointmentID      uuid.UUID `json:"appointment_id" gorm:"type:uuid;index"`
	PreviousEmployeeID uuid.UUID `json:"previous_employee_id" gorm:"type:uuid"`
	NewEmployeeID      uuid.UUID `json:"new_employee_id" gorm:"type:uuid"`
	SubstitutedAt      time.Time `json:"substituted_at"`
	SubstitutedBy      string    `json:"substituted_by"`
}

func (s *Substitution) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.SubstitutedAt.IsZero() {
		s.SubstitutedAt = time.Now()
	}
	return nil
}
