package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeeklyAvailability is one recurring window per employee per weekday.
// DayOfWeek uses the store convention 1=Sunday .. 7=Saturday. Multiple
// rows per day are independent windows. Lunch-break rows are stored for
// display only and are not subtracted from availability.
type WeeklyAvailability struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	EmployeeID   uuid.UUID `json:"employee_id" gorm:"type:uuid;index"`
	DayOfWeek    int       `json:"day_of_week"`
	StartTime    string    `json:"start_time"` // "HH:MM", 24h
	EndTime      string    `json:"end_time"`
	IsLunchBreak bool      `json:"is_lunch_break" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (a *WeeklyAvailability) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// EmployeeBlock is an ad-hoc unavailable interval for one employee on
// one date (day off, partial block).
type EmployeeBlock struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `json:"employee_id" gorm:"type:uuid;index"`
	BlockDate  time.Time `json:"block_date" gorm:"index"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (b *EmployeeBlock) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

type Holiday struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	HolidayDate time.Time `json:"holiday_date" gorm:"uniqueIndex"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (h *Holiday) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
