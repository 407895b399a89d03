package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ExpenseFixed     = "FIXED"
	ExpenseVariable  = "VARIABLE"
	ExpenseMaterials = "MATERIALS"
	ExpenseEmployees = "EMPLOYEES"
	ExpenseOther     = "OTHER"
)

type Expense struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Category    string    `json:"category"`
	AmountCents int       `json:"amount_cents"`
	ExpenseDate time.Time `json:"expense_date" gorm:"index"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
