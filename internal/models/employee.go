package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Employee matches the employees table.
type Employee struct {
	ID         uuid.UUID       `json:"id"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Email      string          `json:"email"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
	HireDate   time.Time       `json:"hire_date"`
	Active     bool            `json:"active"`
}

func (e *Employee) Prepare() {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.FirstName = strings.TrimSpace(e.FirstName)
	e.LastName = strings.TrimSpace(e.LastName)
	e.Email = strings.ToLower(strings.TrimSpace(e.Email))
	e.Department = strings.TrimSpace(e.Department)
	if e.HireDate.IsZero() {
		e.HireDate = time.Now()
	}
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
