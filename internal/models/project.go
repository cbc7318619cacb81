package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Project matches the projects table. This model is persisted through the
// GORM session rather than raw SQL.
type Project struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string          `gorm:"type:text;not null" json:"name"`
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	Budget     decimal.Decimal `gorm:"type:numeric(14,2)" json:"budget"`
	Status     string          `gorm:"type:text;not null;default:active" json:"status"`
	StartDate  time.Time       `gorm:"type:date" json:"start_date"`
	EndDate    *time.Time      `gorm:"type:date" json:"end_date,omitempty"`
	CreatedAt  time.Time       `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

// ProjectAssignment links an employee to a project with a role.
type ProjectAssignment struct {
	ProjectID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"project_id"`
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey" json:"employee_id"`
	Role       string    `gorm:"type:text;not null" json:"role"`
	AssignedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"assigned_at"`
}

func (ProjectAssignment) TableName() string {
	return "project_assignments"
}
