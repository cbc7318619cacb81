package models

import (
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Customer matches the customers table.
// Columns: id, name, email (NOT NULL UNIQUE), phone, city, created_at
type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	City      *string   `json:"city,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Customer) Prepare() {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.Name = html.EscapeString(strings.TrimSpace(c.Name))
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
}
