package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product matches the products table.
// Columns: id, sku (NOT NULL UNIQUE), name, description, unit_price,
// units_in_stock, discontinued, created_at
type Product struct {
	ID           uuid.UUID       `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  *string         `json:"description,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	UnitsInStock int             `json:"units_in_stock"`
	Discontinued bool            `json:"discontinued"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (p *Product) Prepare() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.SKU = strings.ToUpper(strings.TrimSpace(p.SKU))
	p.Name = strings.TrimSpace(p.Name)
}
