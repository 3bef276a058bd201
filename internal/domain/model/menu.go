package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customization is an optional add-on for a menu item.
type Customization struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// MenuItem represents a dish offered to customers.
type MenuItem struct {
	ID             int64
	Name           string
	Category       string
	Description    string
	BasePrice      decimal.Decimal
	ImageURL       string
	Customizations []Customization
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
