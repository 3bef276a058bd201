package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// MenuItemRequest is the body for creating or editing a menu item.
type MenuItemRequest struct {
	Name           string                 `json:"name"`
	Category       string                 `json:"category"`
	Description    string                 `json:"description"`
	BasePrice      decimal.Decimal        `json:"base_price"`
	ImageURL       string                 `json:"image_url"`
	Customizations []CustomizationRequest `json:"customizations"`
}

// CustomizationRequest is an add-on offered with a menu item.
type CustomizationRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// MenuItemResponse represents a menu item.
type MenuItemResponse struct {
	ID             int64                   `json:"id"`
	Name           string                  `json:"name"`
	Category       string                  `json:"category"`
	Description    string                  `json:"description"`
	BasePrice      json.Number             `json:"base_price"`
	ImageURL       string                  `json:"image_url"`
	Customizations []CustomizationResponse `json:"customizations"`
	Active         bool                    `json:"active"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// CustomizationResponse is an add-on in responses.
type CustomizationResponse struct {
	Name  string      `json:"name"`
	Price json.Number `json:"price"`
}
