package model

import "github.com/shopspring/decimal"

// OrderDraft is a customer's order as submitted. When DetailedItems are given the
// summary and total are derived from them.
type OrderDraft struct {
	CustomerName  string          `json:"customer_name" validate:"required,max=100"`
	CustomerPhone string          `json:"customer_phone" validate:"max=20"`
	Items         string          `json:"items" validate:"required_without=DetailedItems"`
	DetailedItems []LineItemDraft `json:"detailed_items" validate:"max=50,dive"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

// LineItemDraft is a structured order position as submitted.
type LineItemDraft struct {
	Name           string          `json:"name" validate:"required,max=100"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity" validate:"min=1,max=99"`
	Customizations []string        `json:"customizations" validate:"max=20,dive,max=100"`
}

// MenuItemDraft carries editable menu item fields.
type MenuItemDraft struct {
	Name           string               `json:"name" validate:"required,max=100"`
	Category       string               `json:"category" validate:"required,max=50"`
	Description    string               `json:"description" validate:"max=500"`
	BasePrice      decimal.Decimal      `json:"base_price"`
	ImageURL       string               `json:"image_url" validate:"omitempty,url,max=500"`
	Customizations []CustomizationDraft `json:"customizations" validate:"max=30,dive"`
}

// CustomizationDraft is an add-on offered with a menu item.
type CustomizationDraft struct {
	Name  string          `json:"name" validate:"required,max=100"`
	Price decimal.Decimal `json:"price"`
}
