package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PlaceOrderRequest is the JSON body of POST /place_order. Form posts carry the
// same field names, with order_items holding either text or a JSON list of items.
type PlaceOrderRequest struct {
	CustomerName  string              `json:"customer_name"`
	CustomerPhone string              `json:"customer_phone"`
	OrderItems    string              `json:"order_items"`
	DetailedItems []LineItemRequest   `json:"detailed_items"`
	TotalPrice    decimal.NullDecimal `json:"total_price"`
}

// LineItemRequest describes a structured order position.
type LineItemRequest struct {
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	Customizations []string        `json:"customizations"`
}

// StatusFormRequest is the body of POST /update_order_status.
type StatusFormRequest struct {
	OrderID int64  `json:"order_id" form:"order_id"`
	Status  string `json:"status" form:"status"`
}

// StatusRequest is the body of POST /orders/:id/status.
type StatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	ID            int64              `json:"id"`
	OrderNumber   string             `json:"order_number"`
	CustomerName  string             `json:"customer_name"`
	CustomerPhone *string            `json:"customer_phone,omitempty"`
	OrderItems    string             `json:"order_items"`
	DetailedItems []LineItemResponse `json:"detailed_items,omitempty"`
	TotalPrice    json.Number        `json:"total_price"`
	Status        string             `json:"status"`
	OrderTime     time.Time          `json:"order_time"`
	CompletedTime *time.Time         `json:"completed_time,omitempty"`
}

// LineItemResponse describes a structured order position in responses.
type LineItemResponse struct {
	Name           string      `json:"name"`
	Price          json.Number `json:"price"`
	Quantity       int         `json:"quantity"`
	Customizations []string    `json:"customizations,omitempty"`
}

// DisplayOrderResponse is an entry of the public display board. It carries no
// phone number or price.
type DisplayOrderResponse struct {
	ID           int64  `json:"id"`
	OrderNumber  string `json:"order_number"`
	CustomerName string `json:"customer_name"`
	OrderItems   string `json:"order_items"`
	Status       string `json:"status"`
	TimeInfo     string `json:"time_info"`
}

// StatusUpdateResponse acknowledges a status change.
type StatusUpdateResponse struct {
	Updated bool          `json:"updated"`
	Order   OrderResponse `json:"order"`
}
