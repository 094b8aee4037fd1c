package models

import "time"

// Fulfillment selects how the shopper receives the order. The two methods
// are mutually exclusive and drive which checkout fields are required and
// whether shipping cost is included. Pickup is the initial selection.
type Fulfillment string

const (
	FulfillmentPickup   Fulfillment = "Pickup"
	FulfillmentShipping Fulfillment = "Shipping"
)

// OrderTotals is fully derived from the cart plus the fulfillment selection.
// It is never stored independently: recomputing for the same input always
// yields the same output, and Deposit+Balance == Total at two decimals.
type OrderTotals struct {
	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shipping_cost"`
	Total        float64 `json:"total"`
	Deposit      float64 `json:"deposit"`
	Balance      float64 `json:"balance"`
}

// ShippingAddress is required when fulfillment is Shipping.
type ShippingAddress struct {
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
	State  string `json:"state,omitempty"`
	Zip    string `json:"zip,omitempty"`
}

// QuoteRequest asks for totals under a fulfillment selection without
// submitting anything.
type QuoteRequest struct {
	Fulfillment Fulfillment `json:"fulfillment" validate:"omitempty,oneof=Pickup Shipping"`
	Zip         string      `json:"zip,omitempty"`
}

// CheckoutRequest is the order form state at submission time.
type CheckoutRequest struct {
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	PaymentMethod string          `json:"payment_method"`
	Fulfillment   Fulfillment     `json:"fulfillment" validate:"omitempty,oneof=Pickup Shipping"`
	PickupDate    string          `json:"pickup_date,omitempty"`
	PickupTime    string          `json:"pickup_time,omitempty"`
	Shipping      ShippingAddress `json:"shipping,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// Order is one submitted, validated order as archived.
type Order struct {
	ID            string          `json:"id"`
	SessionID     string          `json:"session_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	PaymentMethod string          `json:"payment_method"`
	Fulfillment   Fulfillment     `json:"fulfillment"`
	PickupDate    string          `json:"pickup_date,omitempty"`
	PickupTime    string          `json:"pickup_time,omitempty"`
	Shipping      ShippingAddress `json:"shipping,omitempty"`
	Items         []LineItem      `json:"items"`
	Totals        OrderTotals     `json:"totals"`
	Summary       string          `json:"summary"`
	CreatedAt     time.Time       `json:"created_at"`
}

// OrderResponse is returned after a successful submission.
type OrderResponse struct {
	Order               *Order `json:"order"`
	PaymentInstructions string `json:"payment_instructions,omitempty"`
}
