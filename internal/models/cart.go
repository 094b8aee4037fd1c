package models

import "time"

// FlavorStandard is the sentinel flavor meaning "no flavor selected"; it is
// never shown in the line item spec string and never carries an upcharge.
const FlavorStandard = "Standard"

// LineItem is one configured entry in a session cart. Line items are
// immutable after creation; removal and re-add is the only mutation path.
type LineItem struct {
	ID       string  `json:"id"`
	ItemName string  `json:"itemName"`
	Emoji    string  `json:"emoji,omitempty"`
	Specs    string  `json:"specs"`
	Qty      int     `json:"qty"`
	Price    float64 `json:"price"`
	CanShip  bool    `json:"canShip"`
}

// Cart is the ordered sequence of line items for one storefront session.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
	Subtotal  float64    `json:"subtotal"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// AddItemRequest is the selection a shopper makes on a product card.
type AddItemRequest struct {
	ProductID  int    `json:"product_id" validate:"gte=0"`
	Size       string `json:"size" validate:"required"`
	Flavor     string `json:"flavor,omitempty"`
	Quantity   int    `json:"quantity,omitempty"`
	GlutenFree bool   `json:"gluten_free,omitempty"`
	SugarFree  bool   `json:"sugar_free,omitempty"`
}

// AddItemResponse returns the refreshed cart plus the interface hint that
// the product's quantity input resets to 1 after a successful add.
type AddItemResponse struct {
	Cart          *Cart  `json:"cart"`
	Added         string `json:"added"`
	ResetQuantity int    `json:"reset_quantity"`
}
