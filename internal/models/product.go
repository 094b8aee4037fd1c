package models

// Product is one record of the static product feed. Records are read-only;
// the ID is the positional index assigned when the feed is loaded.
//
// Exactly one pricing mode is populated: either BasePrice is set, or
// SizePrice carries a price for every listed size.
type Product struct {
	ID            int                `json:"id"`
	Name          string             `json:"name"`
	Emoji         string             `json:"emoji,omitempty"`
	Category      string             `json:"category"`
	Subcategory   string             `json:"subcategory,omitempty"`
	Image         string             `json:"image,omitempty"`
	BasePrice     *float64           `json:"basePrice,omitempty"`
	SizePrice     map[string]float64 `json:"sizePrice,omitempty"`
	Sizes         []string           `json:"sizes,omitempty"`
	Flavors       []string           `json:"flavors,omitempty"`
	FlavorPrices  map[string]float64 `json:"flavorPrices,omitempty"`
	FlavorNotes   map[string]string  `json:"flavorNotes,omitempty"`
	CanGlutenFree bool               `json:"canGlutenfree"`
	CanSugarFree  bool               `json:"canSugarfree"`
	CanShip       bool               `json:"canShip"`
}

// SortKey selects the catalog display ordering.
type SortKey string

const (
	SortNameAsc   SortKey = "name-asc"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// CatalogFilter carries the display predicates. The zero value matches
// every product; Category "all" (or empty) matches every category.
type CatalogFilter struct {
	Category   string `json:"category"`
	Search     string `json:"search"`
	GlutenFree bool   `json:"gluten_free"`
	SugarFree  bool   `json:"sugar_free"`
}

// CategoryGroup is one display band of the grouped catalog view.
type CategoryGroup struct {
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	Products    []Product `json:"products"`
}
