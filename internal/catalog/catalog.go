// Package catalog holds the product-list business rules: per-product price
// lookup, display filtering and sorting, and the grouped category ordering.
// Everything here is pure; loading the feed lives in the repository layer.
package catalog

import (
	"sort"
	"strings"

	"github.com/bluemoonhaven/bakery-storefront/internal/models"
)

// CategoryOrder is the preferred display ordering for known categories.
// Cookies always lead; categories not listed here are appended after, in
// alphabetical order.
var CategoryOrder = []string{
	"Cookies",
	"Cakes",
	"Cupcakes",
	"Breads",
	"Pies",
}

// CookieBands splits the Cookies category into fixed display bands.
// Cookies whose subcategory is not one of these land in the last band.
var CookieBands = []string{
	"Classic",
	"Filled",
	"Seasonal",
}

// DefaultPrice returns the price shown on the product card before any size
// is selected: the base price if present, else the price of the first
// listed size. A record with neither pricing mode prices at zero rather
// than failing, so one malformed record never blocks the rest of the feed.
func DefaultPrice(p *models.Product) float64 {
	if p.BasePrice != nil {
		return *p.BasePrice
	}

	if len(p.Sizes) > 0 && p.SizePrice != nil {
		return p.SizePrice[p.Sizes[0]]
	}

	return 0
}

// PriceForSelection returns the unit price for a selected size: the size
// price when the product is size-priced, else the base price.
func PriceForSelection(p *models.Product, size string) float64 {
	if p.SizePrice != nil {
		if price, ok := p.SizePrice[size]; ok {
			return price
		}
	}

	if p.BasePrice != nil {
		return *p.BasePrice
	}

	return 0
}

// FlavorUpcharge returns the per-unit upcharge for a flavor, zero when the
// flavor is unpriced or is the Standard sentinel.
func FlavorUpcharge(p *models.Product, flavor string) float64 {
	if flavor == models.FlavorStandard || p.FlavorPrices == nil {
		return 0
	}

	return p.FlavorPrices[flavor]
}

// Filter returns the subsequence of products satisfying every supplied
// predicate. Category "all" (or empty) matches everything; search is a
// case-insensitive substring match on the name; the dietary predicates
// require the matching capability flag.
func Filter(products []models.Product, f models.CatalogFilter) []models.Product {

	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.Product, 0, len(products))

	for _, p := range products {

		if f.Category != "" && f.Category != "all" && p.Category != f.Category {
			continue
		}

		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}

		if f.GlutenFree && !p.CanGlutenFree {
			continue
		}

		if f.SugarFree && !p.CanSugarFree {
			continue
		}

		out = append(out, p)
	}

	return out
}

// Sort orders products for display. Ties keep their original feed order,
// so the sort must be stable. An unknown key leaves the order untouched.
func Sort(products []models.Product, key models.SortKey) []models.Product {

	out := make([]models.Product, len(products))
	copy(out, products)

	switch key {
	case models.SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case models.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return DefaultPrice(&out[i]) < DefaultPrice(&out[j])
		})
	case models.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return DefaultPrice(&out[i]) > DefaultPrice(&out[j])
		})
	}

	return out
}

// GroupByCategory arranges products into display bands: known categories in
// the preferred order with Cookies first (split into the fixed subcategory
// bands), then any unknown categories alphabetically.
func GroupByCategory(products []models.Product) []models.CategoryGroup {

	byCategory := make(map[string][]models.Product)

	for _, p := range products {
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	known := make(map[string]bool, len(CategoryOrder))
	for _, c := range CategoryOrder {
		known[c] = true
	}

	var groups []models.CategoryGroup

	for _, category := range CategoryOrder {

		items, ok := byCategory[category]
		if !ok {
			continue
		}

		if category == "Cookies" {
			groups = append(groups, cookieGroups(items)...)
			continue
		}

		groups = append(groups, models.CategoryGroup{Category: category, Products: items})
	}

	var unknown []string

	for category := range byCategory {
		if !known[category] {
			unknown = append(unknown, category)
		}
	}

	sort.Strings(unknown)

	for _, category := range unknown {
		groups = append(groups, models.CategoryGroup{Category: category, Products: byCategory[category]})
	}

	return groups
}

func cookieGroups(items []models.Product) []models.CategoryGroup {

	banded := make(map[string][]models.Product)

	inBand := make(map[string]bool, len(CookieBands))
	for _, b := range CookieBands {
		inBand[b] = true
	}

	lastBand := CookieBands[len(CookieBands)-1]

	for _, p := range items {
		band := p.Subcategory
		if !inBand[band] {
			band = lastBand
		}
		banded[band] = append(banded[band], p)
	}

	var groups []models.CategoryGroup

	for _, band := range CookieBands {
		if items, ok := banded[band]; ok {
			groups = append(groups, models.CategoryGroup{Category: "Cookies", Subcategory: band, Products: items})
		}
	}

	return groups
}
