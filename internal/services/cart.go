package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bluemoonhaven/bakery-storefront/internal/catalog"
	"github.com/bluemoonhaven/bakery-storefront/internal/errors"
	"github.com/bluemoonhaven/bakery-storefront/internal/models"
	repository "github.com/bluemoonhaven/bakery-storefront/internal/repositories"
)

type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*models.Cart, error)
	AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.AddItemResponse, error)
	RemoveItem(ctx context.Context, sessionID string, index int) (*models.Cart, error)
	Clear(ctx context.Context, sessionID string) (*models.Cart, error)
	HasNonShippableItems(cart *models.Cart) bool
}

type cartService struct {
	store      repository.CartStore
	catalogSvc CatalogService
}

func NewCartService(store repository.CartStore, catalogSvc CatalogService) CartService {
	return &cartService{store: store, catalogSvc: catalogSvc}
}

func (s *cartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {

	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, errors.InternalError("Failed to retrieve cart").WithError(err)
	}

	if cart == nil {
		cart = newCart(sessionID)
	}

	return cart, nil
}

// AddItem prices the selection, appends an immutable line item and saves the
// cart. The line price is (unit price + flavor upcharge) × quantity, with
// the quantity defaulting to 1 when absent or non-positive. The response
// carries the reset-quantity hint so the product card's quantity input goes
// back to 1 after a successful add.
func (s *cartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.AddItemResponse, error) {

	product, err := s.catalogSvc.GetProduct(req.ProductID)
	if err != nil {
		return nil, err
	}

	qty := req.Quantity
	if qty <= 0 {
		qty = 1
	}

	flavor := req.Flavor
	if flavor == "" {
		flavor = models.FlavorStandard
	}

	unitPrice := catalog.PriceForSelection(product, req.Size)
	upcharge := catalog.FlavorUpcharge(product, flavor)
	linePrice := (unitPrice + upcharge) * float64(qty)

	item := models.LineItem{
		ID:       uuid.NewString(),
		ItemName: product.Name,
		Emoji:    product.Emoji,
		Specs:    buildSpecs(req.Size, flavor, req.GlutenFree, req.SugarFree),
		Qty:      qty,
		Price:    linePrice,
		CanShip:  product.CanShip,
	}

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Items = append(cart.Items, item)
	recalcSubtotal(cart)

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, errors.InternalError("Failed to update cart").WithError(err)
	}

	return &models.AddItemResponse{
		Cart:          cart,
		Added:         fmt.Sprintf("Added %dx %s to order!", qty, product.Name),
		ResetQuantity: 1,
	}, nil
}

// RemoveItem drops the line item at the given position in the cart's
// current ordering. An out-of-range index is rejected without touching the
// cart.
func (s *cartService) RemoveItem(ctx context.Context, sessionID string, index int) (*models.Cart, error) {

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(cart.Items) {
		return nil, errors.BadRequestError("Item not found in the cart")
	}

	cart.Items = append(cart.Items[:index], cart.Items[index+1:]...)
	recalcSubtotal(cart)

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, errors.InternalError("Failed to update cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) Clear(ctx context.Context, sessionID string) (*models.Cart, error) {

	cart := newCart(sessionID)

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, errors.InternalError("Failed to clear cart").WithError(err)
	}

	return cart, nil
}

// HasNonShippableItems reports whether any line item requires local pickup.
// It only surfaces the pickup-only notice; it never blocks cart usage.
func (s *cartService) HasNonShippableItems(cart *models.Cart) bool {
	for _, item := range cart.Items {
		if !item.CanShip {
			return true
		}
	}

	return false
}

func newCart(sessionID string) *models.Cart {
	return &models.Cart{
		SessionID: sessionID,
		Items:     []models.LineItem{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func recalcSubtotal(cart *models.Cart) {
	var subtotal float64

	for _, item := range cart.Items {
		subtotal += item.Price
	}

	cart.Subtotal = subtotal
	cart.UpdatedAt = time.Now()
}

// buildSpecs renders the human-readable variant string: size, then the
// flavor when it isn't the Standard sentinel, then the dietary tags.
func buildSpecs(size, flavor string, glutenFree, sugarFree bool) string {

	var b strings.Builder
	b.WriteString(size)

	if flavor != models.FlavorStandard {
		b.WriteString(" - ")
		b.WriteString(flavor)
	}

	if glutenFree {
		b.WriteString(" [GF]")
	}

	if sugarFree {
		b.WriteString(" [SF]")
	}

	return b.String()
}
