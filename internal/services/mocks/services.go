// Package mocks holds testify mocks for the service interfaces, used by
// the handler tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bluemoonhaven/bakery-storefront/internal/models"
)

type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) Load(ctx context.Context) {
	m.Called(ctx)
}

func (m *CatalogService) Loaded() bool {
	args := m.Called()

	return args.Bool(0)
}

func (m *CatalogService) List(filter models.CatalogFilter, key models.SortKey) []models.Product {
	args := m.Called(filter, key)

	if products := args.Get(0); products != nil {
		return products.([]models.Product)
	}

	return nil
}

func (m *CatalogService) Groups() []models.CategoryGroup {
	args := m.Called()

	if groups := args.Get(0); groups != nil {
		return groups.([]models.CategoryGroup)
	}

	return nil
}

func (m *CatalogService) GetProduct(id int) (*models.Product, error) {
	args := m.Called(id)

	if product := args.Get(0); product != nil {
		return product.(*models.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CatalogService) PriceForSelection(id int, size string) (float64, error) {
	args := m.Called(id, size)

	return args.Get(0).(float64), args.Error(1)
}

type CartService struct {
	mock.Mock
}

func (m *CartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID)

	if cart := args.Get(0); cart != nil {
		return cart.(*models.Cart), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.AddItemResponse, error) {
	args := m.Called(ctx, sessionID, req)

	if resp := args.Get(0); resp != nil {
		return resp.(*models.AddItemResponse), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) RemoveItem(ctx context.Context, sessionID string, index int) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, index)

	if cart := args.Get(0); cart != nil {
		return cart.(*models.Cart), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) Clear(ctx context.Context, sessionID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID)

	if cart := args.Get(0); cart != nil {
		return cart.(*models.Cart), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) HasNonShippableItems(cart *models.Cart) bool {
	args := m.Called(cart)

	return args.Bool(0)
}

type OrderService struct {
	mock.Mock
}

func (m *OrderService) Quote(cart *models.Cart, fulfillment models.Fulfillment, zip string) models.OrderTotals {
	args := m.Called(cart, fulfillment, zip)

	return args.Get(0).(models.OrderTotals)
}

func (m *OrderService) ShippingCost(zip string, fulfillment models.Fulfillment) float64 {
	args := m.Called(zip, fulfillment)

	return args.Get(0).(float64)
}

func (m *OrderService) ValidateForSubmission(cart *models.Cart, req *models.CheckoutRequest) error {
	args := m.Called(cart, req)

	return args.Error(0)
}

func (m *OrderService) Summary(cart *models.Cart, totals models.OrderTotals) string {
	args := m.Called(cart, totals)

	return args.String(0)
}

func (m *OrderService) SubmitOrder(ctx context.Context, sessionID string, req *models.CheckoutRequest) (*models.OrderResponse, error) {
	args := m.Called(ctx, sessionID, req)

	if resp := args.Get(0); resp != nil {
		return resp.(*models.OrderResponse), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	args := m.Called(ctx, id)

	if order := args.Get(0); order != nil {
		return order.(*models.Order), args.Error(1)
	}

	return nil, args.Error(1)
}
