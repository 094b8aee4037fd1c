package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bluemoonhaven/bakery-storefront/internal/models"
)

// Mock implementations used by the service tests.

type MockCatalogFeed struct {
	mock.Mock
}

func NewMockCatalogFeed() *MockCatalogFeed {
	return &MockCatalogFeed{}
}

func (m *MockCatalogFeed) Load(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)

	if products := args.Get(0); products != nil {
		return products.([]models.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

type MockCartStore struct {
	mock.Mock
}

func NewMockCartStore() *MockCartStore {
	return &MockCartStore{}
}

func (m *MockCartStore) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID)

	if cart := args.Get(0); cart != nil {
		return cart.(*models.Cart), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartStore) Save(ctx context.Context, cart *models.Cart) error {
	args := m.Called(ctx, cart)

	return args.Error(0)
}

func (m *MockCartStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)

	return args.Error(0)
}

type MockOrderArchive struct {
	mock.Mock
}

func NewMockOrderArchive() *MockOrderArchive {
	return &MockOrderArchive{}
}

func (m *MockOrderArchive) ArchiveOrder(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *MockOrderArchive) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	args := m.Called(ctx, id)

	if order := args.Get(0); order != nil {
		return order.(*models.Order), args.Error(1)
	}

	return nil, args.Error(1)
}
