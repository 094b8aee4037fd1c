package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bluemoonhaven/bakery-storefront/internal/catalog"
	"github.com/bluemoonhaven/bakery-storefront/internal/errors"
	"github.com/bluemoonhaven/bakery-storefront/internal/models"
	repository "github.com/bluemoonhaven/bakery-storefront/internal/repositories"
)

type CatalogService interface {
	Load(ctx context.Context)
	Loaded() bool
	List(filter models.CatalogFilter, key models.SortKey) []models.Product
	Groups() []models.CategoryGroup
	GetProduct(id int) (*models.Product, error)
	PriceForSelection(id int, size string) (float64, error)
}

type catalogService struct {
	feed repository.CatalogFeed

	mu       sync.RWMutex
	products []models.Product
	loaded   bool
}

func NewCatalogService(feed repository.CatalogFeed) CatalogService {
	return &catalogService{feed: feed}
}

// Load reads the product feed once. A failed load is logged and leaves the
// catalog empty; the storefront stays up and simply shows no products.
// There is no retry and no timeout beyond the feed client's own.
func (s *catalogService) Load(ctx context.Context) {

	products, err := s.feed.Load(ctx)
	if err != nil {
		slog.Error("Error loading products", slog.String("error", err.Error()))
		products = nil
	}

	s.mu.Lock()
	s.products = products
	s.loaded = err == nil
	s.mu.Unlock()

	if err == nil {
		slog.Info("Product catalog loaded", slog.Int("count", len(products)))
	}
}

func (s *catalogService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loaded
}

func (s *catalogService) snapshot() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.products
}

// List returns the filtered, sorted product view for display.
func (s *catalogService) List(filter models.CatalogFilter, key models.SortKey) []models.Product {
	return catalog.Sort(catalog.Filter(s.snapshot(), filter), key)
}

// Groups returns the catalog arranged into category display bands.
func (s *catalogService) Groups() []models.CategoryGroup {
	return catalog.GroupByCategory(s.snapshot())
}

func (s *catalogService) GetProduct(id int) (*models.Product, error) {

	products := s.snapshot()

	if id < 0 || id >= len(products) {
		return nil, errors.NotFoundError("Product not found")
	}

	p := products[id]

	return &p, nil
}

func (s *catalogService) PriceForSelection(id int, size string) (float64, error) {

	p, err := s.GetProduct(id)
	if err != nil {
		return 0, err
	}

	return catalog.PriceForSelection(p, size), nil
}
