package repository

import (
	"context"
	"sync"
	"time"

	"github.com/bluemoonhaven/bakery-storefront/internal/models"
)

// CartStore keeps one cart per storefront session. Carts are small and
// short-lived; the store never computes totals, it only holds state.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// memoryCartStore is the default store when Redis is not configured.
type memoryCartStore struct {
	mu    sync.RWMutex
	carts map[string]*models.Cart
}

func NewMemoryCartStore() CartStore {
	return &memoryCartStore{carts: make(map[string]*models.Cart)}
}

func (s *memoryCartStore) Get(_ context.Context, sessionID string) (*models.Cart, error) {

	s.mu.RLock()
	cart, ok := s.carts[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	// Copy so callers never mutate stored state in place.
	clone := *cart
	clone.Items = append([]models.LineItem(nil), cart.Items...)

	return &clone, nil
}

func (s *memoryCartStore) Save(_ context.Context, cart *models.Cart) error {

	clone := *cart
	clone.Items = append([]models.LineItem(nil), cart.Items...)
	clone.UpdatedAt = time.Now()

	s.mu.Lock()
	s.carts[cart.SessionID] = &clone
	s.mu.Unlock()

	return nil
}

func (s *memoryCartStore) Delete(_ context.Context, sessionID string) error {

	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()

	return nil
}
