package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/bluemoonhaven/bakery-storefront/internal/models"
	"github.com/bluemoonhaven/bakery-storefront/internal/utils"
)

// OrderArchive records submitted orders for the bakery. The storefront only
// ever appends and reads back; orders are never edited after submission.
type OrderArchive interface {
	ArchiveOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) OrderArchive {
	return &orderRepository{DB: db}
}

func (r *orderRepository) ArchiveOrder(ctx context.Context, order *models.Order) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}

	shipping, err := json.Marshal(order.Shipping)
	if err != nil {
		return fmt.Errorf("failed to marshal shipping address: %w", err)
	}

	query := `
		INSERT INTO orders (id, session_id, customer_name, customer_phone, payment_method, fulfillment,
			pickup_date, pickup_time, shipping_address, items, subtotal, shipping_cost, total, deposit, balance, summary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW())
	`

	_, err = r.DB.ExecContext(dbCtx, query,
		order.ID, order.SessionID, order.CustomerName, order.CustomerPhone, order.PaymentMethod, order.Fulfillment,
		order.PickupDate, order.PickupTime, shipping, items,
		order.Totals.Subtotal, order.Totals.ShippingCost, order.Totals.Total, order.Totals.Deposit, order.Totals.Balance,
		order.Summary)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order := &models.Order{ID: id}

	var shipping, items []byte

	query := `
		SELECT session_id, customer_name, customer_phone, payment_method, fulfillment,
			pickup_date, pickup_time, shipping_address, items, subtotal, shipping_cost, total, deposit, balance, summary, created_at
		FROM orders
		WHERE id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(
		&order.SessionID, &order.CustomerName, &order.CustomerPhone, &order.PaymentMethod, &order.Fulfillment,
		&order.PickupDate, &order.PickupTime, &shipping, &items,
		&order.Totals.Subtotal, &order.Totals.ShippingCost, &order.Totals.Total, &order.Totals.Deposit, &order.Totals.Balance,
		&order.Summary, &order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying order: %w", err)
	}

	if err := json.Unmarshal(shipping, &order.Shipping); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shipping address: %w", err)
	}

	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
	}

	return order, nil
}

// memoryOrderArchive keeps submitted orders in process memory when no
// database is configured.
type memoryOrderArchive struct {
	mu     sync.RWMutex
	orders map[string]*models.Order
}

func NewMemoryOrderArchive() OrderArchive {
	return &memoryOrderArchive{orders: make(map[string]*models.Order)}
}

func (a *memoryOrderArchive) ArchiveOrder(_ context.Context, order *models.Order) error {

	a.mu.Lock()
	a.orders[order.ID] = order
	a.mu.Unlock()

	return nil
}

func (a *memoryOrderArchive) GetOrderByID(_ context.Context, id string) (*models.Order, error) {

	a.mu.RLock()
	order, ok := a.orders[id]
	a.mu.RUnlock()

	if !ok {
		return nil, sql.ErrNoRows
	}

	return order, nil
}
