package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bluemoonhaven/bakery-storefront/internal/cache"
	"github.com/bluemoonhaven/bakery-storefront/internal/config"
	"github.com/bluemoonhaven/bakery-storefront/internal/models"
)

// redisCartStore keeps session carts in Redis so carts survive a restart
// of the storefront process. Carts expire with the configured TTL.
type redisCartStore struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewRedisClient(cfg *config.RedisConnect) (*redis.Client, error) {

	slog.Info("Connecting to Redis", slog.String("addr", cfg.Addr))

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("✅ Successfully connected to Redis")

	return client, nil
}

func NewRedisCartStore(c cache.Cache, ttl time.Duration) CartStore {
	return &redisCartStore{cache: c, ttl: ttl}
}

func (s *redisCartStore) Get(ctx context.Context, sessionID string) (*models.Cart, error) {

	var cart models.Cart

	found, err := s.cache.Get(ctx, cache.Key(cache.CartKeyPrefix, sessionID), &cart)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, nil
	}

	return &cart, nil
}

func (s *redisCartStore) Save(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()

	return s.cache.Set(ctx, cache.Key(cache.CartKeyPrefix, cart.SessionID), cart, s.ttl)
}

func (s *redisCartStore) Delete(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, cache.Key(cache.CartKeyPrefix, sessionID))
}
