package health

import (
	"context"
	"fmt"
	"time"

	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"

	"github.com/bluemoonhaven/bakery-storefront/internal/config"
	service "github.com/bluemoonhaven/bakery-storefront/internal/services"
)

// NewHealthHandler wires the /health endpoint: the catalog check always
// runs, the database and Redis checks only when those backends are
// configured. A catalog that failed to load degrades health but is marked
// skippable, matching the storefront's stay-up-on-empty-catalog behavior.
func NewHealthHandler(cfg *config.Config, catalogSvc service.CatalogService) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "catalog",
			Timeout:   2 * time.Second,
			SkipOnErr: true,
			Check: func(ctx context.Context) error {
				if !catalogSvc.Loaded() {
					return fmt.Errorf("product catalog is not loaded")
				}
				return nil
			},
		},
	}

	if cfg.Database.Enabled() {
		checks = append(checks, health.Config{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		})
	}

	if cfg.RedisConnect.Enabled() {
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(healthRedis.Config{
				DSN: fmt.Sprintf("redis://%s/%d", cfg.RedisConnect.Addr, cfg.RedisConnect.DB),
			}),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "bakery-storefront",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise health checks: %w", err)
	}

	return h, nil
}
