package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/bluemoonhaven/bakery-storefront/internal/config"
	"github.com/bluemoonhaven/bakery-storefront/internal/models"
)

// CatalogFeed reads the externally supplied product feed: a JSON array of
// product records, served from a local file or a static URL. The feed is
// read once at startup and never retried; a failed read leaves the catalog
// empty and the storefront running.
type CatalogFeed interface {
	Load(ctx context.Context) ([]models.Product, error)
}

type catalogFeed struct {
	cfg    *config.Catalog
	client *http.Client
}

func NewCatalogFeed(cfg *config.Catalog) CatalogFeed {
	return &catalogFeed{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.FetchTimeout},
	}
}

func (f *catalogFeed) Load(ctx context.Context) ([]models.Product, error) {

	var data []byte
	var err error

	if strings.HasPrefix(f.cfg.FeedSource, "http://") || strings.HasPrefix(f.cfg.FeedSource, "https://") {
		data, err = f.fetch(ctx)
	} else {
		data, err = os.ReadFile(f.cfg.FeedSource)
	}

	if err != nil {
		return nil, fmt.Errorf("reading product feed %s: %w", f.cfg.FeedSource, err)
	}

	var products []models.Product

	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parsing product feed %s: %w", f.cfg.FeedSource, err)
	}

	// The feed carries no identifiers; the positional index is the ID.
	for i := range products {
		products[i].ID = i
	}

	return products, nil
}

func (f *catalogFeed) fetch(ctx context.Context) ([]byte, error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.cfg.FeedSource, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("feed responded with status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
