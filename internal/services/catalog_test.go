package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/bluemoonhaven/bakery-storefront/internal/errors"
	"github.com/bluemoonhaven/bakery-storefront/internal/models"
	repository "github.com/bluemoonhaven/bakery-storefront/internal/repositories"
	service "github.com/bluemoonhaven/bakery-storefront/internal/services"
)

func feedProducts() []models.Product {
	return []models.Product{
		{ID: 0, Name: "Chocolate Chip Cookies", Category: "Cookies", Subcategory: "Classic", BasePrice: price(12), CanShip: true},
		{ID: 1, Name: "Carrot Cake", Category: "Cakes", SizePrice: map[string]float64{"6 inch": 30, "8 inch": 40}},
	}
}

func TestCatalogLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Catalog Populated", func(t *testing.T) {
		// Arrange
		mockFeed := repository.NewMockCatalogFeed()
		catalogService := service.NewCatalogService(mockFeed)

		mockFeed.On("Load", ctx).Return(feedProducts(), nil).Once()

		// Act
		catalogService.Load(ctx)

		// Assert
		assert.True(t, catalogService.Loaded())
		assert.Len(t, catalogService.List(models.CatalogFilter{}, models.SortNameAsc), 2)
		mockFeed.AssertExpectations(t)
	})

	t.Run("Failure - Feed Error Leaves Catalog Empty", func(t *testing.T) {
		// Arrange
		mockFeed := repository.NewMockCatalogFeed()
		catalogService := service.NewCatalogService(mockFeed)

		mockFeed.On("Load", ctx).Return(nil, errors.New("feed unreachable")).Once()

		// Act
		catalogService.Load(ctx)

		// Assert
		assert.False(t, catalogService.Loaded())
		assert.Empty(t, catalogService.List(models.CatalogFilter{}, models.SortNameAsc))
	})
}

func TestCatalogGetProduct(t *testing.T) {
	ctx := context.Background()

	loadedCatalog := func(t *testing.T) service.CatalogService {
		t.Helper()

		mockFeed := repository.NewMockCatalogFeed()
		catalogService := service.NewCatalogService(mockFeed)
		mockFeed.On("Load", ctx).Return(feedProducts(), nil).Once()
		catalogService.Load(ctx)

		return catalogService
	}

	t.Run("Success - Product By Positional ID", func(t *testing.T) {
		catalogService := loadedCatalog(t)

		product, err := catalogService.GetProduct(1)

		require.NoError(t, err)
		assert.Equal(t, "Carrot Cake", product.Name)
	})

	t.Run("Failure - Out Of Range IDs", func(t *testing.T) {
		catalogService := loadedCatalog(t)

		for _, id := range []int{-1, 2} {
			product, err := catalogService.GetProduct(id)

			assert.Nil(t, product)
			appErr, ok := appErrors.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		}
	})

	t.Run("Success - Price For Selection", func(t *testing.T) {
		catalogService := loadedCatalog(t)

		unit, err := catalogService.PriceForSelection(1, "8 inch")

		require.NoError(t, err)
		assert.Equal(t, 40.0, unit)
	})

	t.Run("Failure - Price For Unknown Product", func(t *testing.T) {
		catalogService := loadedCatalog(t)

		unit, err := catalogService.PriceForSelection(9, "8 inch")

		assert.Error(t, err)
		assert.Equal(t, 0.0, unit)
	})
}
