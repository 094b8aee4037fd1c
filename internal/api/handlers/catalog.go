package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bluemoonhaven/bakery-storefront/internal/api/middleware"
	"github.com/bluemoonhaven/bakery-storefront/internal/models"
	service "github.com/bluemoonhaven/bakery-storefront/internal/services"
	"github.com/bluemoonhaven/bakery-storefront/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListProducts returns the filtered, sorted product view. All predicates
// come from query parameters and are optional.
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		q := r.URL.Query()

		filter := models.CatalogFilter{
			Category:   q.Get("category"),
			Search:     q.Get("search"),
			GlutenFree: q.Get("gluten_free") == "true",
			SugarFree:  q.Get("sugar_free") == "true",
		}

		products := h.catalogService.List(filter, models.SortKey(q.Get("sort")))

		response.Success(w, http.StatusOK, products)

	}
}

func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			http.Error(w, "Invalid product id", http.StatusBadRequest)
			return
		}

		product, err := h.catalogService.GetProduct(id)
		if err != nil {
			logger.Warn("Product lookup failed", slog.Int("product_id", id))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)

	}
}

// GetPrice answers the per-size unit price used by the product card's
// price display.
func (h *CatalogHandler) GetPrice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			http.Error(w, "Invalid product id", http.StatusBadRequest)
			return
		}

		price, err := h.catalogService.PriceForSelection(id, r.URL.Query().Get("size"))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]float64{"price": price})

	}
}

// ListCategories returns the catalog arranged into display bands: known
// categories in preferred order, cookies split into subcategory bands,
// unknown categories appended alphabetically.
func (h *CatalogHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		response.Success(w, http.StatusOK, h.catalogService.Groups())

	}
}
