package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/bluemoonhaven/bakery-storefront/internal/api/middleware"
	"github.com/bluemoonhaven/bakery-storefront/internal/metrics"
	"github.com/bluemoonhaven/bakery-storefront/internal/models"
	service "github.com/bluemoonhaven/bakery-storefront/internal/services"
	"github.com/bluemoonhaven/bakery-storefront/internal/utils"
	"github.com/bluemoonhaven/bakery-storefront/internal/utils/response"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

// GetCart returns the session cart plus the pickup-only notice flag.
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID := middleware.SessionFromContext(r.Context())

		cart, err := h.cartService.GetCart(r.Context(), sessionID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]any{
			"cart":        cart,
			"pickup_only": h.cartService.HasNonShippableItems(cart),
		})

	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		sessionID := middleware.SessionFromContext(r.Context())

		var req models.AddItemRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, err)
			return
		}

		if err := utils.ValidateStruct(h.validator, &req); err != nil {
			var validationErrs validator.ValidationErrors
			if errors.As(err, &validationErrs) {
				response.ValidationError(w, validationErrs)
				return
			}
			response.Error(w, err)
			return
		}

		result, err := h.cartService.AddItem(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Failed to add item to cart", slog.Int("product_id", req.ProductID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		metrics.ObserveItemAdded()
		logger.Info("Item added to cart", slog.Int("product_id", req.ProductID), slog.Int("qty", req.Quantity))
		response.Success(w, http.StatusCreated, result)

	}
}

// RemoveItem drops the line item at the positional index in the path. An
// out-of-range index is rejected and the cart is left untouched.
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID := middleware.SessionFromContext(r.Context())

		index, err := strconv.Atoi(r.PathValue("index"))
		if err != nil {
			http.Error(w, "Invalid item index", http.StatusBadRequest)
			return
		}

		cart, err := h.cartService.RemoveItem(r.Context(), sessionID, index)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)

	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID := middleware.SessionFromContext(r.Context())

		cart, err := h.cartService.Clear(r.Context(), sessionID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)

	}
}
