package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/bluemoonhaven/bakery-storefront/internal/api/middleware"
	"github.com/bluemoonhaven/bakery-storefront/internal/metrics"
	"github.com/bluemoonhaven/bakery-storefront/internal/models"
	service "github.com/bluemoonhaven/bakery-storefront/internal/services"
	"github.com/bluemoonhaven/bakery-storefront/internal/utils"
	"github.com/bluemoonhaven/bakery-storefront/internal/utils/response"
)

type OrderHandler struct {
	orderService service.OrderService
	cartService  service.CartService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService, cartService service.CartService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		cartService:  cartService,
		validator:    validator.New(),
	}
}

// Quote recomputes the derived totals for the session cart under a
// fulfillment selection. Calling it repeatedly with the same cart and
// selection always returns the same figures.
func (h *OrderHandler) Quote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID := middleware.SessionFromContext(r.Context())

		var req models.QuoteRequest
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

		fulfillment := req.Fulfillment
		if fulfillment == "" {
			fulfillment = models.FulfillmentPickup
		}

		cart, err := h.cartService.GetCart(r.Context(), sessionID)
		if err != nil {
			response.Error(w, err)
			return
		}

		totals := h.orderService.Quote(cart, fulfillment, req.Zip)

		response.Success(w, http.StatusOK, map[string]any{
			"totals":      totals,
			"pickup_only": h.cartService.HasNonShippableItems(cart),
		})

	}
}

// SubmitOrder validates and submits the checkout form. Validation failures
// come back as the first failing check of the fixed order: empty cart,
// contact info, payment method, pickup schedule.
func (h *OrderHandler) SubmitOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		sessionID := middleware.SessionFromContext(r.Context())

		var req models.CheckoutRequest
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

		result, err := h.orderService.SubmitOrder(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Order submission rejected", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		metrics.ObserveOrderSubmitted(string(result.Order.Fulfillment))
		logger.Info("Order submitted", slog.String("order_id", result.Order.ID),
			slog.String("fulfillment", string(result.Order.Fulfillment)))
		response.Success(w, http.StatusCreated, result)

	}
}

func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "Order ID is required", http.StatusBadRequest)
			return
		}

		order, err := h.orderService.GetOrder(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)

	}
}
