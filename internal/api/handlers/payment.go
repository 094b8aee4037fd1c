package handlers

import (
	"net/http"

	"github.com/bluemoonhaven/bakery-storefront/internal/models"
	"github.com/bluemoonhaven/bakery-storefront/internal/utils/response"
)

type PaymentHandler struct{}

func NewPaymentHandler() *PaymentHandler {
	return &PaymentHandler{}
}

// ListMethods returns the accepted payment methods with their static
// deposit instructions, in display order.
func (h *PaymentHandler) ListMethods() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		response.Success(w, http.StatusOK, models.PaymentMethods)

	}
}
