package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bluemoonhaven/bakery-storefront/internal/api/handlers"
	appErrors "github.com/bluemoonhaven/bakery-storefront/internal/errors"
	"github.com/bluemoonhaven/bakery-storefront/internal/models"
	"github.com/bluemoonhaven/bakery-storefront/internal/services/mocks"
	"github.com/bluemoonhaven/bakery-storefront/internal/utils/response"
)

// setupOrderTest -> creates common test dependencies
func setupOrderTest() (*mocks.OrderService, *mocks.CartService, *handlers.OrderHandler) {
	mockOrderService := new(mocks.OrderService)
	mockCartService := new(mocks.CartService)
	orderHandler := handlers.NewOrderHandler(mockOrderService, mockCartService)

	return mockOrderService, mockCartService, orderHandler
}

func TestQuoteHandler(t *testing.T) {
	t.Run("Success - Shipping Quote", func(t *testing.T) {
		// Arrange
		mockOrderService, mockCartService, orderHandler := setupOrderTest()

		body, _ := json.Marshal(models.QuoteRequest{Fulfillment: models.FulfillmentShipping, Zip: "97403"})
		req := newSessionRequest("POST", "/api/v1/orders/quote", body)
		recorder := httptest.NewRecorder()

		cart := sessionCart()
		totals := models.OrderTotals{Subtotal: 5.50, ShippingCost: 15, Total: 20.50, Deposit: 10.25, Balance: 10.25}

		mockCartService.On("GetCart", mock.Anything, testSessionID).Return(cart, nil).Once()
		mockOrderService.On("Quote", cart, models.FulfillmentShipping, "97403").Return(totals).Once()
		mockCartService.On("HasNonShippableItems", cart).Return(true).Once()

		// Act
		orderHandler.Quote()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp response.APIResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Success)

		data := resp.Data.(map[string]any)
		assert.Equal(t, true, data["pickup_only"])

		quoted := data["totals"].(map[string]any)
		assert.Equal(t, 20.50, quoted["total"])
		assert.Equal(t, 10.25, quoted["deposit"])

		mockOrderService.AssertExpectations(t)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Success - Missing Fulfillment Defaults To Pickup", func(t *testing.T) {
		// Arrange
		mockOrderService, mockCartService, orderHandler := setupOrderTest()

		req := newSessionRequest("POST", "/api/v1/orders/quote", []byte(`{}`))
		recorder := httptest.NewRecorder()

		cart := sessionCart()
		mockCartService.On("GetCart", mock.Anything, testSessionID).Return(cart, nil).Once()
		mockOrderService.On("Quote", cart, models.FulfillmentPickup, "").
			Return(models.OrderTotals{Subtotal: 5.50, Total: 5.50, Deposit: 2.75, Balance: 2.75}).Once()
		mockCartService.On("HasNonShippableItems", cart).Return(true).Once()

		// Act
		orderHandler.Quote()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockOrderService.AssertExpectations(t)
	})

	t.Run("Failure - Unknown Fulfillment Fails Validation", func(t *testing.T) {
		// Arrange
		mockOrderService, _, orderHandler := setupOrderTest()

		req := newSessionRequest("POST", "/api/v1/orders/quote", []byte(`{"fulfillment": "Drone"}`))
		recorder := httptest.NewRecorder()

		// Act
		orderHandler.Quote()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var resp response.APIResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)

		mockOrderService.AssertNotCalled(t, "Quote", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSubmitOrderHandler(t *testing.T) {

	checkoutBody := func() []byte {
		body, _ := json.Marshal(models.CheckoutRequest{
			CustomerName:  "Jane Doe",
			CustomerPhone: "(208) 555-0101",
			PaymentMethod: "Venmo",
			Fulfillment:   models.FulfillmentPickup,
			PickupDate:    "2026-09-05",
			PickupTime:    "10:00",
		})

		return body
	}

	t.Run("Success - Order Submitted", func(t *testing.T) {
		// Arrange
		mockOrderService, _, orderHandler := setupOrderTest()

		req := newSessionRequest("POST", "/api/v1/orders", checkoutBody())
		recorder := httptest.NewRecorder()

		result := &models.OrderResponse{
			Order: &models.Order{
				ID:          "order-1",
				Fulfillment: models.FulfillmentPickup,
			},
			PaymentInstructions: "Send 50% deposit to: @BlueMoonHaven to secure your appointment.",
		}

		mockOrderService.On("SubmitOrder", mock.Anything, testSessionID, mock.MatchedBy(func(r *models.CheckoutRequest) bool {
			return r.CustomerName == "Jane Doe" && r.PaymentMethod == "Venmo"
		})).Return(result, nil).Once()

		// Act
		orderHandler.SubmitOrder()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var resp response.APIResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Success)

		data := resp.Data.(map[string]any)
		assert.NotEmpty(t, data["payment_instructions"])

		mockOrderService.AssertExpectations(t)
	})

	t.Run("Failure - Empty Cart Rejected", func(t *testing.T) {
		// Arrange
		mockOrderService, _, orderHandler := setupOrderTest()

		req := newSessionRequest("POST", "/api/v1/orders", checkoutBody())
		recorder := httptest.NewRecorder()

		mockOrderService.On("SubmitOrder", mock.Anything, testSessionID, mock.AnythingOfType("*models.CheckoutRequest")).
			Return(nil, appErrors.EmptyCartError()).Once()

		// Act
		orderHandler.SubmitOrder()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var resp response.APIResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, appErrors.ErrCodeEmptyCart, resp.Error.Code)
		assert.Equal(t, "Please add at least one item to your order.", resp.Error.Message)
	})

	t.Run("Failure - Malformed JSON Body", func(t *testing.T) {
		// Arrange
		mockOrderService, _, orderHandler := setupOrderTest()

		req := newSessionRequest("POST", "/api/v1/orders", []byte("{not json"))
		recorder := httptest.NewRecorder()

		// Act
		orderHandler.SubmitOrder()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockOrderService.AssertNotCalled(t, "SubmitOrder", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetOrderHandler(t *testing.T) {
	t.Run("Success - Order Found", func(t *testing.T) {
		// Arrange
		mockOrderService, _, orderHandler := setupOrderTest()

		req := newSessionRequest("GET", "/api/v1/orders/order-1", nil)
		req.SetPathValue("id", "order-1")
		recorder := httptest.NewRecorder()

		mockOrderService.On("GetOrder", mock.Anything, "order-1").
			Return(&models.Order{ID: "order-1"}, nil).Once()

		// Act
		orderHandler.GetOrder()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockOrderService.AssertExpectations(t)
	})

	t.Run("Failure - Unknown Order", func(t *testing.T) {
		// Arrange
		mockOrderService, _, orderHandler := setupOrderTest()

		req := newSessionRequest("GET", "/api/v1/orders/missing", nil)
		req.SetPathValue("id", "missing")
		recorder := httptest.NewRecorder()

		mockOrderService.On("GetOrder", mock.Anything, "missing").
			Return(nil, appErrors.NotFoundError("Order not found")).Once()

		// Act
		orderHandler.GetOrder()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
