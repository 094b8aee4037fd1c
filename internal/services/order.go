package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/bluemoonhaven/bakery-storefront/internal/errors"
	"github.com/bluemoonhaven/bakery-storefront/internal/models"
	repository "github.com/bluemoonhaven/bakery-storefront/internal/repositories"
	"github.com/bluemoonhaven/bakery-storefront/pkg/sendgrid"
)

// depositRate is the share of the total payable up front.
const depositRate = 0.5

type OrderService interface {
	Quote(cart *models.Cart, fulfillment models.Fulfillment, zip string) models.OrderTotals
	ShippingCost(zip string, fulfillment models.Fulfillment) float64
	ValidateForSubmission(cart *models.Cart, req *models.CheckoutRequest) error
	Summary(cart *models.Cart, totals models.OrderTotals) string
	SubmitOrder(ctx context.Context, sessionID string, req *models.CheckoutRequest) (*models.OrderResponse, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
}

type orderService struct {
	archive   repository.OrderArchive
	cartSvc   CartService
	notifier  sendgrid.EmailService
	inbox     string
	sanitizer *bluemonday.Policy
}

// NewOrderService wires the checkout flow. notifier may be nil when email
// notifications are not configured.
func NewOrderService(archive repository.OrderArchive, cartSvc CartService, notifier sendgrid.EmailService, inbox string) OrderService {
	return &orderService{
		archive:   archive,
		cartSvc:   cartSvc,
		notifier:  notifier,
		inbox:     inbox,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// zipTier is one shipping fee band. Tiers are checked in declaration order
// and the first match wins; none overlap in practice.
type zipTier struct {
	lo, hi int
	fee    float64
}

var zipTiers = []zipTier{
	{83600, 83899, 10},
	{84000, 84999, 12},
	{97000, 97999, 15},
	{98000, 99999, 15},
}

const outOfAreaFee = 20

// ShippingCost is zero for pickup regardless of zip. For shipping the fee
// is a flat amount tiered by numeric zip range; any non-empty zip outside
// the known ranges ships at the out-of-area rate, and an empty zip costs
// nothing until one is entered.
func (s *orderService) ShippingCost(zip string, fulfillment models.Fulfillment) float64 {

	if fulfillment != models.FulfillmentShipping {
		return 0
	}

	zip = strings.TrimSpace(zip)
	if zip == "" {
		return 0
	}

	n, err := strconv.Atoi(zip)
	if err != nil {
		return outOfAreaFee
	}

	for _, tier := range zipTiers {
		if n >= tier.lo && n <= tier.hi {
			return tier.fee
		}
	}

	return outOfAreaFee
}

// Quote derives the order totals from the cart and fulfillment selection.
// It holds no state: the same cart, fulfillment and zip always produce the
// same totals, and Deposit+Balance == Total at two decimals.
func (s *orderService) Quote(cart *models.Cart, fulfillment models.Fulfillment, zip string) models.OrderTotals {

	var subtotal float64
	for _, item := range cart.Items {
		subtotal += item.Price
	}

	shipping := s.ShippingCost(zip, fulfillment)

	total := round2(subtotal + shipping)
	deposit := round2(total * depositRate)
	balance := round2(total - deposit)

	return models.OrderTotals{
		Subtotal:     round2(subtotal),
		ShippingCost: round2(shipping),
		Total:        total,
		Deposit:      deposit,
		Balance:      balance,
	}
}

// ValidateForSubmission checks the order form in a fixed order and returns
// the first failure: empty cart, then contact info, then payment method,
// then the pickup schedule when fulfillment is Pickup. Submission is
// blocked on any failure; nothing partial ever goes through.
func (s *orderService) ValidateForSubmission(cart *models.Cart, req *models.CheckoutRequest) error {

	if len(cart.Items) == 0 {
		return errors.EmptyCartError()
	}

	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.CustomerPhone) == "" {
		return errors.MissingContactInfoError()
	}

	if _, ok := models.PaymentInstructions(req.PaymentMethod); !ok {
		return errors.MissingPaymentMethodError()
	}

	if req.Fulfillment != models.FulfillmentShipping {
		if req.PickupDate == "" || req.PickupTime == "" {
			return errors.MissingPickupScheduleError()
		}
	}

	return nil
}

// Summary renders the plain-text order recap submitted with the form: one
// itemized line per cart entry, then the total, deposit and balance.
func (s *orderService) Summary(cart *models.Cart, totals models.OrderTotals) string {

	lines := make([]string, 0, len(cart.Items))

	for _, item := range cart.Items {
		lines = append(lines, fmt.Sprintf("%dx %s - %s: $%.2f", item.Qty, item.ItemName, item.Specs, item.Price))
	}

	return strings.Join(lines, "\n") +
		fmt.Sprintf("\n\nTotal: $%.2f\n50%% Deposit Due: $%.2f\nBalance Due at Pickup: $%.2f",
			totals.Total, totals.Deposit, totals.Balance)
}

func (s *orderService) SubmitOrder(ctx context.Context, sessionID string, req *models.CheckoutRequest) (*models.OrderResponse, error) {

	cart, err := s.cartSvc.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.ValidateForSubmission(cart, req); err != nil {
		return nil, err
	}

	fulfillment := req.Fulfillment
	if fulfillment == "" {
		fulfillment = models.FulfillmentPickup
	}

	totals := s.Quote(cart, fulfillment, req.Shipping.Zip)

	order := &models.Order{
		ID:            uuid.NewString(),
		SessionID:     sessionID,
		CustomerName:  s.sanitizer.Sanitize(req.CustomerName),
		CustomerPhone: s.sanitizer.Sanitize(req.CustomerPhone),
		PaymentMethod: req.PaymentMethod,
		Fulfillment:   fulfillment,
		PickupDate:    req.PickupDate,
		PickupTime:    req.PickupTime,
		Shipping:      req.Shipping,
		Items:         cart.Items,
		Totals:        totals,
		CreatedAt:     time.Now(),
	}
	order.Summary = s.Summary(cart, totals)

	if err := s.archive.ArchiveOrder(ctx, order); err != nil {
		return nil, errors.DatabaseError("Failed to archive order").WithError(err)
	}

	s.notify(ctx, order)

	if _, err := s.cartSvc.Clear(ctx, sessionID); err != nil {
		slog.Warn("Failed to clear cart after submission",
			slog.String("session_id", sessionID), slog.String("error", err.Error()))
	}

	instructions, _ := models.PaymentInstructions(order.PaymentMethod)

	return &models.OrderResponse{
		Order:               order,
		PaymentInstructions: instructions,
	}, nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {

	order, err := s.archive.GetOrderByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	return order, nil
}

// notify emails the new order to the bakery inbox. Delivery is best effort:
// a failure is logged and never fails the submission.
func (s *orderService) notify(ctx context.Context, order *models.Order) {

	if s.notifier == nil || s.inbox == "" {
		return
	}

	subject := fmt.Sprintf("New order from %s (%s)", order.CustomerName, order.Fulfillment)

	if err := s.notifier.Send(ctx, s.inbox, subject, order.Summary); err != nil {
		slog.Error("Failed to send order notification",
			slog.String("order_id", order.ID), slog.String("error", err.Error()))
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
