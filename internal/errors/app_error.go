package errors

import (
	"errors"
	"net/http"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeInternal      = "INTERNAL_ERROR"
	ErrCodeDatabaseError = "DATABASE_ERROR"
	ErrCodeFeedError     = "FEED_ERROR"

	// Checkout validation taxonomy, surfaced in the fixed short-circuit
	// order: empty cart, contact info, payment method, pickup schedule.
	ErrCodeEmptyCart             = "EMPTY_CART"
	ErrCodeMissingContactInfo    = "MISSING_CONTACT_INFO"
	ErrCodeMissingPaymentMethod  = "MISSING_PAYMENT_METHOD"
	ErrCodeMissingPickupSchedule = "MISSING_PICKUP_SCHEDULE"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func DatabaseError(message string) *AppError {
	return NewAppError(ErrCodeDatabaseError, message, http.StatusInternalServerError)
}

func FeedError(message string) *AppError {
	return NewAppError(ErrCodeFeedError, message, http.StatusServiceUnavailable)
}

func EmptyCartError() *AppError {
	return NewAppError(ErrCodeEmptyCart, "Please add at least one item to your order.", http.StatusBadRequest)
}

func MissingContactInfoError() *AppError {
	return NewAppError(ErrCodeMissingContactInfo, "Please fill in your name and phone number.", http.StatusBadRequest)
}

func MissingPaymentMethodError() *AppError {
	return NewAppError(ErrCodeMissingPaymentMethod, "Please select a payment method.", http.StatusBadRequest)
}

func MissingPickupScheduleError() *AppError {
	return NewAppError(ErrCodeMissingPickupSchedule, "Please select a pickup date and time.", http.StatusBadRequest)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}
