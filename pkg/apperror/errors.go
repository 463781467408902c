package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Wallet Business Logic (WAL) ----

func ErrInsufficientBalance() *AppError {
	return New("WAL_001", "Insufficient token balance — top up to continue", http.StatusPaymentRequired)
}

func ErrDailyLimitExceeded() *AppError {
	return New("WAL_002", "Daily spend limit exceeded", http.StatusUnprocessableEntity)
}

func ErrDuplicatePayment() *AppError {
	return New("WAL_003", "Payment reference already processed", http.StatusConflict)
}

func ErrInvalidAmount() *AppError {
	return New("WAL_004", "Invalid amount", http.StatusBadRequest)
}

func ErrWalletInactive() *AppError {
	return New("WAL_005", "Wallet is deactivated", http.StatusForbidden)
}

// ---- Vendor Catalog (VEN) ----

func ErrVendorRejectsTokens() *AppError {
	return New("VEN_001", "Vendor does not accept tokens", http.StatusUnprocessableEntity)
}

func ErrProductUnavailable() *AppError {
	return New("VEN_002", "Product is not available", http.StatusUnprocessableEntity)
}

func ErrInsufficientStock() *AppError {
	return New("VEN_003", "Not enough stock remaining", http.StatusConflict)
}

// ---- Devices & Interactions (DEV / CON) ----

func ErrDeviceNotBound() *AppError {
	return New("DEV_001", "Device is not bound to a user", http.StatusUnprocessableEntity)
}

func ErrEventMismatch() *AppError {
	return New("DEV_002", "Devices or vendor belong to different events", http.StatusUnprocessableEntity)
}

func ErrSelfConnection() *AppError {
	return New("CON_001", "A device cannot handshake with its own user", http.StatusUnprocessableEntity)
}

func ErrConnectionBlocked() *AppError {
	return New("CON_002", "Connection between these users is blocked", http.StatusForbidden)
}

// ---- Generic ----

func ErrNotFound(entity string) *AppError {
	return New("GEN_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// Validation returns a field-level validation error.
func Validation(message string) *AppError {
	return New("GEN_002", message, http.StatusBadRequest)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrConflict signals transient write contention after retries were exhausted.
// The caller may safely retry the whole operation from validation.
func ErrConflict() *AppError {
	return New("SYS_002", "Concurrent update conflict, retry the operation", http.StatusConflict)
}
