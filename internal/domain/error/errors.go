package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount       = 4001
	CodeAmountOutOfRange    = 4002
	CodeInsufficientFunds   = 4003
	CodeSelfTransfer        = 4004
	CodeDuplicateUsername   = 4005
	CodeInvalidRequest      = 4006
	CodeUnsupportedCurrency = 4007
	CodeUnknownRecipient    = 4040
	CodeUnknownProduct      = 4041
	CodeUnauthenticated     = 4010
	CodeInvalidCredentials  = 4011

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidAmount is returned when an amount is not a valid decimal
	// with at most 2 fractional digits
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrAmountOutOfRange is returned when an amount is not positive or
	// exceeds the configured maximum
	ErrAmountOutOfRange = errors.New("amount out of range")

	// ErrInsufficientFunds is returned when a debit exceeds the user's balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSelfTransfer is returned when a user attempts to pay themselves
	ErrSelfTransfer = errors.New("cannot pay yourself")

	// ErrUnknownRecipient is returned when the payment recipient does not exist
	ErrUnknownRecipient = errors.New("recipient not found")

	// ErrUnknownProduct is returned when the requested product does not exist
	ErrUnknownProduct = errors.New("product not found")

	// ErrUnsupportedCurrency is returned when neither the rate provider nor
	// the fallback table knows the requested display currency
	ErrUnsupportedCurrency = errors.New("unsupported currency")

	// ErrDuplicateUsername is returned when registering an already taken username
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidUsername is returned when the username format is invalid
	ErrInvalidUsername = errors.New("invalid username")

	// ErrInvalidPassword is returned when the password does not meet requirements
	ErrInvalidPassword = errors.New("invalid password")

	// ErrUnauthenticated is returned when no credentials were supplied
	ErrUnauthenticated = errors.New("authentication required")

	// ErrInvalidCredentials is returned when the supplied credentials do not
	// resolve to a user
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrStorageFailure is returned for unexpected datastore errors.
	// Details are logged server-side and never surfaced to clients.
	ErrStorageFailure = errors.New("storage failure")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrAmountOutOfRange):
		return CodeAmountOutOfRange
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrSelfTransfer):
		return CodeSelfTransfer
	case errors.Is(err, ErrDuplicateUsername):
		return CodeDuplicateUsername
	case errors.Is(err, ErrUnsupportedCurrency):
		return CodeUnsupportedCurrency
	case errors.Is(err, ErrUnknownRecipient), errors.Is(err, ErrUserNotFound):
		return CodeUnknownRecipient
	case errors.Is(err, ErrUnknownProduct):
		return CodeUnknownProduct
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrInvalidUsername), errors.Is(err, ErrInvalidPassword), errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps known errors to their HTTP status code.
// Validation and business rule failures are client errors; anything
// unexpected is a 500 with no internal detail attached.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrAmountOutOfRange),
		errors.Is(err, ErrInsufficientFunds),
		errors.Is(err, ErrSelfTransfer),
		errors.Is(err, ErrUnknownRecipient),
		errors.Is(err, ErrUnknownProduct),
		errors.Is(err, ErrUnsupportedCurrency),
		errors.Is(err, ErrDuplicateUsername),
		errors.Is(err, ErrInvalidUsername),
		errors.Is(err, ErrInvalidPassword),
		errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for an error. Internal errors
// collapse to a generic message so no datastore detail leaks out.
func Message(err error) string {
	if HTTPStatus(err) >= http.StatusInternalServerError {
		return ErrInternalServer.Error()
	}
	return err.Error()
}

// InsufficientFundsError provides detailed error information for insufficient balance
type InsufficientFundsError struct {
	UserID      uint64
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for user %d: required %s, available %s",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_funds",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(userID uint64, amount, currentBalance string) error {
	return &InsufficientFundsError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrUnknownRecipient) ||
		errors.Is(err, ErrUnknownProduct)
}

// IsValidationError checks if the error was raised before any mutation
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrAmountOutOfRange) ||
		errors.Is(err, ErrInvalidUsername) ||
		errors.Is(err, ErrInvalidPassword) ||
		errors.Is(err, ErrDuplicateUsername)
}
