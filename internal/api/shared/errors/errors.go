package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/iryswiki/iryswiki/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest                ErrorCode = "bad_request"
	ErrCodeNotFound                  ErrorCode = "not_found"
	ErrCodeValidationFailed          ErrorCode = "validation_failed"
	ErrCodeUnauthorized              ErrorCode = "unauthorized"
	ErrCodeForbidden                 ErrorCode = "forbidden"
	ErrCodeInsufficientBalance       ErrorCode = "insufficient_balance"
	ErrCodePaymentVerificationFailed ErrorCode = "payment_verification_failed"
	ErrCodeRateLimited               ErrorCode = "rate_limited"

	// Server errors (5xx)
	ErrCodeInternalError    ErrorCode = "internal_error"
	ErrCodePersistenceError ErrorCode = "persistence_error"
	ErrCodeChainError       ErrorCode = "chain_error"
	ErrCodeNotInitialized   ErrorCode = "not_initialized"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewRateLimitedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeRateLimited,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// FromDomainError maps a domain error to an HTTP status and API error.
// Errors raised after a payment carry the transaction hash in Details.
func FromDomainError(err error) (int, *APIError) {
	var (
		balanceErr *domain.InsufficientBalanceError
		verifyErr  *domain.PaymentVerificationFailedError
		persistErr *domain.PersistenceError
	)

	switch {
	case errors.As(err, &balanceErr):
		return http.StatusPaymentRequired, &APIError{
			Code:    ErrCodeInsufficientBalance,
			Message: "Insufficient balance",
			Details: balanceErr.Error(),
		}
	case errors.As(err, &verifyErr):
		return http.StatusUnprocessableEntity, &APIError{
			Code:    ErrCodePaymentVerificationFailed,
			Message: "Payment verification failed, content was not saved",
			Details: verifyErr.Hash,
		}
	case errors.As(err, &persistErr):
		return http.StatusInternalServerError, &APIError{
			Code:    ErrCodePersistenceError,
			Message: "Content could not be saved",
			Details: persistErr.Hash,
		}
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrUnknownAction):
		return http.StatusBadRequest, NewValidationError(err.Error())
	case errors.Is(err, domain.ErrThreadNotFound):
		return http.StatusNotFound, NewNotFoundError("Thread not found", err.Error())
	case errors.Is(err, domain.ErrTransferRejected), errors.Is(err, domain.ErrChainAccess):
		return http.StatusBadGateway, &APIError{
			Code:    ErrCodeChainError,
			Message: "Chain request failed",
			Details: err.Error(),
		}
	case errors.Is(err, domain.ErrStoreNotInitialized),
		errors.Is(err, domain.ErrNotInitialized),
		errors.Is(err, domain.ErrWrongChain):
		return http.StatusServiceUnavailable, &APIError{
			Code:    ErrCodeNotInitialized,
			Message: "Wallet session not initialized",
			Details: err.Error(),
		}
	default:
		return http.StatusInternalServerError, NewInternalError("Internal server error")
	}
}
