package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iryswiki/iryswiki/internal/domain"
)

func TestFromDomainError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    ErrorCode
		details string
	}{
		{
			name:   "insufficient balance",
			err:    &domain.InsufficientBalanceError{Required: "0.0003", Balance: "0.0001", Action: domain.ActionThread},
			status: http.StatusPaymentRequired,
			code:   ErrCodeInsufficientBalance,
		},
		{
			name:    "verification failed carries hash",
			err:     &domain.PaymentVerificationFailedError{Hash: "0xabc"},
			status:  http.StatusUnprocessableEntity,
			code:    ErrCodePaymentVerificationFailed,
			details: "0xabc",
		},
		{
			name:    "persistence after payment carries hash",
			err:     &domain.PersistenceError{Op: "save threads", Hash: "0xdef", Err: errors.New("disk full")},
			status:  http.StatusInternalServerError,
			code:    ErrCodePersistenceError,
			details: "0xdef",
		},
		{
			name:   "invalid input",
			err:    fmt.Errorf("%w: title failed on required", domain.ErrInvalidInput),
			status: http.StatusBadRequest,
			code:   ErrCodeValidationFailed,
		},
		{
			name:   "thread not found",
			err:    fmt.Errorf("%w: thread-1", domain.ErrThreadNotFound),
			status: http.StatusNotFound,
			code:   ErrCodeNotFound,
		},
		{
			name:   "transfer rejected",
			err:    &domain.TransferRejectedError{Err: errors.New("nonce too low")},
			status: http.StatusBadGateway,
			code:   ErrCodeChainError,
		},
		{
			name:   "chain access",
			err:    &domain.ChainAccessError{Op: "balance", Err: errors.New("timeout")},
			status: http.StatusBadGateway,
			code:   ErrCodeChainError,
		},
		{
			name:   "not initialized",
			err:    domain.ErrStoreNotInitialized,
			status: http.StatusServiceUnavailable,
			code:   ErrCodeNotInitialized,
		},
		{
			name:   "unknown",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			code:   ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, apiErr := FromDomainError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, apiErr.Code)
			if tt.details != "" {
				assert.Equal(t, tt.details, apiErr.Details)
			}
		})
	}
}
