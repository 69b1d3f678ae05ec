package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned when no signer is bound to the chain client
	ErrNotInitialized = errors.New("wallet not initialized")

	// ErrStoreNotInitialized is returned when a mutation is attempted before the session is initialized
	ErrStoreNotInitialized = errors.New("store not initialized")

	// ErrWrongChain is returned when the RPC endpoint reports a different chain id than configured
	ErrWrongChain = errors.New("connected to wrong chain")

	// ErrInsufficientBalance is returned when the wallet cannot cover the action fee
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrTransferRejected is returned when the payment transfer could not be submitted
	ErrTransferRejected = errors.New("transfer rejected")

	// ErrPaymentVerificationFailed is returned when a submitted payment fails on-chain verification
	ErrPaymentVerificationFailed = errors.New("payment verification failed")

	// ErrChainAccess is returned when a chain read fails
	ErrChainAccess = errors.New("chain access failed")

	// ErrPersistence is returned when the persistence backend fails
	ErrPersistence = errors.New("persistence failed")

	// ErrInvalidInput is returned when mutation input fails validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidAmount is returned when a decimal amount cannot be parsed
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrUnknownAction is returned for an action kind outside THREAD, REPLY and PROFILE
	ErrUnknownAction = errors.New("unknown action")

	// ErrThreadNotFound is returned when a reply targets a thread that does not exist
	ErrThreadNotFound = errors.New("thread not found")
)

// InsufficientBalanceError carries the fee that could not be covered
type InsufficientBalanceError struct {
	Required string
	Balance  string
	Action   ActionKind
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: %s requires %s %s, have %s",
		e.Action, e.Required, NATIVE_TOKEN_SYMBOL, e.Balance)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// TransferRejectedError wraps the reason a payment could not be submitted
type TransferRejectedError struct {
	Err error
}

func (e *TransferRejectedError) Error() string {
	return fmt.Sprintf("transfer rejected: %v", e.Err)
}

func (e *TransferRejectedError) Unwrap() error {
	return e.Err
}

func (e *TransferRejectedError) Is(target error) bool {
	return target == ErrTransferRejected
}

// PaymentVerificationFailedError carries the hash of the payment that did not verify.
// The funds may have moved even though no content was persisted.
type PaymentVerificationFailedError struct {
	Hash string
}

func (e *PaymentVerificationFailedError) Error() string {
	return fmt.Sprintf("payment verification failed for transaction %s", e.Hash)
}

func (e *PaymentVerificationFailedError) Is(target error) bool {
	return target == ErrPaymentVerificationFailed
}

// ChainAccessError wraps an RPC failure
type ChainAccessError struct {
	Op  string
	Err error
}

func (e *ChainAccessError) Error() string {
	return fmt.Sprintf("chain access failed during %s: %v", e.Op, e.Err)
}

func (e *ChainAccessError) Unwrap() error {
	return e.Err
}

func (e *ChainAccessError) Is(target error) bool {
	return target == ErrChainAccess
}

// PersistenceError wraps a storage failure. Hash is set when the failure
// happened after a payment was already made.
type PersistenceError struct {
	Op   string
	Hash string
	Err  error
}

func (e *PersistenceError) Error() string {
	if e.Hash != "" {
		return fmt.Sprintf("persistence failed during %s after payment %s: %v", e.Op, e.Hash, e.Err)
	}
	return fmt.Sprintf("persistence failed during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
