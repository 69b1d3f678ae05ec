package domain

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActionKind(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ActionKind
		wantErr  bool
	}{
		{name: "thread", input: "THREAD", expected: ActionThread},
		{name: "lower case reply", input: "reply", expected: ActionReply},
		{name: "padded profile", input: " Profile ", expected: ActionProfile},
		{name: "unknown", input: "LIKE", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, err := ParseActionKind(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownAction)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, action)
		})
	}
}

func TestIsValidCategory(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, IsValidCategory(c), c)
	}
	assert.False(t, IsValidCategory("random"))
	assert.False(t, IsValidCategory(""))
}

func TestFeePolicy_RequirementFor(t *testing.T) {
	policy := DefaultFeePolicy()

	tests := []struct {
		action   ActionKind
		expected string
	}{
		{action: ActionThread, expected: "0.0003"},
		{action: ActionReply, expected: "0.0001"},
		{action: ActionProfile, expected: "0.0002"},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			first, err := policy.RequirementFor(tt.action)
			require.NoError(t, err)
			second, err := policy.RequirementFor(tt.action)
			require.NoError(t, err)

			assert.Equal(t, first, second)
			assert.Equal(t, tt.expected, first.Amount)
			assert.Equal(t, DEFAULT_PAYMENT_WALLET, first.Recipient)
			assert.Equal(t, tt.action, first.Action)
		})
	}

	_, err := policy.RequirementFor("LIKE")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestFeePolicy_PurposeForAmount(t *testing.T) {
	policy := DefaultFeePolicy()

	assert.Equal(t, PurposeThread, policy.PurposeForAmount("0.0003"))
	assert.Equal(t, PurposeReply, policy.PurposeForAmount("0.0001"))
	assert.Equal(t, PurposeProfile, policy.PurposeForAmount("0.0002"))
	// exact string match only
	assert.Equal(t, PurposeUnknown, policy.PurposeForAmount("0.00030"))
	assert.Equal(t, PurposeUnknown, policy.PurposeForAmount("1"))
}

func TestFeePolicy_Validate(t *testing.T) {
	assert.NoError(t, DefaultFeePolicy().Validate())

	bad := DefaultFeePolicy()
	bad.Reply = "abc"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidAmount)

	bad = DefaultFeePolicy()
	bad.Recipient = "not-an-address"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "thread fee", input: "0.0003", expected: "300000000000000"},
		{name: "whole token", input: "1", expected: "1000000000000000000"},
		{name: "smallest unit", input: "0.000000000000000001", expected: "1"},
		{name: "zero", input: "0", expected: "0"},
		{name: "too precise", input: "0.0000000000000000001", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wei, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, wei.String())
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.0003", FormatAmount(big.NewInt(300000000000000)))
	assert.Equal(t, "0.0005", FormatAmount(big.NewInt(500000000000000)))
	assert.Equal(t, "1", FormatAmount(new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)))
	assert.Equal(t, "0", FormatAmount(nil))
}

func TestIDs(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	threadID := NewThreadID(now)
	assert.True(t, strings.HasPrefix(threadID, "thread-"))
	assert.NotEqual(t, threadID, NewThreadID(now))

	assert.True(t, strings.HasPrefix(NewReplyID(now), "reply-"))

	assert.Equal(t, "profile-0xabcdef", ProfileID("0xABCDEF"))
	assert.Equal(t, ProfileID("0xAbC"), ProfileID("0xabc"))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "0xabc", Profile{WalletAddress: "0xABC"}.Key())
	assert.Equal(t, "0xdead", VerifiedTransaction{Hash: "0xDEAD"}.Key())
	assert.Equal(t, "thread-1", Thread{ID: "thread-1"}.Key())
}

func TestTypedErrors(t *testing.T) {
	cause := errors.New("boom")

	var err error = &InsufficientBalanceError{Required: "0.0003", Balance: "0.0001", Action: ActionThread}
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Contains(t, err.Error(), "0.0003")

	err = fmt.Errorf("wrapped: %w", &PaymentVerificationFailedError{Hash: "0xabc"})
	assert.ErrorIs(t, err, ErrPaymentVerificationFailed)
	var pv *PaymentVerificationFailedError
	require.ErrorAs(t, err, &pv)
	assert.Equal(t, "0xabc", pv.Hash)

	err = &TransferRejectedError{Err: cause}
	assert.ErrorIs(t, err, ErrTransferRejected)
	assert.ErrorIs(t, err, cause)

	err = &ChainAccessError{Op: "balance", Err: cause}
	assert.ErrorIs(t, err, ErrChainAccess)
	assert.ErrorIs(t, err, cause)

	err = &PersistenceError{Op: "upsert thread", Hash: "0xabc", Err: cause}
	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "0xabc")
}
