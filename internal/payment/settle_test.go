package payment_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iryswiki/iryswiki/internal/adapter"
	"github.com/iryswiki/iryswiki/internal/mocks"
	"github.com/iryswiki/iryswiki/internal/payment"
)

func firedAfter() <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}

func TestFixedDelay(t *testing.T) {
	t.Run("waits once then verifies once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clock := mocks.NewMockClock(ctrl)
		clock.EXPECT().After(2 * time.Second).Return(firedAfter())

		calls := 0
		ok := payment.NewFixedDelay(clock, 2*time.Second).Settle(context.Background(), func(context.Context) bool {
			calls++
			return true
		})
		assert.True(t, ok)
		assert.Equal(t, 1, calls)
	})

	t.Run("zero delay verifies immediately", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clock := mocks.NewMockClock(ctrl)

		ok := payment.NewFixedDelay(clock, 0).Settle(context.Background(), func(context.Context) bool {
			return false
		})
		assert.False(t, ok)
	})

	t.Run("cancelled while waiting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clock := mocks.NewMockClock(ctrl)
		clock.EXPECT().After(gomock.Any()).Return(make(chan time.Time))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ok := payment.NewFixedDelay(clock, time.Second).Settle(ctx, func(context.Context) bool {
			t.Fatal("must not verify")
			return true
		})
		assert.False(t, ok)
	})
}

func TestBackoff(t *testing.T) {
	t.Run("retries until verified", func(t *testing.T) {
		calls := 0
		policy := payment.NewBackoff(adapter.NewClock(), time.Millisecond, 5*time.Millisecond, 5*time.Second)

		ok := policy.Settle(context.Background(), func(context.Context) bool {
			calls++
			return calls == 3
		})
		assert.True(t, ok)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max wait", func(t *testing.T) {
		calls := 0
		policy := payment.NewBackoff(adapter.NewClock(), time.Millisecond, 5*time.Millisecond, 50*time.Millisecond)

		ok := policy.Settle(context.Background(), func(context.Context) bool {
			calls++
			return false
		})
		assert.False(t, ok)
		assert.Greater(t, calls, 1)
	})

	t.Run("initial wait counts toward max wait", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clock := mocks.NewMockClock(ctrl)
		clock.EXPECT().After(50 * time.Millisecond).Return(firedAfter())

		calls := 0
		policy := payment.NewBackoff(clock, 50*time.Millisecond, 5*time.Millisecond, 50*time.Millisecond)

		ok := policy.Settle(context.Background(), func(context.Context) bool {
			calls++
			return false
		})
		assert.False(t, ok)
		assert.Equal(t, 1, calls)
	})

	t.Run("bounded by max wait overall", func(t *testing.T) {
		policy := payment.NewBackoff(adapter.NewClock(), 40*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond)

		start := time.Now()
		ok := policy.Settle(context.Background(), func(context.Context) bool {
			return false
		})
		assert.False(t, ok)
		assert.Less(t, time.Since(start), 95*time.Millisecond)
	})
}

func TestNewSettlePolicy(t *testing.T) {
	clock := adapter.NewClock()

	p, err := payment.NewSettlePolicy(payment.SettleConfig{Delay: time.Second}, clock)
	require.NoError(t, err)
	assert.NotNil(t, p)

	p, err = payment.NewSettlePolicy(payment.SettleConfig{Policy: payment.PolicyBackoff, Delay: time.Second, MaxWait: time.Minute}, clock)
	require.NoError(t, err)
	assert.NotNil(t, p)

	_, err = payment.NewSettlePolicy(payment.SettleConfig{Policy: payment.PolicyBackoff}, clock)
	assert.Error(t, err)

	_, err = payment.NewSettlePolicy(payment.SettleConfig{Policy: "poll"}, clock)
	assert.Error(t, err)
}
