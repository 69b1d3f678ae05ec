package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/iryswiki/iryswiki/internal/adapter"
	"github.com/iryswiki/iryswiki/internal/logger"
)

// SettlePolicy decides how long to wait for a payment before and while verifying it.
// Policies only re-read; they never re-send a payment.
//
//go:generate mockgen -source=settle.go -destination=../mocks/settle.go -package=mocks -mock_names=SettlePolicy=MockSettlePolicy
type SettlePolicy interface {
	Settle(ctx context.Context, verify func(ctx context.Context) bool) bool
}

// Policy names
const (
	PolicyFixed   = "fixed"
	PolicyBackoff = "backoff"
)

// SettleConfig configures a SettlePolicy
type SettleConfig struct {
	Policy      string
	Delay       time.Duration
	MaxInterval time.Duration
	// MaxWait bounds the whole backoff settle, initial Delay included
	MaxWait time.Duration
}

// NewSettlePolicy builds the configured policy
func NewSettlePolicy(cfg SettleConfig, clock adapter.Clock) (SettlePolicy, error) {
	switch cfg.Policy {
	case "", PolicyFixed:
		return NewFixedDelay(clock, cfg.Delay), nil
	case PolicyBackoff:
		if cfg.MaxWait <= 0 {
			return nil, fmt.Errorf("backoff settle policy needs a positive max wait")
		}
		return NewBackoff(clock, cfg.Delay, cfg.MaxInterval, cfg.MaxWait), nil
	default:
		return nil, fmt.Errorf("unknown settle policy: %q", cfg.Policy)
	}
}

type fixedDelay struct {
	clock adapter.Clock
	delay time.Duration
}

// NewFixedDelay waits delay once and verifies once. A zero delay verifies immediately.
func NewFixedDelay(clock adapter.Clock, delay time.Duration) SettlePolicy {
	return &fixedDelay{clock: clock, delay: delay}
}

func (f *fixedDelay) Settle(ctx context.Context, verify func(ctx context.Context) bool) bool {
	if f.delay > 0 {
		select {
		case <-f.clock.After(f.delay):
		case <-ctx.Done():
			return false
		}
	}
	return verify(ctx)
}

var errNotSettled = errors.New("payment not settled")

type backoffPolicy struct {
	clock       adapter.Clock
	initial     time.Duration
	maxInterval time.Duration
	maxWait     time.Duration
}

// NewBackoff waits initial, then re-verifies with exponential backoff until maxWait has
// elapsed since Settle was called. When initial covers maxWait it verifies once.
func NewBackoff(clock adapter.Clock, initial, maxInterval, maxWait time.Duration) SettlePolicy {
	return &backoffPolicy{
		clock:       clock,
		initial:     initial,
		maxInterval: maxInterval,
		maxWait:     maxWait,
	}
}

func (b *backoffPolicy) Settle(ctx context.Context, verify func(ctx context.Context) bool) bool {
	if b.initial > 0 {
		select {
		case <-b.clock.After(b.initial):
		case <-ctx.Done():
			return false
		}
	}

	remaining := b.maxWait - b.initial
	if remaining <= 0 {
		return verify(ctx)
	}

	bo := backoff.NewExponentialBackOff()
	bo.Clock = b.clock
	if b.initial > 0 {
		bo.InitialInterval = b.initial
	}
	if b.maxInterval > 0 {
		bo.MaxInterval = b.maxInterval
	}
	bo.MaxElapsedTime = remaining
	bo.Reset()

	attempt := 0
	err := backoff.RetryNotify(func() error {
		attempt++
		if verify(ctx) {
			return nil
		}
		return errNotSettled
	}, backoff.WithContext(bo, ctx), func(_ error, next time.Duration) {
		logger.DebugCtx(ctx, "Payment not settled yet", zap.Int("attempt", attempt), zap.Duration("next", next))
	})

	return err == nil
}
