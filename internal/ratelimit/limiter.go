package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/iryswiki/iryswiki/internal/adapter"
	"github.com/iryswiki/iryswiki/internal/config"
	"github.com/iryswiki/iryswiki/internal/logger"
)

// REDIS_RETRY_INTERVAL is how long the limiter stays on the local fallback after a Redis error
const REDIS_RETRY_INTERVAL = 30 * time.Second

// ErrUnavailable is returned when Redis fails and the local fallback is disabled
var ErrUnavailable = errors.New("rate limiter unavailable")

// Result is the outcome of a rate limit check
type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter limits paid mutations per caller key
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit_limiter.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow consumes one token for key if one is available
	Allow(ctx context.Context, key string) (Result, error)

	// Close releases the Redis connection
	Close() error
}

type limiter struct {
	config      config.RateLimitConfig
	redis       adapter.RedisClient
	distributed adapter.RedisRateLimiter
	clock       adapter.Clock

	mu    sync.Mutex
	local map[string]*rate.Limiter

	redisAvailable atomic.Bool
	redisRetryAt   atomic.Int64
	closeOnce      sync.Once
}

// NewLimiter creates a limiter. rc may be nil, in which case only local limits apply.
func NewLimiter(cfg config.RateLimitConfig, rc adapter.RedisClient, clock adapter.Clock) (Limiter, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	l := &limiter{
		config: cfg,
		redis:  rc,
		clock:  clock,
		local:  make(map[string]*rate.Limiter),
	}

	if rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := rc.Ping(ctx).Err(); err != nil {
			if !cfg.EnableLocalFallback {
				return nil, fmt.Errorf("redis unavailable and fallback disabled: %w", err)
			}
			logger.Warn("Redis unavailable, will use local fallback", zap.Error(err))
			l.markRedisDown()
		} else {
			l.redisAvailable.Store(true)
		}
		l.distributed = rc.NewRateLimiter()
	}

	logger.Info("Rate limiter initialized",
		zap.Int("requests_per_minute", cfg.RequestsPerMinute),
		zap.Int("burst", cfg.Burst),
		zap.Bool("distributed", rc != nil),
		zap.Bool("local_fallback", cfg.EnableLocalFallback),
	)

	return l, nil
}

func (l *limiter) Allow(ctx context.Context, key string) (Result, error) {
	if l.useRedis() {
		res, err := l.distributed.Allow(ctx, l.config.RedisKeyPrefix+key, redis_rate.Limit{
			Rate:   l.config.RequestsPerMinute,
			Burst:  l.config.Burst,
			Period: time.Minute,
		})
		if err == nil {
			return Result{
				Allowed:    res.Allowed > 0,
				Remaining:  res.Remaining,
				RetryAfter: max(res.RetryAfter, 0),
			}, nil
		}
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}

		l.markRedisDown()
		if !l.config.EnableLocalFallback {
			return Result{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		logger.WarnCtx(ctx, "Redis rate limiter error, falling back to local", zap.Error(err))
	} else if l.redis != nil && !l.config.EnableLocalFallback {
		return Result{}, ErrUnavailable
	}

	return l.allowLocal(key), nil
}

// useRedis reports whether the distributed limiter should be tried
func (l *limiter) useRedis() bool {
	if l.distributed == nil {
		return false
	}
	if l.redisAvailable.Load() {
		return true
	}
	if l.clock.Now().UnixNano() >= l.redisRetryAt.Load() {
		// Give Redis another chance
		l.redisAvailable.Store(true)
		return true
	}
	return false
}

func (l *limiter) markRedisDown() {
	l.redisAvailable.Store(false)
	l.redisRetryAt.Store(l.clock.Now().Add(REDIS_RETRY_INTERVAL).UnixNano())
}

func (l *limiter) allowLocal(key string) Result {
	l.mu.Lock()
	lim, ok := l.local[key]
	if !ok {
		perSecond := float64(l.config.RequestsPerMinute) / 60 * l.config.LocalFallbackMultiplier
		lim = rate.NewLimiter(rate.Limit(perSecond), l.config.Burst)
		l.local[key] = lim
	}
	l.mu.Unlock()

	now := l.clock.Now()
	r := lim.ReserveN(now, 1)
	if !r.OK() {
		return Result{Allowed: false}
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return Result{Allowed: false, RetryAfter: delay}
	}
	return Result{Allowed: true, Remaining: int(lim.TokensAt(now))}
}

func (l *limiter) Close() error {
	var err error
	l.closeOnce.Do(func() {
		if l.redis == nil {
			return
		}
		if closeErr := l.redis.Close(); closeErr != nil {
			logger.Warn("Error closing Redis connection", zap.Error(closeErr))
			err = closeErr
		}
	})
	return err
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *config.RateLimitConfig) error {
	if cfg.RequestsPerMinute <= 0 {
		return fmt.Errorf("requests_per_minute must be positive")
	}

	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerMinute
	}

	if cfg.RedisKeyPrefix == "" {
		cfg.RedisKeyPrefix = "iryswiki:limiter:"
	}

	if cfg.LocalFallbackMultiplier <= 0 {
		cfg.LocalFallbackMultiplier = 1.0
	}

	return nil
}
