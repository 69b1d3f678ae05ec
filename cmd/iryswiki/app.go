package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/iryswiki/iryswiki/internal/adapter"
	"github.com/iryswiki/iryswiki/internal/config"
	"github.com/iryswiki/iryswiki/internal/forum"
	"github.com/iryswiki/iryswiki/internal/logger"
	"github.com/iryswiki/iryswiki/internal/messaging"
	"github.com/iryswiki/iryswiki/internal/metrics"
	"github.com/iryswiki/iryswiki/internal/payment"
	"github.com/iryswiki/iryswiki/internal/providers/ethereum"
	"github.com/iryswiki/iryswiki/internal/providers/jetstream"
	"github.com/iryswiki/iryswiki/internal/store"
	"github.com/iryswiki/iryswiki/internal/uri"
)

// app holds the wired components shared by every command
type app struct {
	cfg       *config.Config
	clock     adapter.Clock
	redis     adapter.RedisClient
	chain     ethereum.Client
	store     store.Store
	publisher messaging.Publisher
	registry  *prometheus.Registry
	forum     forum.Forum
}

func newApp(ctx context.Context, cfg *config.Config) (a *app, err error) {
	a = &app{
		cfg:      cfg,
		clock:    adapter.NewClock(),
		registry: prometheus.NewRegistry(),
	}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewPrometheusRecorder(a.registry)

	backend, err := store.ParseBackend(cfg.Storage.Backend)
	if err != nil {
		return nil, err
	}
	if backend == store.BackendRedis || cfg.RateLimit.Enabled {
		a.redis = adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}

	kv, err := openKeyValueStore(ctx, backend, cfg, a.redis)
	if err != nil {
		return nil, err
	}
	a.store = store.NewStore(kv, cfg.StorageKeys(), adapter.NewJSON())

	a.chain, err = dialChain(ctx, cfg)
	if err != nil {
		return nil, err
	}

	settle, err := payment.NewSettlePolicy(cfg.SettlePolicyConfig(), a.clock)
	if err != nil {
		return nil, fmt.Errorf("invalid settle policy: %w", err)
	}

	a.publisher = messaging.NewNoopPublisher()
	if cfg.NATS.URL != "" {
		a.publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), adapter.NewJSON())
		if err != nil {
			return nil, fmt.Errorf("failed to create event publisher: %w", err)
		}
	}

	fees := cfg.FeePolicy()
	verifier := payment.NewVerifier(a.chain, fees, a.store, a.clock, recorder)
	avatars := uri.NewDataURIChecker(cfg.Media.MaxAvatarSize, cfg.Media.AllowedMimeTypes)

	a.forum = forum.New(forum.Config{
		ChainID:      cfg.ChainIDBig(),
		Fees:         fees,
		AuditWorkers: cfg.Audit.WorkerPoolSize,
	}, a.store, a.chain, verifier, settle, avatars, a.publisher, recorder, a.clock)

	logger.InfoCtx(ctx, "Application wired",
		zap.String("storage", string(backend)),
		zap.Int64("chain_id", cfg.Chain.ChainID),
		zap.Bool("events", cfg.NATS.URL != ""),
	)

	return a, nil
}

func openKeyValueStore(ctx context.Context, backend store.Backend, cfg *config.Config, rc adapter.RedisClient) (store.KeyValueStore, error) {
	switch backend {
	case store.BackendMemory:
		logger.WarnCtx(ctx, "Using in-memory storage, content is lost on exit")
		return store.NewMemoryKV(), nil
	case store.BackendPebble:
		kv, err := store.OpenPebble(cfg.Storage.PebblePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open pebble store: %w", err)
		}
		return kv, nil
	case store.BackendPostgres:
		db, err := store.OpenPostgres(cfg.Database.DSN(),
			cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns,
			cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime)
		if err != nil {
			return nil, err
		}
		logger.InfoCtx(ctx, "Connected to database",
			zap.String("host", cfg.Database.Host),
			zap.String("dbname", cfg.Database.DBName),
		)
		return store.NewPGKV(db), nil
	case store.BackendRedis:
		if err := rc.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return store.NewRedisKV(rc), nil
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", backend)
	}
}

// dialChain connects to the RPC endpoint. Without a private key the client is read-only.
func dialChain(ctx context.Context, cfg *config.Config) (ethereum.Client, error) {
	ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Chain.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", cfg.Chain.RPCURL, err)
	}

	var signer adapter.Signer
	if cfg.Chain.PrivateKey != "" {
		signer, err = adapter.NewKeySigner(cfg.Chain.PrivateKey)
		if err != nil {
			ethClient.Close()
			return nil, fmt.Errorf("invalid session wallet key: %w", err)
		}
	}

	return ethereum.NewClient(cfg.ChainIDBig(), ethClient, signer), nil
}

// Close releases every component that was opened
func (a *app) Close() {
	if a.publisher != nil {
		a.publisher.Close()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			logger.Error(fmt.Errorf("failed to close store: %w", err))
		}
	}
	if a.chain != nil {
		a.chain.Close()
	}
	// a redis backed store closes the shared client itself
	if a.redis != nil && (a.store == nil || a.cfg.Storage.Backend != string(store.BackendRedis)) {
		if err := a.redis.Close(); err != nil {
			logger.Error(fmt.Errorf("failed to close redis: %w", err))
		}
	}
}
