package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iryswiki/iryswiki/internal/api/middleware"
	"github.com/iryswiki/iryswiki/internal/api/server"
	"github.com/iryswiki/iryswiki/internal/domain"
	"github.com/iryswiki/iryswiki/internal/logger"
	"github.com/iryswiki/iryswiki/internal/ratelimit"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load("iryswiki-api")
			if err != nil {
				return err
			}
			defer logger.Flush(2 * time.Second)

			ctx := cmd.Context()
			logger.InfoCtx(ctx, "Starting iryswiki API", zap.String("version", version))

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.forum.Initialize(ctx); err != nil {
				if !errors.Is(err, domain.ErrNotInitialized) {
					return fmt.Errorf("failed to initialize wallet session: %w", err)
				}
				logger.WarnCtx(ctx, "No session wallet configured, paid actions are disabled")
			}

			// the limiter shares the app redis client, which the app closes
			var limiter ratelimit.Limiter
			if cfg.RateLimit.Enabled {
				limiter, err = ratelimit.NewLimiter(cfg.RateLimit, a.redis, a.clock)
				if err != nil {
					return fmt.Errorf("failed to create rate limiter: %w", err)
				}
			}

			srv := server.New(server.Config{
				Debug:        cfg.Debug,
				Host:         cfg.Server.Host,
				Port:         cfg.Server.Port,
				ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
				WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
				IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
				ExplorerURL:  cfg.Chain.ExplorerURL,
				Auth: middleware.AuthConfig{
					JWTPublicKey: cfg.Auth.JWTPublicKey,
					APIKeys:      cfg.Auth.APIKeys,
				},
			}, a.forum, limiter, a.registry)

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			select {
			case <-ctx.Done():
				logger.Info("Received shutdown signal")
			case err := <-errCh:
				if err != nil {
					logger.Error(err, zap.String("component", "server"))
					return err
				}
				return nil
			}

			// ctx is already canceled here
			shutdownCtx, cancel := context.WithTimeout(context.Background(),
				time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}

			logger.Info("API server stopped")
			return nil
		},
	}
}
