package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/iryswiki/iryswiki/internal/adapter"
	"github.com/iryswiki/iryswiki/internal/config"
	"github.com/iryswiki/iryswiki/internal/logger"
)

var (
	version = "dev"
	commit  = "unknown"
)

type rootOptions struct {
	configFile string
	envPath    string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "iryswiki",
		Short: "Payment-gated forum backed by the Irys chain",
		Long: `iryswiki stores forum threads, replies and profiles. Every write pays a
fixed IRYS fee from the session wallet and is only persisted after the
payment is verified on chain.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "Path to configuration file")
	root.PersistentFlags().StringVar(&opts.envPath, "env", "config/", "Path to environment files")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	root.AddCommand(
		newServeCmd(opts),
		newThreadCmd(opts),
		newProfileCmd(opts),
		newTxCmd(opts),
		newRequirementCmd(opts),
		newBalanceCmd(opts),
		newStatsCmd(opts),
		newWipeCmd(opts),
	)

	return root
}

// load reads the configuration and initializes the logger
func (o *rootOptions) load(service string) (*config.Config, error) {
	cfg, err := config.LoadConfig(o.configFile, o.envPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if o.debug {
		cfg.Debug = true
	}

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		Environment:     cfg.Environment,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": service,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, nil
}

// withApp loads the configuration, wires the application and runs fn with it
func (o *rootOptions) withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	cfg, err := o.load("iryswiki-cli")
	if err != nil {
		return err
	}
	defer logger.Flush(2 * time.Second)

	ctx := cmd.Context()
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}

// withSession is withApp for commands that need an initialized wallet session
func (o *rootOptions) withSession(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	return o.withApp(cmd, func(ctx context.Context, a *app) error {
		if err := a.forum.Initialize(ctx); err != nil {
			return fmt.Errorf("failed to initialize wallet session: %w", err)
		}
		return fn(ctx, a)
	})
}

// printJSON writes v as indented JSON to the command output
func printJSON(cmd *cobra.Command, v interface{}) error {
	out, err := adapter.NewJSON().MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
