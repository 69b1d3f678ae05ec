package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iryswiki/iryswiki/internal/api/rest/dto"
	"github.com/iryswiki/iryswiki/internal/domain"
)

func newRequirementCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "requirement <thread|reply|profile>",
		Short:     "Show what a paid action costs",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"thread", "reply", "profile"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := domain.ParseActionKind(args[0])
			if err != nil {
				return err
			}
			cfg, err := opts.load("iryswiki-cli")
			if err != nil {
				return err
			}
			requirement, err := cfg.FeePolicy().RequirementFor(action)
			if err != nil {
				return err
			}
			return printJSON(cmd, requirement)
		},
	}
}

func newBalanceCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the session wallet balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app) error {
				address, err := a.forum.Address()
				if err != nil {
					return err
				}
				balance, err := a.forum.Balance(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd, dto.BalanceResponse{
					Address: address,
					Balance: balance,
					Symbol:  domain.NATIVE_TOKEN_SYMBOL,
				})
			})
		},
	}
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarise the stored collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app) error {
				stats, err := a.forum.Stats(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd, stats)
			})
		},
	}
}

func newWipeCmd(opts *rootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Remove every thread, profile and ledger entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to wipe without --yes")
			}
			return opts.withApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.forum.ClearAll(ctx); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "All content removed")
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm removal of all stored content")
	return cmd
}
