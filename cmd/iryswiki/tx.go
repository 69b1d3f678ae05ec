package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iryswiki/iryswiki/internal/api/rest/dto"
	"github.com/iryswiki/iryswiki/internal/domain"
)

func newTxCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Inspect the verified transaction ledger",
	}
	cmd.AddCommand(newTxListCmd(opts), newTxAuditCmd(opts))
	return cmd
}

func newTxListCmd(opts *rootOptions) *cobra.Command {
	var address string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List verified transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if address != "" && !domain.IsHexAddress(address) {
				return fmt.Errorf("%w: invalid wallet address %q", domain.ErrInvalidInput, address)
			}
			return opts.withApp(cmd, func(ctx context.Context, a *app) error {
				var (
					txs []domain.VerifiedTransaction
					err error
				)
				if address != "" {
					txs, err = a.forum.GetVerifiedTransactionsBy(ctx, address)
				} else {
					txs, err = a.forum.GetVerifiedTransactions(ctx)
				}
				if err != nil {
					return err
				}
				return printJSON(cmd, dto.TransactionListResponse{Transactions: txs, Total: len(txs)})
			})
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "Only list payments sent by this wallet")
	return cmd
}

func newTxAuditCmd(opts *rootOptions) *cobra.Command {
	var failOnMismatch bool
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Re-check every ledger entry against the chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app) error {
				report, err := a.forum.AuditLedger(ctx)
				if err != nil {
					return err
				}
				if err := printJSON(cmd, report); err != nil {
					return err
				}
				if failOnMismatch && report.Confirmed != report.Checked {
					return fmt.Errorf("%d of %d ledger entries did not confirm", report.Checked-report.Confirmed, report.Checked)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&failOnMismatch, "strict", false, "Exit with an error unless every entry confirms")
	return cmd
}
