package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iryswiki/iryswiki/internal/api/rest/dto"
	"github.com/iryswiki/iryswiki/internal/domain"
)

func newThreadCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thread",
		Short: "Read and write forum threads",
	}
	cmd.AddCommand(
		newThreadListCmd(opts),
		newThreadShowCmd(opts),
		newThreadCreateCmd(opts),
		newThreadReplyCmd(opts),
		newCategoriesCmd(opts),
	)
	return cmd
}

func newThreadListCmd(opts *rootOptions) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List threads, most recent activity first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if category != "" && !domain.IsValidCategory(domain.Category(category)) {
				return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, category)
			}
			return opts.withApp(cmd, func(ctx context.Context, a *app) error {
				threads, err := a.forum.ListThreads(ctx)
				if err != nil {
					return err
				}
				if category != "" {
					filtered := threads[:0]
					for _, t := range threads {
						if string(t.Category) == category {
							filtered = append(filtered, t)
						}
					}
					threads = filtered
				}
				return printJSON(cmd, dto.ThreadListResponse{Threads: threads, Total: len(threads)})
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only list threads of this category")
	return cmd
}

func newThreadShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <thread-id>",
		Short: "Show a thread and its replies, counting a view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a *app) error {
				thread, err := a.forum.GetThread(ctx, args[0])
				if err != nil {
					return err
				}
				if thread == nil {
					return fmt.Errorf("%w: %s", domain.ErrThreadNotFound, args[0])
				}
				return printJSON(cmd, thread)
			})
		},
	}
}

func newThreadCreateCmd(opts *rootOptions) *cobra.Command {
	var req dto.CreateThreadRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Pay the thread fee and create a thread",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withSession(cmd, func(ctx context.Context, a *app) error {
				hash, err := a.forum.CreateThread(ctx, req.ToDomain())
				if err != nil {
					return err
				}
				return printReceipt(cmd, a, hash)
			})
		},
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "Thread title")
	cmd.Flags().StringVar(&req.Category, "category", string(domain.CategoryGeneral), "Thread category")
	cmd.Flags().StringVar(&req.Content, "content", "", "Thread body")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}

func newThreadReplyCmd(opts *rootOptions) *cobra.Command {
	var req dto.CreateReplyRequest
	cmd := &cobra.Command{
		Use:   "reply <thread-id>",
		Short: "Pay the reply fee and reply to a thread",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(cmd, func(ctx context.Context, a *app) error {
				hash, err := a.forum.CreateReply(ctx, args[0], domain.NewReply{Content: req.Content})
				if err != nil {
					return err
				}
				return printReceipt(cmd, a, hash)
			})
		},
	}
	cmd.Flags().StringVar(&req.Content, "content", "", "Reply body")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}

func newCategoriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List thread categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd, domain.Categories())
		},
	}
}

func printReceipt(cmd *cobra.Command, a *app, hash string) error {
	return printJSON(cmd, dto.ReceiptResponse{
		TransactionHash: hash,
		ExplorerURL:     a.cfg.ExplorerTxURL(hash),
	})
}
