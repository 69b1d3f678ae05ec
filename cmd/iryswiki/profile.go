package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iryswiki/iryswiki/internal/api/rest/dto"
	"github.com/iryswiki/iryswiki/internal/domain"
)

func newProfileCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Read and write wallet profiles",
	}
	cmd.AddCommand(newProfileGetCmd(opts), newProfileSaveCmd(opts))
	return cmd
}

func newProfileGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <address>",
		Short: "Show the profile of a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.IsHexAddress(args[0]) {
				return fmt.Errorf("%w: invalid wallet address %q", domain.ErrInvalidInput, args[0])
			}
			return opts.withApp(cmd, func(ctx context.Context, a *app) error {
				profile, err := a.forum.GetProfile(ctx, args[0])
				if err != nil {
					return err
				}
				if profile == nil {
					return fmt.Errorf("no profile for %s", args[0])
				}
				return printJSON(cmd, profile)
			})
		},
	}
}

func newProfileSaveCmd(opts *rootOptions) *cobra.Command {
	var req dto.SaveProfileRequest
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Pay the profile fee and save the session wallet profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withSession(cmd, func(ctx context.Context, a *app) error {
				hash, err := a.forum.SaveProfile(ctx, req.ToDomain())
				if err != nil {
					return err
				}
				return printReceipt(cmd, a, hash)
			})
		},
	}
	cmd.Flags().StringVar(&req.Username, "username", "", "Display name")
	cmd.Flags().StringVar(&req.Bio, "bio", "", "Short biography")
	cmd.Flags().StringVar(&req.AvatarURL, "avatar", "", "Avatar as an http(s) URL or a data URI")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}
