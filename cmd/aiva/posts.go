package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"aiva/internal/domain"
)

func postsCmd(configPath *string) *cobra.Command {
	var platform string

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List scheduled social media posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := domain.SocialMediaPlatform(platform)
			if p != "" && !p.Valid() {
				return fmt.Errorf("unknown platform %q", platform)
			}
			return withApp(cmd.Context(), *configPath, func(ctx context.Context, a *app) error {
				return printJSON(a.store.GetSocialMediaPosts(p))
			})
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Filter by platform (LinkedIn, Twitter, Facebook, Instagram, Pinterest, TikTok)")

	return cmd
}

func campaignCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campaign",
		Short: "Inspect campaigns",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List campaigns",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), *configPath, func(ctx context.Context, a *app) error {
				return printJSON(a.store.Campaigns())
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show [id]",
		Short: "Show a campaign with its referenced items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), *configPath, func(ctx context.Context, a *app) error {
				view, ok := a.store.ResolveCampaign(args[0])
				if !ok {
					return fmt.Errorf("campaign %s: %w", args[0], domain.ErrNotFound)
				}
				return printJSON(view)
			})
		},
	})

	return cmd
}
