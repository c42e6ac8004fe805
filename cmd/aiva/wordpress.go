package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"aiva/internal/service"
	"aiva/internal/wordpress"
)

func wordpressCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "wp",
		Aliases: []string{"wordpress"},
		Short:   "Publish calendar items to WordPress",
	}

	cmd.AddCommand(wpSiteCmd(configPath))
	cmd.AddCommand(wpScheduleCmd(configPath))
	cmd.AddCommand(wpPostsCmd(configPath))

	return cmd
}

func wpSiteCmd(configPath *string) *cobra.Command {
	var site wordpress.SiteConfig

	cmd := &cobra.Command{
		Use:   "site",
		Short: "Show or save the WordPress site",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			if site.URL != "" {
				if err := a.sites.Save(ctx, site); err != nil {
					return err
				}
			}
			current, err := a.sites.Site(ctx)
			if err != nil {
				return err
			}
			current.AppPassword = ""
			return printJSON(current)
		},
	}

	cmd.Flags().StringVar(&site.URL, "url", "", "Site URL to save")
	cmd.Flags().StringVar(&site.Username, "username", "", "WordPress username")
	cmd.Flags().StringVar(&site.AppPassword, "app-password", "", "WordPress application password")

	return cmd
}

func wpScheduleCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule [calendar-item-id]",
		Short: "Send a calendar item's content to WordPress at the item's date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), *configPath, func(ctx context.Context, a *app) error {
				client, err := a.wordpressClient(ctx)
				if err != nil {
					return err
				}
				post, err := service.NewWordPressScheduler(a.store, client, a.logger).Schedule(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(post)
			})
		},
	}
}

func wpPostsCmd(configPath *string) *cobra.Command {
	var (
		status string
		days   int
	)

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List posts on the WordPress site",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			client, err := a.wordpressClient(ctx)
			if err != nil {
				return err
			}

			filter := wordpress.ListFilter{Status: wordpress.PostStatus(status)}
			if days > 0 {
				filter.After = time.Now().AddDate(0, 0, -days)
			}
			posts, err := client.ListPosts(ctx, filter)
			if err != nil {
				return fmt.Errorf("list wordpress posts: %w", err)
			}
			return printJSON(posts)
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Post status (publish, future, draft)")
	cmd.Flags().IntVar(&days, "days", 0, "Only posts from the last N days")

	return cmd
}
