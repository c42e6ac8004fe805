package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"aiva/internal/scheduler"
)

func runCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Load the data store and keep it refreshed until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			a, err := newApp(ctx, *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			if a.local != nil {
				// The scheduler's first refresh would skip seeding.
				if err := a.local.Start(ctx); err != nil {
					return err
				}
			} else if err := a.remote.SetUser(ctx, a.cfg.Session.UserID); err != nil {
				a.logger.Error("initial load failed", "error", err)
			}

			a.logger.Info("starting aiva",
				"remote", a.cfg.Remote(),
				"interval", a.cfg.Sync.Interval,
			)

			sched := scheduler.NewScheduler(a.store, a.cfg.Sync.Interval, a.logger)
			if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("scheduler: %w", err)
			}
			return nil
		},
	}
}

func seedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the local store, seeding sample data on first run",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), *configPath, func(ctx context.Context, a *app) error {
				if a.local == nil {
					fmt.Fprintln(os.Stderr, "remote data store is never seeded")
					return nil
				}
				fmt.Printf("profiles: %d, content: %d, graphics: %d, calendar: %d, campaigns: %d\n",
					len(a.store.ICPs()),
					len(a.store.ContentItems()),
					len(a.store.GraphicItems()),
					len(a.store.CalendarItems()),
					len(a.store.Campaigns()),
				)
				return nil
			})
		},
	}
}

func resetCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete all local data; the next start seeds sample data again",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			if a.local == nil {
				return errors.New("reset only applies to the local data store")
			}
			return a.local.Reset(ctx)
		},
	}
}
