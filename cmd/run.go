package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/richpresence-cli/internal/config"
	"github.com/spf13/cobra"
)

func newRunCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Poll presence and track focus until interrupted",
		Long:  "Poll every enabled platform on its own interval, resume cached sign-ins without prompting, and follow config file changes until SIGINT or SIGTERM.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			focused, err := app.focus.Restore(ctx)
			if err != nil {
				return err
			}
			resumeSessions(ctx, app)
			app.poller.PollAll(ctx)

			if err := app.poller.Start(ctx); err != nil {
				return fmt.Errorf("start poller: %w", err)
			}
			defer app.poller.Stop()

			// viper reports the configured path even when the file is absent.
			if used := app.viper.ConfigFileUsed(); used != "" {
				if _, err := os.Stat(used); err == nil {
					config.Watch(app.viper, func(cfg config.Config, err error) {
						applyReload(ctx, app, cfg, err)
					})
					app.logger.Info("watching config", slog.String("path", used))
				}
			}

			app.logger.Info("presence daemon started", slog.String("focused", focused.String()))
			<-ctx.Done()
			app.logger.Info("presence daemon stopping")
			return nil
		},
	}
}

// applyReload swaps in the reloaded activity settings and poll intervals,
// repolls so disabled platforms go idle, and moves focus off a platform that
// is no longer enabled. Invalid reloads keep the old settings.
func applyReload(ctx context.Context, app *app, cfg config.Config, err error) {
	if err != nil {
		app.logger.Warn("config reload rejected", slog.Any("error", err))
		return
	}

	app.focus.SetActivityConfig(cfg.Activity)
	rescheduled, err := app.poller.SetIntervals(ctx, cfg.PollIntervals)
	if err != nil {
		app.logger.Warn("reschedule presence polls", slog.Any("error", err))
	}
	app.poller.PollAll(ctx)

	focused, err := app.focus.Rederive(ctx)
	if err != nil {
		app.logger.Warn("re-derive focus after reload", slog.Any("error", err))
		return
	}
	app.logger.Info("config reloaded",
		slog.Bool("rescheduled", rescheduled),
		slog.String("focused", focused.String()),
		slog.Bool("polling_active", cfg.Activity.PollingActive),
	)
}
