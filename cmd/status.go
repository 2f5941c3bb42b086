package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	statusadapter "github.com/bnema/richpresence-cli/internal/adapters/render/status"
	"github.com/bnema/richpresence-cli/internal/application"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var modeRaw string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show sessions, focus and platform presence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, ok := application.ParseDisplayMode(modeRaw)
			if !ok {
				return fmt.Errorf("invalid --mode %q (want light or dark)", modeRaw)
			}
			if _, err := app.focus.Restore(cmd.Context()); err != nil {
				return err
			}

			quiet := asJSON || !isTerminal(cmd.ErrOrStderr())
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Polling presence...", quiet, func(ctx context.Context) error {
				resumeSessions(ctx, app)
				app.poller.PollAll(ctx)
				return nil
			})
			if err != nil {
				return err
			}

			status := application.BuildStatus(app.sessions.Sessions(), app.focus, app.board, mode)
			return writeStatus(cmd, app, status, asJSON)
		},
	}

	cmd.Flags().StringVar(&modeRaw, "mode", string(application.DisplayLight), "Display mode: light or dark")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")

	return cmd
}

// resumeSessions restores cached sign-ins without prompting. Providers that
// cannot resume stay unauthenticated.
func resumeSessions(ctx context.Context, app *app) {
	for _, id := range app.sessions.Providers() {
		if _, err := app.sessions.Resume(ctx, id); err != nil {
			app.logger.DebugContext(ctx, "session not resumed",
				slog.String("provider", string(id)),
				slog.Any("error", err),
			)
		}
	}
}

func writeStatus(cmd *cobra.Command, app *app, status application.Status, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	}

	rendered, err := app.statusRenderer(status, statusadapter.RenderOptions{Now: app.now()})
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
