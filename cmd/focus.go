package cmd

import (
	"fmt"

	"github.com/bnema/richpresence-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newFocusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "focus <platform|none>",
		Short: "Give a platform the display focus",
		Long:  "Give a platform the display focus. The platform must be enabled in the config; \"none\" clears the focus.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			platform, err := domain.ParsePlatform(args[0])
			if err != nil {
				return err
			}
			if _, err := app.focus.Restore(cmd.Context()); err != nil {
				return err
			}
			if err := app.focus.Focus(cmd.Context(), platform); err != nil {
				return err
			}

			if platform.IsNone() {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "Focus cleared")
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Focused %s\n", platform.Label())
			return err
		},
	}
}

func newUnfocusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unfocus <platform>",
		Short: "Hand focus to the next enabled platform in priority order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			platform, err := domain.ParsePlatform(args[0])
			if err != nil {
				return err
			}
			if platform.IsNone() {
				return fmt.Errorf("%w: unfocus needs a platform", domain.ErrUnknownPlatform)
			}
			if _, err := app.focus.Restore(cmd.Context()); err != nil {
				return err
			}

			next, err := app.focus.Unfocus(cmd.Context(), platform)
			if err != nil {
				return err
			}
			if next.IsNone() {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No platform holds focus")
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Focused %s\n", next.Label())
			return err
		},
	}
}
