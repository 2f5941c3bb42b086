package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/richpresence-cli/internal/application"
	"github.com/bnema/richpresence-cli/internal/domain"
	"github.com/spf13/cobra"
)

type presenceOutput struct {
	Platform domain.Platform             `json:"platform"`
	Image    string                      `json:"image"`
	Style    application.StyleDescriptor `json:"style"`
	CSS      string                      `json:"css"`
	Presence *domain.Presence            `json:"presence,omitempty"`
}

func newPresenceCmd(app *app) *cobra.Command {
	var modeRaw string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "presence <platform>",
		Short: "Poll a platform and print its presence image and tile style",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			platform, err := domain.ParsePlatform(args[0])
			if err != nil {
				return err
			}
			if platform.IsNone() {
				return fmt.Errorf("%w: presence needs a platform", domain.ErrUnknownPlatform)
			}
			mode, ok := application.ParseDisplayMode(modeRaw)
			if !ok {
				return fmt.Errorf("invalid --mode %q (want light or dark)", modeRaw)
			}

			if _, err := app.poller.PollOnce(cmd.Context(), platform); err != nil {
				return err
			}

			style := app.board.PresenceStyle(platform, mode)
			out := presenceOutput{
				Platform: platform,
				Image:    app.board.PresenceImage(platform),
				Style:    style,
				CSS:      style.CSS(),
				Presence: app.board.Get(platform),
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			w := cmd.OutOrStdout()
			if out.Presence != nil {
				if _, err := fmt.Fprintf(w, "%s: %s\n", platform.Label(), out.Presence.Details); err != nil {
					return err
				}
			} else if _, err := fmt.Fprintf(w, "%s: idle\n", platform.Label()); err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "image: %s\ncss: %s\n", out.Image, out.CSS)
			return err
		},
	}

	cmd.Flags().StringVar(&modeRaw, "mode", string(application.DisplayLight), "Display mode: light or dark")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")

	return cmd
}
