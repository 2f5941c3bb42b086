package cmd

import (
	"github.com/spf13/cobra"
)

// skipWiringAnnotation marks commands that run without config or storage.
const skipWiringAnnotation = "rp/skip-wiring"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := &app{}
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:           "rp",
		Short:         "Rich presence CLI (rp): sign in to gaming services and track platform focus",
		Long:          "rp signs in to identity providers (Xbox, Twitch), keeps track of which gaming platform holds the display focus, and projects each platform's live presence into a display style.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipWiringAnnotation] == "true" {
				return nil
			}
			return app.wire(flags, cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Config file (default ~/.richpresence/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newFocusCmd(app),
		newUnfocusCmd(app),
		newPresenceCmd(app),
		newStatusCmd(app),
		newRunCmd(app),
	)

	return rootCmd
}
