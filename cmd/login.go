package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/richpresence-cli/internal/domain"
	"github.com/spf13/cobra"
)

var errSignInFailed = errors.New("sign-in failed")

func newLoginCmd(app *app) *cobra.Command {
	var interactive bool
	var scopes []string

	cmd := &cobra.Command{
		Use:   "login <provider>",
		Short: "Sign in to an identity provider",
		Long:  "Sign in to an identity provider. A cached account is refreshed silently; a browser or device-code prompt opens only when the provider asks for interaction.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.ProviderID(args[0])

			var account *domain.Account
			var err error
			if interactive {
				account, err = app.sessions.LoginInteractive(cmd.Context(), id, scopes)
			} else {
				account, err = app.sessions.Login(cmd.Context(), id, scopes)
			}
			if err != nil {
				return err
			}
			if account == nil {
				session, _ := app.sessions.Session(id)
				return fmt.Errorf("%w for %s (%s)", errSignInFailed, id, session.LastError)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Signed in to %s as %s\n", id, account.DisplayName())
			return err
		},
	}

	cmd.Flags().BoolVar(&interactive, "interactive", false, "Skip silent sign-in and always prompt")
	cmd.Flags().StringSliceVar(&scopes, "scope", nil, "OAuth scope to request (repeatable; defaults to the provider's scopes)")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout <provider>",
		Short: "Sign out of an identity provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.ProviderID(args[0])

			account, err := app.sessions.Resume(cmd.Context(), id)
			if err != nil {
				return err
			}

			if account == nil {
				removed, err := app.sessions.Forget(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("forget %s accounts: %w", id, err)
				}
				if removed == 0 {
					_, err = fmt.Fprintf(cmd.OutOrStdout(), "Not signed in to %s\n", id)
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d stored %s account(s)\n", removed, id)
				return err
			}

			if err := app.sessions.Logout(cmd.Context(), id); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Signed out of %s (%s)\n", id, account.DisplayName())
			return err
		},
	}
}
