package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var username string
	var password string
	var code string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with username and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				entered, err := promptSecret(cmd, "Password")
				if err != nil {
					return err
				}
				password = entered
			}

			requires2FA, err := app.sessions.Login(cmd.Context(), username, password)
			if err != nil {
				if hint := explainError(err); hint != "" {
					return fmt.Errorf("%w (%s)", err, hint)
				}
				return err
			}

			if requires2FA {
				if code == "" {
					if challenge, ok := app.sessions.Challenge(); ok && challenge.Message != "" {
						fmt.Fprintln(cmd.ErrOrStderr(), challenge.Message)
					}
					entered, err := promptSecret(cmd, "2FA code")
					if err != nil {
						return err
					}
					code = entered
				}
				if err := app.sessions.Verify2FA(cmd.Context(), code); err != nil {
					return err
				}
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signed in.")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Account username")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	cmd.Flags().StringVar(&code, "code", "", "2FA code (prompted when the account requires it)")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget local state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.sessions.Restore(cmd.Context())
			app.sessions.Logout(cmd.Context())
			app.relationships.Clear()
			app.lock.Reset()

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}
