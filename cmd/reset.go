package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetPasswordCmd(app *app) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Reset a forgotten password with a mailed code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			detail, err := app.sessions.RequestPasswordReset(cmd.Context(), email)
			if err != nil {
				return err
			}
			if detail != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), detail)
			}

			code, err := promptSecret(cmd, "Reset code")
			if err != nil {
				return err
			}
			newPassword, err := promptSecret(cmd, "New password")
			if err != nil {
				return err
			}

			if err := app.sessions.ConfirmPasswordReset(cmd.Context(), email, code, newPassword); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Password updated. Run `snap login` to sign in.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email address")
	_ = cmd.MarkFlagRequired("email")

	cmd.AddCommand(newResetPasswordConfirmCmd(app))

	return cmd
}

// Confirm as a standalone step, for when the code arrives after the
// requesting process has exited.
func newResetPasswordConfirmCmd(app *app) *cobra.Command {
	var email string
	var code string

	cmd := &cobra.Command{
		Use:   "confirm",
		Short: "Finish a password reset started earlier",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if code == "" {
				entered, err := promptSecret(cmd, "Reset code")
				if err != nil {
					return err
				}
				code = entered
			}
			newPassword, err := promptSecret(cmd, "New password")
			if err != nil {
				return err
			}

			if err := app.sessions.ConfirmPasswordReset(cmd.Context(), email, code, newPassword); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Password updated. Run `snap login` to sign in.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email address")
	cmd.Flags().StringVar(&code, "code", "", "Reset code (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
