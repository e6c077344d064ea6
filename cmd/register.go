package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRegisterCmd(app *app) *cobra.Command {
	var firstName string
	var lastName string
	var email string
	var password string
	var previewOnly bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and verify it with the mailed code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if previewOnly {
				username, err := app.sessions.PreviewUsername(cmd.Context(), firstName, lastName, email)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), username)
				return nil
			}

			if password == "" {
				entered, err := promptSecret(cmd, "Password")
				if err != nil {
					return err
				}
				password = entered
			}

			username, err := app.sessions.Register(cmd.Context(), firstName, lastName, email, password)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Account %s created.\n", username)
			if challenge, ok := app.sessions.Challenge(); ok && challenge.Message != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), challenge.Message)
			}

			code, err := promptSecret(cmd, "Verification code")
			if err != nil {
				return err
			}
			if err := app.sessions.VerifyOTP(cmd.Context(), code); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Account verified. Run `snap login` to sign in.")
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	cmd.Flags().BoolVar(&previewOnly, "preview-username", false, "Only print the username the server would assign")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
