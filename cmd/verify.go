package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVerifyCmd(app *app) *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "verify <username>",
		Short: "Confirm an account with the mailed verification code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if code == "" {
				entered, err := promptSecret(cmd, "Verification code")
				if err != nil {
					return err
				}
				code = entered
			}

			if err := app.sessions.VerifyAccount(cmd.Context(), args[0], code); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Account verified. Run `snap login` to sign in.")
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Verification code (prompted when omitted)")

	return cmd
}
