package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newLockCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Drive the foreground/background app lock",
	}

	cmd.AddCommand(
		newLockStatusCmd(app),
		newLockUnlockCmd(app),
		newLockSuppressCmd(app),
		newLockEnrollCmd(app),
		newLockRunCmd(app),
	)

	return cmd
}

func newLockStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the lock state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := app.lock.State()
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "locked:\t%t\n", state.Locked)
			_, _ = fmt.Fprintf(out, "checks enabled:\t%t\n", state.ChecksEnabled)
			if !state.SuppressUntil.IsZero() {
				_, _ = fmt.Fprintf(out, "suppressed until:\t%s\n", state.SuppressUntil.Format("15:04:05"))
			}
			return nil
		},
	}
}

func newLockUnlockCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unlock",
		Short: "Clear the lock after a passphrase challenge",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.lock.Unlock(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Unlocked.")
			return nil
		},
	}
}

func newLockSuppressCmd(app *app) *cobra.Command {
	var window time.Duration

	cmd := &cobra.Command{
		Use:   "suppress",
		Short: "Disable lock checks for a window, as around a media picker",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if window <= 0 {
				window = app.pickerSuppression
			}

			app.lock.SuppressFor(window)

			state := app.lock.State()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Checks suppressed until %s.\n",
				state.SuppressUntil.Format("15:04:05"))
			return nil
		},
	}

	cmd.Flags().DurationVar(&window, "for", 0, "Suppression window (defaults to lock.picker_suppression)")

	return cmd
}

func newLockEnrollCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "enroll",
		Short: "Set the unlock passphrase",
		RunE: func(cmd *cobra.Command, _ []string) error {
			passphrase, err := promptSecret(cmd, "New passphrase")
			if err != nil {
				return err
			}
			confirm, err := promptSecret(cmd, "Confirm passphrase")
			if err != nil {
				return err
			}
			if passphrase != confirm {
				return fmt.Errorf("passphrases do not match")
			}

			if err := app.reauth.Enroll(cmd.Context(), []byte(passphrase)); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Passphrase enrolled.")
			return nil
		},
	}
}
