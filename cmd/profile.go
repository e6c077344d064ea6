package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/snapfeed-cli/internal/domain"
	"github.com/bnema/snapfeed-cli/internal/ports"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show and edit the signed-in profile",
	}

	cmd.AddCommand(newProfileShowCmd(app), newProfileSetCmd(app))

	return cmd
}

func newProfileShowCmd(app *app) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the profile snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireAuth(cmd, app); err != nil {
				return err
			}

			var profile domain.Profile
			var err error
			if refresh {
				profile, err = app.profiles.Refresh(cmd.Context())
			} else {
				profile, err = app.profiles.Cached(cmd.Context())
				if errors.Is(err, domain.ErrProfileNotFound) {
					profile, err = app.profiles.Refresh(cmd.Context())
				}
			}
			if err != nil {
				return err
			}

			printProfile(cmd, profile)
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Fetch from the server instead of the local snapshot")

	return cmd
}

func newProfileSetCmd(app *app) *cobra.Command {
	var bio string
	var twoFactor bool
	var biometric bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireAuth(cmd, app); err != nil {
				return err
			}

			var update ports.ProfileUpdate
			if cmd.Flags().Changed("bio") {
				update.Bio = &bio
			}
			if cmd.Flags().Changed("two-factor") {
				update.TwoFactorEnabled = &twoFactor
			}
			if cmd.Flags().Changed("biometric-lock") {
				update.BiometricEnabled = &biometric
			}
			if update.Bio == nil && update.TwoFactorEnabled == nil && update.BiometricEnabled == nil {
				return errors.New("nothing to update: pass --bio, --two-factor, or --biometric-lock")
			}

			profile, err := app.profiles.Update(cmd.Context(), update)
			if err != nil {
				return err
			}

			printProfile(cmd, profile)
			return nil
		},
	}

	cmd.Flags().StringVar(&bio, "bio", "", "Profile bio text")
	cmd.Flags().BoolVar(&twoFactor, "two-factor", false, "Require a mailed code on every login")
	cmd.Flags().BoolVar(&biometric, "biometric-lock", false, "Lock the app after background periods")

	return cmd
}

func printProfile(cmd *cobra.Command, profile domain.Profile) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s (%s %s)\n", profile.Username, profile.FirstName, profile.LastName)
	_, _ = fmt.Fprintf(out, "email:\t%s\n", profile.Email)
	if profile.Bio != "" {
		_, _ = fmt.Fprintf(out, "bio:\t%s\n", profile.Bio)
	}
	_, _ = fmt.Fprintf(out, "private:\t%t\tverified:\t%t\n", profile.IsPrivate, profile.IsVerified)
	_, _ = fmt.Fprintf(out, "2fa:\t%t\tbiometric lock:\t%t\n", profile.TwoFactorEnabled, profile.BiometricEnabled)
}
