package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "snap",
		Short:         "Snapfeed CLI: sessions, social graph, and app lock from the terminal",
		Long:          "snap signs in to a Snapfeed backend, keeps the session token pair fresh behind the scenes, tracks who you follow with eventual-consistency reconciliation, and drives the foreground/background app lock.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRegisterCmd(app),
		newVerifyCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newResetPasswordCmd(app),
		newProfileCmd(app),
		newFollowCmd(app),
		newUnfollowCmd(app),
		newStatusCmd(app),
		newRequestsCmd(app),
		newRelationsCmd(app),
		newLockCmd(app),
	)

	return rootCmd
}
