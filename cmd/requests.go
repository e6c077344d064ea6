package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRequestsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "Manage inbound follow requests",
	}

	cmd.AddCommand(
		newRequestsListCmd(app),
		newRequestsAcceptCmd(app),
		newRequestsRejectCmd(app),
	)

	return cmd
}

func newRequestsListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List follow requests awaiting a decision",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireAuth(cmd, app); err != nil {
				return err
			}

			requests, err := app.relationships.PendingRequests(cmd.Context())
			if err != nil {
				return err
			}

			if len(requests) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No pending follow requests.")
				return nil
			}

			for _, request := range requests {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s %s\n",
					request.RequesterID, request.Username, request.FirstName, request.LastName)
			}
			return nil
		},
	}
}

func newRequestsAcceptCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "accept <user-id>",
		Short: "Accept a follow request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(cmd, app); err != nil {
				return err
			}
			requester, err := parseUserID(args[0])
			if err != nil {
				return err
			}

			if err := app.relationships.AcceptRequest(cmd.Context(), requester); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Accepted follow request from user %d.\n", requester)
			return nil
		},
	}
}

func newRequestsRejectCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reject <user-id>",
		Short: "Reject a follow request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(cmd, app); err != nil {
				return err
			}
			requester, err := parseUserID(args[0])
			if err != nil {
				return err
			}

			if err := app.relationships.RejectRequest(cmd.Context(), requester); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Rejected follow request from user %d.\n", requester)
			return nil
		},
	}
}
