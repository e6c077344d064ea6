package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/snapfeed-cli/internal/domain"
)

func newFollowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "follow <user-id>",
		Short: "Follow a user (or send a request to a private account)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(cmd, app); err != nil {
				return err
			}
			subject, err := parseUserID(args[0])
			if err != nil {
				return err
			}

			record, err := app.relationships.Follow(cmd.Context(), subject)
			if err != nil {
				if hint := explainError(err); hint != "" {
					return fmt.Errorf("%w (%s)", err, hint)
				}
				return err
			}

			printRelationship(cmd, record)
			return nil
		},
	}
}

func newUnfollowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unfollow <user-id>",
		Short: "Unfollow a user or withdraw a pending request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(cmd, app); err != nil {
				return err
			}
			subject, err := parseUserID(args[0])
			if err != nil {
				return err
			}

			record, err := app.relationships.Unfollow(cmd.Context(), subject)
			if err != nil {
				return err
			}

			printRelationship(cmd, record)
			return nil
		},
	}
}

func newStatusCmd(app *app) *cobra.Command {
	var cached bool

	cmd := &cobra.Command{
		Use:   "status <user-id>",
		Short: "Show the follow relationship with a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(cmd, app); err != nil {
				return err
			}
			subject, err := parseUserID(args[0])
			if err != nil {
				return err
			}

			record := app.relationships.Status(subject)
			if !cached {
				record, err = app.relationships.RefreshStatus(cmd.Context(), subject)
				if err != nil {
					return err
				}
			}

			printRelationship(cmd, record)
			return nil
		},
	}

	cmd.Flags().BoolVar(&cached, "cached", false, "Answer from the local cache without a round-trip")

	return cmd
}

func parseUserID(raw string) (domain.UserID, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid user id %q", raw)
	}
	return domain.UserID(id), nil
}

func printRelationship(cmd *cobra.Command, record domain.Relationship) {
	label := "not following"
	switch {
	case record.Requested:
		label = "requested"
	case record.Following:
		label = "following"
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "user %d: %s\n", record.SubjectID, label)
}
