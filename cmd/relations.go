package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	relationsrender "github.com/bnema/snapfeed-cli/internal/adapters/render/relations"
	"github.com/bnema/snapfeed-cli/internal/domain"
)

func newRelationsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relations",
		Short: "Track follow relationships across several users",
	}

	cmd.AddCommand(
		newRelationsShowCmd(app),
		newRelationsWatchCmd(app),
		newRelationsFollowersCmd(app),
		newRelationsFollowingCmd(app),
	)

	return cmd
}

func newRelationsShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <user-id>...",
		Short: "Fetch and render relationships with the given users",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(cmd, app); err != nil {
				return err
			}
			subjects, err := parseUserIDs(args)
			if err != nil {
				return err
			}

			err = runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching follow status...", func(ctx context.Context) error {
				return fetchStatuses(ctx, app, subjects)
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), relationsrender.Render(app.relationships.All(), relationsrender.RenderOptions{}))
			return nil
		},
	}
}

func newRelationsWatchCmd(app *app) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch <user-id>...",
		Short: "Re-render relationships as pending requests resolve",
		Long:  "watch polls the authoritative follow status of every subject still in the requested state, so a request accepted or rejected by the other party shows up without a manual refresh. Runs until interrupted.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(cmd, app); err != nil {
				return err
			}
			subjects, err := parseUserIDs(args)
			if err != nil {
				return err
			}
			if interval <= 0 {
				interval = app.reconcileInterval
			}

			ctx := cmd.Context()
			if err := fetchStatuses(ctx, app, subjects); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), relationsrender.Render(app.relationships.All(), relationsrender.RenderOptions{}))

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					app.relationships.ReconcileAllPending(ctx)
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), relationsrender.Render(app.relationships.All(), relationsrender.RenderOptions{}))
				}
			}
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "Reconcile interval (defaults to reconcile.interval from config)")

	return cmd
}

func newRelationsFollowersCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "followers <user-id>",
		Short: "List a user's followers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(cmd, app); err != nil {
				return err
			}
			user, err := parseUserID(args[0])
			if err != nil {
				return err
			}

			summaries, err := app.relationships.Followers(cmd.Context(), user)
			if err != nil {
				return err
			}
			printUserSummaries(cmd, summaries)
			return nil
		},
	}
}

func newRelationsFollowingCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "following <user-id>",
		Short: "List who a user follows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(cmd, app); err != nil {
				return err
			}
			user, err := parseUserID(args[0])
			if err != nil {
				return err
			}

			summaries, err := app.relationships.Following(cmd.Context(), user)
			if err != nil {
				return err
			}
			printUserSummaries(cmd, summaries)
			return nil
		},
	}
}

func parseUserIDs(args []string) ([]domain.UserID, error) {
	subjects := make([]domain.UserID, 0, len(args))
	for _, arg := range args {
		subject, err := parseUserID(arg)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}
	return subjects, nil
}

// fetchStatuses seeds the cache with authoritative records. Individual
// failures abort: a partial table is worse than an error.
func fetchStatuses(ctx context.Context, app *app, subjects []domain.UserID) error {
	for _, subject := range subjects {
		if _, err := app.relationships.RefreshStatus(ctx, subject); err != nil {
			return err
		}
	}
	return nil
}

func printUserSummaries(cmd *cobra.Command, summaries []domain.UserSummary) {
	if len(summaries) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Nobody here yet.")
		return
	}
	for _, summary := range summaries {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", summary.ID, summary.Username)
	}
}
