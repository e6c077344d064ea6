//go:build !unix

package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

func newLockRunCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Consume lifecycle transitions until interrupted",
		RunE: func(_ *cobra.Command, _ []string) error {
			return errors.New("lock run relies on terminal job-control signals and is unavailable on this platform")
		},
	}
}
