//go:build unix

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/snapfeed-cli/internal/adapters/lifecycle/signals"
)

// newLockRunCmd drives the lock machine from terminal job control:
// suspending the process (Ctrl-Z) is a background transition, resuming
// (fg) a foreground one. SIGUSR1 opens a picker-style suppression window,
// SIGUSR2 brackets an upload-style system operation.
func newLockRunCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Consume lifecycle transitions until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			source := signals.NewSource()
			defer func() { _ = source.Close() }()

			go app.lock.Run(ctx, source)

			control := make(chan os.Signal, 2)
			signal.Notify(control, syscall.SIGUSR1, syscall.SIGUSR2)
			defer signal.Stop(control)

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "Watching lifecycle transitions. Ctrl-Z backgrounds, fg foregrounds, Ctrl-C exits.")
			_, _ = fmt.Fprintln(out, "SIGUSR1 suppresses checks for the picker window, SIGUSR2 toggles the upload bracket.")

			uploadInProgress := false
			wasLocked := app.lock.Locked()
			ticker := time.NewTicker(250 * time.Millisecond)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return nil
				case sig := <-control:
					switch sig {
					case syscall.SIGUSR1:
						app.lock.SuppressFor(app.pickerSuppression)
						_, _ = fmt.Fprintf(out, "Checks suppressed for %s.\n", app.pickerSuppression)
					case syscall.SIGUSR2:
						if uploadInProgress {
							app.lock.ReenableAfterSystemOperation(app.uploadReenable)
							_, _ = fmt.Fprintf(out, "Upload finished, checks re-arm in %s.\n", app.uploadReenable)
						} else {
							app.lock.DisableForSystemOperation()
							_, _ = fmt.Fprintln(out, "Upload started, checks disabled.")
						}
						uploadInProgress = !uploadInProgress
					}
				case <-ticker.C:
					locked := app.lock.Locked()
					if locked == wasLocked {
						continue
					}
					wasLocked = locked
					if !locked {
						_, _ = fmt.Fprintln(out, "Unlocked.")
						continue
					}
					_, _ = fmt.Fprintln(out, "App locked.")
					if err := app.lock.Unlock(ctx); err != nil {
						_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "unlock failed: %v\n", err)
					} else {
						wasLocked = false
						_, _ = fmt.Fprintln(out, "Unlocked.")
					}
				}
			}
		},
	}
}
