package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bnema/snapfeed-cli/internal/domain"
)

// promptSecret reads a secret from the terminal without echo. Falls back
// to a plain line read when stdin is not a terminal (piped input).
func promptSecret(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: ", label)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		secret, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read %s: %w", label, err)
		}
		return string(secret), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read %s: %w", label, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// requireAuth restores the persisted session and fails fast when no
// credential pair is held.
func requireAuth(cmd *cobra.Command, app *app) error {
	app.sessions.Restore(cmd.Context())
	if !app.sessions.Authenticated() {
		return errors.New("not signed in: run `snap login` first")
	}
	return nil
}

func explainError(err error) string {
	switch {
	case domain.IsNetworkError(err):
		return "network unreachable, nothing was changed"
	case domain.IsAuthorizationError(err):
		return "the server rejected the credentials"
	default:
		return ""
	}
}
