// Package terminal is the re-authentication provider for interactive
// sessions: a local passphrase challenge standing in for the platform
// biometric prompt. The passphrase digest lives in the secret store; the
// passphrase itself is never persisted.
package terminal

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/bnema/snapfeed-cli/internal/ports"
)

// PassphraseSecretKey is where the digest of the unlock passphrase lives.
const PassphraseSecretKey = "snapfeed/lock/passphrase"

var (
	ErrNotEnrolled = errors.New("no unlock passphrase enrolled")
	ErrMismatch    = errors.New("passphrase does not match")
)

type Provider struct {
	store ports.SecretStore
	input *os.File
}

var _ ports.ReauthProvider = (*Provider)(nil)

func NewProvider(store ports.SecretStore) *Provider {
	return &Provider{store: store, input: os.Stdin}
}

func (p *Provider) Available(_ context.Context) ports.ReauthCapability {
	if !term.IsTerminal(int(p.input.Fd())) {
		return ports.ReauthCapability{}
	}
	return ports.ReauthCapability{Available: true, Kinds: []string{"passphrase"}}
}

// Authenticate prompts for the unlock passphrase and verifies it against
// the enrolled digest in constant time.
func (p *Provider) Authenticate(ctx context.Context, reason string) error {
	stored, err := p.store.Get(ctx, PassphraseSecretKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotEnrolled, err)
	}

	if reason != "" {
		fmt.Fprintf(os.Stderr, "%s\n", reason)
	}
	fmt.Fprint(os.Stderr, "Passphrase: ")
	entered, err := term.ReadPassword(int(p.input.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("read passphrase: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(digest(entered)), []byte(stored)) == 0 {
		return ErrMismatch
	}

	return nil
}

// Enroll stores the digest of a new unlock passphrase.
func (p *Provider) Enroll(ctx context.Context, passphrase []byte) error {
	if len(passphrase) == 0 {
		return errors.New("passphrase is empty")
	}
	if err := p.store.Put(ctx, PassphraseSecretKey, digest(passphrase)); err != nil {
		return fmt.Errorf("store passphrase digest: %w", err)
	}
	return nil
}

func digest(passphrase []byte) string {
	sum := sha256.Sum256(passphrase)
	return hex.EncodeToString(sum[:])
}
