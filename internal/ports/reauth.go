package ports

import "context"

// ReauthCapability describes what kinds of re-authentication the host can
// perform.
type ReauthCapability struct {
	Available bool
	Kinds     []string
}

// ReauthProvider performs the user-present re-authentication required to
// clear the app lock. Authenticate returns nil only on a successful
// challenge.
type ReauthProvider interface {
	Available(ctx context.Context) ReauthCapability
	Authenticate(ctx context.Context, reason string) error
}
