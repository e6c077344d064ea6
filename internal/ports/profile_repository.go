package ports

import (
	"context"

	"github.com/bnema/snapfeed-cli/internal/domain"
)

// ProfileRepository persists the signed-in user's profile snapshot across
// process restarts. Returns domain.ErrProfileNotFound when no snapshot
// exists.
type ProfileRepository interface {
	Get(ctx context.Context) (domain.Profile, error)
	Save(ctx context.Context, profile domain.Profile) error
	Clear(ctx context.Context) error
}
