package ports

import (
	"context"

	"github.com/bnema/snapfeed-cli/internal/domain"
)

// FollowOutcome is the server-authoritative result of a follow call:
// either the follow took effect immediately (public subject) or a request
// was created (private subject).
type FollowOutcome struct {
	Following bool
	Requested bool
}

// SocialAPI covers the authenticated social-graph endpoints.
type SocialAPI interface {
	Follow(ctx context.Context, subject domain.UserID) (FollowOutcome, error)
	Unfollow(ctx context.Context, subject domain.UserID) error
	FollowStatus(ctx context.Context, subject domain.UserID) (domain.Relationship, error)
	PendingRequests(ctx context.Context) ([]domain.FollowRequest, error)
	AcceptRequest(ctx context.Context, requester domain.UserID) error
	RejectRequest(ctx context.Context, requester domain.UserID) error
	Followers(ctx context.Context, user domain.UserID) ([]domain.UserSummary, error)
	Following(ctx context.Context, user domain.UserID) ([]domain.UserSummary, error)
}

// ProfileAPI covers the authenticated profile endpoints.
type ProfileAPI interface {
	Profile(ctx context.Context) (domain.Profile, error)
	UpdateProfile(ctx context.Context, update ProfileUpdate) (domain.Profile, error)
}

// ProfileUpdate carries the only fields the server allows a client to
// patch. Nil means "leave unchanged".
type ProfileUpdate struct {
	Bio              *string
	TwoFactorEnabled *bool
	BiometricEnabled *bool
}
