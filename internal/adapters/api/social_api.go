package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/snapfeed-cli/internal/domain"
	"github.com/bnema/snapfeed-cli/internal/ports"
)

// SocialAPI implements ports.SocialAPI and ports.ProfileAPI over a Client
// whose transport injects the bearer credential.
type SocialAPI struct {
	client *Client
}

var (
	_ ports.SocialAPI  = (*SocialAPI)(nil)
	_ ports.ProfileAPI = (*SocialAPI)(nil)
)

func NewSocialAPI(client *Client) *SocialAPI {
	return &SocialAPI{client: client}
}

type followResponse struct {
	Followed bool   `json:"followed"`
	Detail   string `json:"detail"`
}

// Follow reports the server-authoritative outcome: followed immediately
// (public subject) or request created (private subject). The backend
// signals the latter in prose via the detail field.
func (s *SocialAPI) Follow(ctx context.Context, subject domain.UserID) (ports.FollowOutcome, error) {
	var resp followResponse
	err := s.client.do(ctx, http.MethodPost, fmt.Sprintf("/users/%d/follow/", subject), nil, &resp)
	if err != nil {
		return ports.FollowOutcome{}, err
	}

	if resp.Followed {
		return ports.FollowOutcome{Following: true}, nil
	}
	if strings.Contains(strings.ToLower(resp.Detail), "request") {
		return ports.FollowOutcome{Requested: true}, nil
	}

	// A bare 200 with neither marker means the follow took effect.
	return ports.FollowOutcome{Following: true}, nil
}

func (s *SocialAPI) Unfollow(ctx context.Context, subject domain.UserID) error {
	return s.client.do(ctx, http.MethodPost, fmt.Sprintf("/users/%d/unfollow/", subject), nil, nil)
}

type followStatusResponse struct {
	IsFollowing bool `json:"is_following"`
	IsRequested bool `json:"is_requested"`
}

func (s *SocialAPI) FollowStatus(ctx context.Context, subject domain.UserID) (domain.Relationship, error) {
	var resp followStatusResponse
	err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/follow-status/", subject), nil, &resp)
	if err != nil {
		return domain.Relationship{}, err
	}

	rel := domain.Relationship{
		SubjectID: subject,
		Following: resp.IsFollowing,
		Requested: resp.IsRequested,
	}
	if rel.Following {
		// Server truth: an established follow supersedes any stale
		// request marker.
		rel.Requested = false
	}

	return rel, nil
}

type followRequestPayload struct {
	RequesterID int64  `json:"requester_id"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CreatedAt   string `json:"created_at"`
}

func (s *SocialAPI) PendingRequests(ctx context.Context) ([]domain.FollowRequest, error) {
	var resp []followRequestPayload
	err := s.client.do(ctx, http.MethodGet, "/follow-requests/pending/", nil, &resp)
	if err != nil {
		return nil, err
	}

	requests := make([]domain.FollowRequest, 0, len(resp))
	for _, entry := range resp {
		createdAt, _ := time.Parse(time.RFC3339, entry.CreatedAt)
		requests = append(requests, domain.FollowRequest{
			RequesterID: domain.UserID(entry.RequesterID),
			Username:    entry.Username,
			FirstName:   entry.FirstName,
			LastName:    entry.LastName,
			CreatedAt:   createdAt,
		})
	}

	return requests, nil
}

func (s *SocialAPI) AcceptRequest(ctx context.Context, requester domain.UserID) error {
	return s.client.do(ctx, http.MethodPost, fmt.Sprintf("/follow-requests/accept/%d/", requester), nil, nil)
}

func (s *SocialAPI) RejectRequest(ctx context.Context, requester domain.UserID) error {
	return s.client.do(ctx, http.MethodPost, fmt.Sprintf("/follow-requests/reject/%d/", requester), nil, nil)
}

type userSummaryPayload struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsPrivate bool   `json:"is_private"`
}

func (s *SocialAPI) Followers(ctx context.Context, user domain.UserID) ([]domain.UserSummary, error) {
	return s.userList(ctx, fmt.Sprintf("/users/%d/followers/", user))
}

func (s *SocialAPI) Following(ctx context.Context, user domain.UserID) ([]domain.UserSummary, error) {
	return s.userList(ctx, fmt.Sprintf("/users/%d/following/", user))
}

func (s *SocialAPI) userList(ctx context.Context, path string) ([]domain.UserSummary, error) {
	var resp []userSummaryPayload
	if err := s.client.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	users := make([]domain.UserSummary, 0, len(resp))
	for _, entry := range resp {
		users = append(users, domain.UserSummary{
			ID:        domain.UserID(entry.ID),
			Username:  entry.Username,
			FirstName: entry.FirstName,
			LastName:  entry.LastName,
			IsPrivate: entry.IsPrivate,
		})
	}

	return users, nil
}

func (s *SocialAPI) Profile(ctx context.Context) (domain.Profile, error) {
	var resp userPayload
	if err := s.client.do(ctx, http.MethodGet, "/auth/profile/", nil, &resp); err != nil {
		return domain.Profile{}, err
	}
	return profileFrom(resp), nil
}

type profileUpdateRequest struct {
	Bio              *string `json:"bio,omitempty"`
	TwoFactorEnabled *bool   `json:"two_factor_enabled,omitempty"`
	BiometricEnabled *bool   `json:"biometric_enabled,omitempty"`
}

func (s *SocialAPI) UpdateProfile(ctx context.Context, update ports.ProfileUpdate) (domain.Profile, error) {
	var resp userPayload
	err := s.client.do(ctx, http.MethodPatch, "/auth/profile/", profileUpdateRequest{
		Bio:              update.Bio,
		TwoFactorEnabled: update.TwoFactorEnabled,
		BiometricEnabled: update.BiometricEnabled,
	}, &resp)
	if err != nil {
		return domain.Profile{}, err
	}

	return profileFrom(resp), nil
}
