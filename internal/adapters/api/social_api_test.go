package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/snapfeed-cli/internal/domain"
	"github.com/bnema/snapfeed-cli/internal/ports"
)

func newTestSocialAPI(t *testing.T, handler http.Handler) *SocialAPI {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	return NewSocialAPI(client)
}

func TestSocialAPIFollowPublicAccount(t *testing.T) {
	api := newTestSocialAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/42/follow/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"followed": true}`))
	}))

	outcome, err := api.Follow(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, ports.FollowOutcome{Following: true}, outcome)
}

func TestSocialAPIFollowPrivateAccountCreatesRequest(t *testing.T) {
	api := newTestSocialAPI(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"detail": "Follow request sent."}`))
	}))

	outcome, err := api.Follow(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, ports.FollowOutcome{Requested: true}, outcome)
}

func TestSocialAPIFollowSelfIsConflict(t *testing.T) {
	api := newTestSocialAPI(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "You cannot follow yourself."}`))
	}))

	_, err := api.Follow(context.Background(), 42)
	reason, ok := domain.ConflictReasonOf(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, domain.ConflictSelfFollow, reason)
}

func TestSocialAPIFollowStatusDropsStaleRequestMarker(t *testing.T) {
	api := newTestSocialAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/42/follow-status/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"is_following": true, "is_requested": true}`))
	}))

	rel, err := api.FollowStatus(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, rel.Following)
	assert.False(t, rel.Requested, "an established follow supersedes the request marker")
}

func TestSocialAPIPendingRequests(t *testing.T) {
	api := newTestSocialAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/follow-requests/pending/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"requester_id": 9, "username": "grace.hopper", "first_name": "Grace", "last_name": "Hopper", "created_at": "2026-08-20T10:00:00Z"}
		]`))
	}))

	requests, err := api.PendingRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, domain.UserID(9), requests[0].RequesterID)
	assert.Equal(t, "grace.hopper", requests[0].Username)
	assert.Equal(t, 2026, requests[0].CreatedAt.Year())
}

func TestSocialAPIAcceptAndRejectRequestPaths(t *testing.T) {
	var paths []string
	api := newTestSocialAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, api.AcceptRequest(context.Background(), 9))
	require.NoError(t, api.RejectRequest(context.Background(), 11))

	assert.Equal(t, []string{"/follow-requests/accept/9/", "/follow-requests/reject/11/"}, paths)
}

func TestSocialAPIFollowersList(t *testing.T) {
	api := newTestSocialAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/42/followers/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 9, "username": "grace.hopper", "is_private": true}]`))
	}))

	followers, err := api.Followers(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, domain.UserID(9), followers[0].ID)
	assert.True(t, followers[0].IsPrivate)
}

func TestSocialAPIProfileRoundTrip(t *testing.T) {
	api := newTestSocialAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/profile/", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": 7, "username": "ada.lovelace", "biometric_enabled": false}`))
		case http.MethodPatch:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": 7, "username": "ada.lovelace", "biometric_enabled": true}`))
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	profile, err := api.Profile(context.Background())
	require.NoError(t, err)
	assert.False(t, profile.BiometricEnabled)

	enabled := true
	updated, err := api.UpdateProfile(context.Background(), ports.ProfileUpdate{BiometricEnabled: &enabled})
	require.NoError(t, err)
	assert.True(t, updated.BiometricEnabled)
}
