package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/snapfeed-cli/internal/domain"
	"github.com/bnema/snapfeed-cli/internal/ports"
	"github.com/bnema/snapfeed-cli/internal/ports/mocks"
)

func TestRelationshipStatusDefaultsToNotFollowing(t *testing.T) {
	api := mocks.NewMockSocialAPI(t)
	service := NewRelationshipService(api, nil)

	record := service.Status(42)
	assert.Equal(t, domain.Relationship{SubjectID: 42}, record)
}

func TestRelationshipFollowPublicSubject(t *testing.T) {
	api := mocks.NewMockSocialAPI(t)
	service := NewRelationshipService(api, nil)

	api.EXPECT().Follow(mockAnyContext(), domain.UserID(42)).
		Return(ports.FollowOutcome{Following: true}, nil)

	record, err := service.Follow(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, record.Following)
	assert.False(t, record.Requested)
	assert.Equal(t, record, service.Status(42))
}

func TestRelationshipFollowPrivateSubjectCreatesRequest(t *testing.T) {
	api := mocks.NewMockSocialAPI(t)
	service := NewRelationshipService(api, nil)

	api.EXPECT().Follow(mockAnyContext(), domain.UserID(42)).
		Return(ports.FollowOutcome{Requested: true}, nil)

	record, err := service.Follow(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, record.Following)
	assert.True(t, record.Requested)
}

func TestRelationshipFollowConvergesOnAlreadyFollowing(t *testing.T) {
	api := mocks.NewMockSocialAPI(t)
	service := NewRelationshipService(api, nil)

	api.EXPECT().Follow(mockAnyContext(), domain.UserID(42)).
		Return(ports.FollowOutcome{}, &domain.ConflictError{
			Reason:  domain.ConflictAlreadyFollowing,
			Message: "You are already following this user.",
		})

	record, err := service.Follow(context.Background(), 42)
	require.NoError(t, err, "a duplicate follow converges instead of failing")
	assert.Equal(t, domain.Relationship{SubjectID: 42, Following: true}, record)
}

func TestRelationshipFollowConvergesOnAlreadyRequested(t *testing.T) {
	api := mocks.NewMockSocialAPI(t)
	service := NewRelationshipService(api, nil)

	api.EXPECT().Follow(mockAnyContext(), domain.UserID(42)).
		Return(ports.FollowOutcome{}, &domain.ConflictError{
			Reason:  domain.ConflictAlreadyRequested,
			Message: "Follow request already sent.",
		})

	record, err := service.Follow(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, domain.Relationship{SubjectID: 42, Requested: true}, record)
}

func TestRelationshipFollowSelfFailsWithoutMutation(t *testing.T) {
	api := mocks.NewMockSocialAPI(t)
	service := NewRelationshipService(api, nil)

	api.EXPECT().Follow(mockAnyContext(), domain.UserID(7)).
		Return(ports.FollowOutcome{}, &domain.ConflictError{
			Reason:  domain.ConflictSelfFollow,
			Message: "You cannot follow yourself.",
		})

	record, err := service.Follow(context.Background(), 7)
	require.Error(t, err)
	assert.Equal(t, domain.Relationship{SubjectID: 7}, record)
	assert.Empty(t, service.All(), "a failed self-follow must not seed the cache")
}

func TestRelationshipFollowNetworkFailureLeavesRecordUntouched(t *testing.T) {
	api := mocks.NewMockSocialAPI(t)
	service := NewRelationshipService(api, nil)

	service.Note(domain.Relationship{SubjectID: 42, Following: true})

	api.EXPECT().Follow(mockAnyContext(), domain.UserID(42)).
		Return(ports.FollowOutcome{}, &domain.NetworkError{Op: "POST /users/42/follow/", Err: errors.New("timeout")})

	record, err := service.Follow(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, record.Following, "the pre-action record survives a network failure")
}

func TestRelationshipUnfollowClearsRecord(t *testing.T) {
	api := mocks.NewMockSocialAPI(t)
	service := NewRelationshipService(api, nil)

	service.Note(domain.Relationship{SubjectID: 42, Following: true})

	api.EXPECT().Unfollow(mockAnyContext(), domain.UserID(42)).Return(nil)

	record, err := service.Unfollow(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, domain.Relationship{SubjectID: 42}, record)
}

func TestRelationshipUnfollowConvergesOnNotFollowing(t *testing.T) {
	api := mocks.NewMockSocialAPI(t)
	service := NewRelationshipService(api, nil)

	service.Note(domain.Relationship{SubjectID: 42, Following: true})

	api.EXPECT().Unfollow(mockAnyContext(), domain.UserID(42)).
		Return(&domain.ConflictError{Reason: domain.ConflictNotFollowing, Message: "You are not following this user."})

	record, err := service.Unfollow(context.Background(), 42)
	require.NoError(t, err, "the server already holds the state the caller wanted")
	assert.False(t, record.Following)
	assert.False(t, record.Requested)
}

func TestRelationshipNoteNormalizesInconsistentRecord(t *testing.T) {
	api := mocks.NewMockSocialAPI(t)
	service := NewRelationshipService(api, nil)

	service.Note(domain.Relationship{SubjectID: 42, Following: true, Requested: true})

	record := service.Status(42)
	assert.True(t, record.Following)
	assert.False(t, record.Requested, "following and requested are mutually exclusive")
}

func TestRelationshipRefreshStatusOverwritesCache(t *testing.T) {
	api := mocks.NewMockSocialAPI(t)
	service := NewRelationshipService(api, nil)

	service.Note(domain.Relationship{SubjectID: 42, Requested: true})

	api.EXPECT().FollowStatus(mockAnyContext(), domain.UserID(42)).
		Return(domain.Relationship{SubjectID: 42, Following: true}, nil)

	record, err := service.RefreshStatus(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, record.Following)
	assert.False(t, record.Requested)
	assert.Equal(t, record, service.Status(42))
}

func TestRelationshipReconcileTouchesOnlyPendingRecords(t *testing.T) {
	api := mocks.NewMockSocialAPI(t)
	service := NewRelationshipService(api, nil)

	service.Note(domain.Relationship{SubjectID: 1, Following: true})
	service.Note(domain.Relationship{SubjectID: 2, Requested: true})

	// The private account accepted in the meantime.
	api.EXPECT().FollowStatus(mockAnyContext(), domain.UserID(2)).
		Return(domain.Relationship{SubjectID: 2, Following: true}, nil)

	service.ReconcileAllPending(context.Background())

	assert.True(t, service.Status(2).Following)
	assert.False(t, service.Status(2).Requested)
	assert.True(t, service.Status(1).Following, "settled records are left alone")
}

func TestRelationshipReconcileSkipsFailuresAndContinues(t *testing.T) {
	api := mocks.NewMockSocialAPI(t)
	service := NewRelationshipService(api, nil)

	service.Note(domain.Relationship{SubjectID: 2, Requested: true})

	api.EXPECT().FollowStatus(mockAnyContext(), domain.UserID(2)).
		Return(domain.Relationship{}, &domain.NetworkError{Op: "GET /users/2/follow-status/", Err: errors.New("timeout")})

	service.ReconcileAllPending(context.Background())

	assert.True(t, service.Status(2).Requested, "a failed reconcile keeps the pending record for the next tick")
}

func TestRelationshipRunReconcilerStopsOnContextCancel(t *testing.T) {
	api := mocks.NewMockSocialAPI(t)
	service := NewRelationshipService(api, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		service.RunReconciler(ctx, 10*time.Millisecond)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reconciler did not stop after cancellation")
	}
}

func TestRelationshipClearDropsAllRecords(t *testing.T) {
	api := mocks.NewMockSocialAPI(t)
	service := NewRelationshipService(api, nil)

	service.Note(domain.Relationship{SubjectID: 1, Following: true})
	service.Note(domain.Relationship{SubjectID: 2, Requested: true})

	service.Clear()
	assert.Empty(t, service.All())
}
