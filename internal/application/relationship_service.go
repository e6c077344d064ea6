package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/snapfeed-cli/internal/domain"
	"github.com/bnema/snapfeed-cli/internal/logger"
	"github.com/bnema/snapfeed-cli/internal/ports"
)

// RelationshipService maintains the locally cached "do I follow this
// user" view. Records change only in response to a confirmed server
// outcome: there is no optimistic flip before the round-trip, so a failed
// action leaves the UI in its pre-action state.
type RelationshipService struct {
	api ports.SocialAPI
	log *logger.Logger

	mu      sync.RWMutex
	records map[domain.UserID]domain.Relationship
}

func NewRelationshipService(api ports.SocialAPI, log *logger.Logger) *RelationshipService {
	if log == nil {
		log = logger.Discard()
	}

	return &RelationshipService{
		api:     api,
		log:     log,
		records: make(map[domain.UserID]domain.Relationship),
	}
}

// Status returns the cached record, or the zero default when the subject
// has never been seen. Never performs network I/O.
func (s *RelationshipService) Status(subject domain.UserID) domain.Relationship {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if record, ok := s.records[subject]; ok {
		return record
	}
	return domain.Relationship{SubjectID: subject}
}

// Note seeds the cache from data that arrived with another payload
// (profile view, search results) without issuing a request.
func (s *RelationshipService) Note(record domain.Relationship) {
	if !record.Consistent() {
		// Server truth: an established follow supersedes a request marker.
		record.Requested = false
	}
	s.put(record)
}

// Follow asks the server to follow subject and applies whichever outcome
// it reports: followed immediately, or request created for a private
// account. Recognized conflicts converge the record instead of failing.
func (s *RelationshipService) Follow(ctx context.Context, subject domain.UserID) (domain.Relationship, error) {
	outcome, err := s.api.Follow(ctx, subject)
	if err != nil {
		if record, ok := s.convergeFollowConflict(subject, err); ok {
			return record, nil
		}
		return s.Status(subject), fmt.Errorf("follow user %d: %w", subject, err)
	}

	record := domain.Relationship{
		SubjectID: subject,
		Following: outcome.Following,
		Requested: outcome.Requested && !outcome.Following,
	}
	s.put(record)

	return record, nil
}

// convergeFollowConflict maps the conflicts a follow call can produce
// onto their idempotent outcomes. Self-follow is a hard failure and never
// mutates the record.
func (s *RelationshipService) convergeFollowConflict(subject domain.UserID, err error) (domain.Relationship, bool) {
	reason, ok := domain.ConflictReasonOf(err)
	if !ok {
		return domain.Relationship{}, false
	}

	switch reason {
	case domain.ConflictAlreadyFollowing:
		record := domain.Relationship{SubjectID: subject, Following: true}
		s.put(record)
		return record, true
	case domain.ConflictAlreadyRequested:
		record := domain.Relationship{SubjectID: subject, Requested: true}
		s.put(record)
		return record, true
	default:
		return domain.Relationship{}, false
	}
}

// Unfollow clears the relationship. "Not following" from the server means
// the record was already clear on their side, which is the outcome the
// caller wanted: converge instead of failing.
func (s *RelationshipService) Unfollow(ctx context.Context, subject domain.UserID) (domain.Relationship, error) {
	err := s.api.Unfollow(ctx, subject)
	if err != nil {
		if reason, ok := domain.ConflictReasonOf(err); !ok || reason != domain.ConflictNotFollowing {
			return s.Status(subject), fmt.Errorf("unfollow user %d: %w", subject, err)
		}
	}

	record := domain.Relationship{SubjectID: subject}
	s.put(record)

	return record, nil
}

// RefreshStatus unconditionally re-fetches authoritative status and
// overwrites the cached record. Used on screen re-entry and after actions
// with externally caused side effects.
func (s *RelationshipService) RefreshStatus(ctx context.Context, subject domain.UserID) (domain.Relationship, error) {
	record, err := s.api.FollowStatus(ctx, subject)
	if err != nil {
		return s.Status(subject), fmt.Errorf("refresh follow status for user %d: %w", subject, err)
	}

	s.put(record)
	return record, nil
}

// ReconcileAllPending re-fetches every record still in the requested
// state, so a request accepted or rejected by the other party shows up
// without a manual refresh. Individual failures are logged and skipped;
// the next tick retries them.
func (s *RelationshipService) ReconcileAllPending(ctx context.Context) {
	for _, subject := range s.pendingSubjects() {
		if ctx.Err() != nil {
			return
		}
		if _, err := s.RefreshStatus(ctx, subject); err != nil {
			s.log.Debug("reconcile skipped", "subject", int64(subject), "error", err)
		}
	}
}

// RunReconciler drives ReconcileAllPending on a fixed interval until ctx
// is done. This is the eventual-consistency stopgap for the absence of
// server push.
func (s *RelationshipService) RunReconciler(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.ReconcileAllPending(ctx)
		}
	}
}

// PendingRequests lists inbound follow requests awaiting the signed-in
// user's decision.
func (s *RelationshipService) PendingRequests(ctx context.Context) ([]domain.FollowRequest, error) {
	requests, err := s.api.PendingRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending follow requests: %w", err)
	}
	return requests, nil
}

func (s *RelationshipService) AcceptRequest(ctx context.Context, requester domain.UserID) error {
	if err := s.api.AcceptRequest(ctx, requester); err != nil {
		return fmt.Errorf("accept follow request from user %d: %w", requester, err)
	}
	return nil
}

func (s *RelationshipService) RejectRequest(ctx context.Context, requester domain.UserID) error {
	if err := s.api.RejectRequest(ctx, requester); err != nil {
		return fmt.Errorf("reject follow request from user %d: %w", requester, err)
	}
	return nil
}

func (s *RelationshipService) Followers(ctx context.Context, user domain.UserID) ([]domain.UserSummary, error) {
	return s.api.Followers(ctx, user)
}

func (s *RelationshipService) Following(ctx context.Context, user domain.UserID) ([]domain.UserSummary, error) {
	return s.api.Following(ctx, user)
}

// All returns a snapshot of every cached record.
func (s *RelationshipService) All() []domain.Relationship {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.Relationship, 0, len(s.records))
	for _, record := range s.records {
		records = append(records, record)
	}
	return records
}

// Clear drops the whole mapping. Called on logout.
func (s *RelationshipService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[domain.UserID]domain.Relationship)
}

func (s *RelationshipService) put(record domain.Relationship) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.SubjectID] = record
}

func (s *RelationshipService) pendingSubjects() []domain.UserID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subjects := make([]domain.UserID, 0)
	for id, record := range s.records {
		if record.Pending() {
			subjects = append(subjects, id)
		}
	}
	return subjects
}
