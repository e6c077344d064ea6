package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/snapfeed-cli/internal/domain"
	"github.com/bnema/snapfeed-cli/internal/logger"
	"github.com/bnema/snapfeed-cli/internal/ports"
)

// ProfileService keeps the local profile snapshot in step with the
// server. The snapshot is what the app-lock machine reads the biometric
// preference from on a cold start.
type ProfileService struct {
	api  ports.ProfileAPI
	repo ports.ProfileRepository
	log  *logger.Logger
}

func NewProfileService(api ports.ProfileAPI, repo ports.ProfileRepository, log *logger.Logger) *ProfileService {
	if log == nil {
		log = logger.Discard()
	}

	return &ProfileService{api: api, repo: repo, log: log}
}

// Cached returns the persisted snapshot without network I/O.
func (s *ProfileService) Cached(ctx context.Context) (domain.Profile, error) {
	return s.repo.Get(ctx)
}

// Refresh fetches the authoritative profile and overwrites the snapshot.
func (s *ProfileService) Refresh(ctx context.Context) (domain.Profile, error) {
	profile, err := s.api.Profile(ctx)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("fetch profile: %w", err)
	}

	if err := s.repo.Save(ctx, profile); err != nil {
		s.log.Warn("persist profile snapshot failed", "error", err)
	}

	return profile, nil
}

// Update patches the server-side profile and mirrors the result locally.
func (s *ProfileService) Update(ctx context.Context, update ports.ProfileUpdate) (domain.Profile, error) {
	profile, err := s.api.UpdateProfile(ctx, update)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("update profile: %w", err)
	}

	if err := s.repo.Save(ctx, profile); err != nil {
		s.log.Warn("persist profile snapshot failed", "error", err)
	}

	return profile, nil
}

// BiometricEnabled reads the lock preference from the snapshot. Absent
// snapshot means the preference is off.
func (s *ProfileService) BiometricEnabled(ctx context.Context) bool {
	profile, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			s.log.Debug("read profile snapshot failed", "error", err)
		}
		return false
	}
	return profile.BiometricEnabled
}
