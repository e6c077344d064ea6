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

// AppLockService decides whether the UI must be blocked behind a
// re-authentication challenge after the app returns to the foreground.
//
// Legitimate system interruptions (camera, photo picker, uploads) look
// exactly like the user switching away, so callers bracket them with
// SuppressFor or the Disable/Reenable pair; without that the app would
// re-lock every time a picker hands control back.
type AppLockService struct {
	clock  ports.Clock
	reauth ports.ReauthProvider
	log    *logger.Logger

	// biometricEnabled reads the signed-in user's preference; wired to
	// the persisted profile snapshot.
	biometricEnabled func() bool

	mu      sync.Mutex
	state   domain.LockState
	rearm   *time.Timer
	armedAt time.Time
}

func NewAppLockService(clock ports.Clock, reauth ports.ReauthProvider, biometricEnabled func() bool, log *logger.Logger) *AppLockService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = logger.Discard()
	}
	if biometricEnabled == nil {
		biometricEnabled = func() bool { return false }
	}

	service := &AppLockService{
		clock:            clock,
		reauth:           reauth,
		log:              log,
		biometricEnabled: biometricEnabled,
	}

	// Cold start: a relaunch with the biometric preference on must come
	// up Locked before the first foreground event, not assumed unlocked.
	service.state = domain.LockState{
		Locked:        biometricEnabled(),
		ChecksEnabled: true,
	}

	return service
}

// State returns a copy of the current lock state.
func (s *AppLockService) State() domain.LockState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Locked reports whether the UI must currently be blocked.
func (s *AppLockService) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Locked
}

// Run consumes lifecycle events until the source closes or ctx is done.
// Timer callbacks and event handling share the service mutex only, so
// neither blocks in-flight network work.
func (s *AppLockService) Run(ctx context.Context, source ports.LifecycleSource) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-source.Events():
			if !ok {
				return
			}
			s.HandleEvent(event)
		}
	}
}

// HandleEvent applies one foreground/background transition.
func (s *AppLockService) HandleEvent(event domain.LifecycleEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()

	switch event {
	case domain.EventBackground:
		s.state.LastBackgroundedAt = now
	case domain.EventForeground:
		if s.state.LastBackgroundedAt.IsZero() {
			// Foreground without a preceding background period never locks.
			return
		}
		if !s.state.ChecksEnabled || s.state.Suppressed(now) || !s.biometricEnabled() {
			s.state.LastBackgroundedAt = time.Time{}
			return
		}
		s.state.Locked = true
		s.log.Info("app locked after background period")
	}
}

// Unlock challenges the user through the re-auth provider and, on
// success, forces Locked -> Unlocked and re-enables checks.
func (s *AppLockService) Unlock(ctx context.Context) error {
	if s.reauth != nil {
		capability := s.reauth.Available(ctx)
		if capability.Available {
			if err := s.reauth.Authenticate(ctx, "unlock Snapfeed"); err != nil {
				return fmt.Errorf("re-authentication failed: %w", err)
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Locked = false
	s.state.ChecksEnabled = true
	s.state.LastBackgroundedAt = time.Time{}
	return nil
}

// SuppressFor disables lock checks immediately and schedules their
// re-enable after d. A suppressed check must never leave the user stuck,
// so a currently held lock is released. Overlapping calls replace the
// previous window: the last call wins and exactly one re-enable is ever
// pending.
func (s *AppLockService) SuppressFor(d time.Duration) {
	if d <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.state.ChecksEnabled = false
	s.state.Locked = false
	s.state.SuppressUntil = now.Add(d)
	s.rearmLocked(d)
	s.log.Debug("lock checks suppressed", "until", s.state.SuppressUntil)
}

// DisableForSystemOperation turns checks off with no scheduled re-enable.
// Used for longer system interactions (file upload) where the duration is
// unknown up front; pair with ReenableAfterSystemOperation.
func (s *AppLockService) DisableForSystemOperation() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.ChecksEnabled = false
	s.state.Locked = false
	s.state.SuppressUntil = time.Time{}
	s.cancelRearmLocked()
}

// ReenableAfterSystemOperation re-arms checks after delay, absorbing the
// trailing background/foreground flicker some platforms emit when control
// returns to the app. A zero delay re-enables immediately.
func (s *AppLockService) ReenableAfterSystemOperation(delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if delay <= 0 {
		s.enableChecksLocked()
		return
	}

	s.state.SuppressUntil = s.clock.Now().Add(delay)
	s.rearmLocked(delay)
}

// Reset discards all lock state. Called on logout.
func (s *AppLockService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelRearmLocked()
	s.state = domain.LockState{ChecksEnabled: true}
}

// rearmLocked replaces any pending re-enable timer with a new one firing
// after d. Caller holds s.mu.
func (s *AppLockService) rearmLocked(d time.Duration) {
	s.cancelRearmLocked()
	armedAt := s.clock.Now()
	s.armedAt = armedAt
	s.rearm = time.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		// A later Suppress/Disable call superseded this window.
		if !s.armedAt.Equal(armedAt) {
			return
		}
		s.enableChecksLocked()
	})
}

func (s *AppLockService) cancelRearmLocked() {
	if s.rearm != nil {
		s.rearm.Stop()
		s.rearm = nil
	}
	s.armedAt = time.Time{}
}

func (s *AppLockService) enableChecksLocked() {
	s.state.ChecksEnabled = true
	s.state.SuppressUntil = time.Time{}
	s.rearm = nil
	s.armedAt = time.Time{}
}
