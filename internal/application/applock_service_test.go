package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/snapfeed-cli/internal/adapters/lifecycle/manual"
	"github.com/bnema/snapfeed-cli/internal/domain"
	"github.com/bnema/snapfeed-cli/internal/ports"
	"github.com/bnema/snapfeed-cli/internal/ports/mocks"
)

// testClock is a hand-advanced clock so lock decisions are deterministic.
// The re-enable timers still run on real time; tests use short windows and
// Eventually for those.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var _ ports.Clock = (*testClock)(nil)

func biometricOn() bool  { return true }
func biometricOff() bool { return false }

func TestAppLockColdStartWithPreferenceComesUpLocked(t *testing.T) {
	service := NewAppLockService(newTestClock(), nil, biometricOn, nil)
	assert.True(t, service.Locked())

	service = NewAppLockService(newTestClock(), nil, biometricOff, nil)
	assert.False(t, service.Locked())
}

func TestAppLockLocksOnForegroundAfterBackground(t *testing.T) {
	clock := newTestClock()
	service := NewAppLockService(clock, nil, biometricOn, nil)
	require.NoError(t, service.Unlock(context.Background()))

	service.HandleEvent(domain.EventBackground)
	clock.Advance(5 * time.Second)
	service.HandleEvent(domain.EventForeground)

	assert.True(t, service.Locked())
}

func TestAppLockForegroundWithoutBackgroundNeverLocks(t *testing.T) {
	clock := newTestClock()
	service := NewAppLockService(clock, nil, biometricOn, nil)
	require.NoError(t, service.Unlock(context.Background()))

	service.HandleEvent(domain.EventForeground)
	assert.False(t, service.Locked())
}

func TestAppLockDisabledPreferenceNeverLocks(t *testing.T) {
	clock := newTestClock()
	service := NewAppLockService(clock, nil, biometricOff, nil)

	service.HandleEvent(domain.EventBackground)
	clock.Advance(time.Minute)
	service.HandleEvent(domain.EventForeground)

	assert.False(t, service.Locked())
}

func TestAppLockSuppressionCoversPickerRoundTrip(t *testing.T) {
	clock := newTestClock()
	service := NewAppLockService(clock, nil, biometricOn, nil)
	require.NoError(t, service.Unlock(context.Background()))

	// Opening the system picker backgrounds the app; the suppression
	// window must absorb the transition when control returns.
	service.SuppressFor(200 * time.Millisecond)
	service.HandleEvent(domain.EventBackground)
	clock.Advance(50 * time.Millisecond)
	service.HandleEvent(domain.EventForeground)

	assert.False(t, service.Locked())

	require.Eventually(t, func() bool {
		return service.State().ChecksEnabled
	}, 2*time.Second, 10*time.Millisecond, "checks must re-arm after the window")

	// The next genuine background/foreground pair locks again.
	clock.Advance(time.Second)
	service.HandleEvent(domain.EventBackground)
	clock.Advance(5 * time.Second)
	service.HandleEvent(domain.EventForeground)
	assert.True(t, service.Locked())
}

func TestAppLockSuppressReleasesHeldLock(t *testing.T) {
	clock := newTestClock()
	service := NewAppLockService(clock, nil, biometricOn, nil)
	require.True(t, service.Locked())

	service.SuppressFor(100 * time.Millisecond)
	assert.False(t, service.Locked(), "a suppressed check must never leave the user stuck behind the lock")
}

func TestAppLockOverlappingSuppressionsLastCallWins(t *testing.T) {
	clock := newTestClock()
	service := NewAppLockService(clock, nil, biometricOn, nil)

	service.SuppressFor(50 * time.Millisecond)
	service.SuppressFor(500 * time.Millisecond)

	// Past the first window: its timer was superseded and must not
	// re-enable checks early.
	time.Sleep(150 * time.Millisecond)
	assert.False(t, service.State().ChecksEnabled)

	require.Eventually(t, func() bool {
		return service.State().ChecksEnabled
	}, 2*time.Second, 10*time.Millisecond)
}

func TestAppLockUploadBracketDisablesAndRearms(t *testing.T) {
	clock := newTestClock()
	service := NewAppLockService(clock, nil, biometricOn, nil)
	require.NoError(t, service.Unlock(context.Background()))

	service.DisableForSystemOperation()

	service.HandleEvent(domain.EventBackground)
	clock.Advance(time.Minute)
	service.HandleEvent(domain.EventForeground)
	assert.False(t, service.Locked(), "transitions during the upload must not lock")

	service.ReenableAfterSystemOperation(50 * time.Millisecond)
	require.Eventually(t, func() bool {
		return service.State().ChecksEnabled
	}, 2*time.Second, 10*time.Millisecond)
}

func TestAppLockReenableWithZeroDelayIsImmediate(t *testing.T) {
	service := NewAppLockService(newTestClock(), nil, biometricOn, nil)

	service.DisableForSystemOperation()
	service.ReenableAfterSystemOperation(0)

	assert.True(t, service.State().ChecksEnabled)
}

func TestAppLockUnlockChallengesReauthProvider(t *testing.T) {
	reauth := mocks.NewMockReauthProvider(t)
	service := NewAppLockService(newTestClock(), reauth, biometricOn, nil)
	require.True(t, service.Locked())

	reauth.EXPECT().Available(mockAnyContext()).
		Return(ports.ReauthCapability{Available: true, Kinds: []string{"passphrase"}})
	reauth.EXPECT().Authenticate(mockAnyContext(), "unlock Snapfeed").Return(nil)

	require.NoError(t, service.Unlock(context.Background()))
	assert.False(t, service.Locked())
}

func TestAppLockUnlockStaysLockedWhenChallengeFails(t *testing.T) {
	reauth := mocks.NewMockReauthProvider(t)
	service := NewAppLockService(newTestClock(), reauth, biometricOn, nil)

	reauth.EXPECT().Available(mockAnyContext()).
		Return(ports.ReauthCapability{Available: true, Kinds: []string{"passphrase"}})
	reauth.EXPECT().Authenticate(mockAnyContext(), "unlock Snapfeed").
		Return(errors.New("wrong passphrase"))

	require.Error(t, service.Unlock(context.Background()))
	assert.True(t, service.Locked())
}

func TestAppLockResetClearsAllState(t *testing.T) {
	clock := newTestClock()
	service := NewAppLockService(clock, nil, biometricOn, nil)
	service.SuppressFor(time.Hour)

	service.Reset()

	state := service.State()
	assert.False(t, state.Locked)
	assert.True(t, state.ChecksEnabled)
	assert.True(t, state.SuppressUntil.IsZero())
	assert.True(t, state.LastBackgroundedAt.IsZero())
}

func TestAppLockRunConsumesLifecycleSource(t *testing.T) {
	clock := newTestClock()
	service := NewAppLockService(clock, nil, biometricOn, nil)
	require.NoError(t, service.Unlock(context.Background()))

	source := manual.NewSource()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		service.Run(ctx, source)
	}()

	source.Emit(domain.EventBackground)
	clock.Advance(5 * time.Second)
	source.Emit(domain.EventForeground)

	require.Eventually(t, func() bool {
		return service.Locked()
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, source.Close())
	<-done
}
