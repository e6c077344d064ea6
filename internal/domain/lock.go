package domain

import "time"

// LifecycleEvent is a host-application foreground/background transition.
type LifecycleEvent string

const (
	EventForeground LifecycleEvent = "foreground"
	EventBackground LifecycleEvent = "background"
)

// LockState is the observable state of the app-lock machine.
//
// Locked can only become true on a foreground transition that follows a
// background period, and only while checks are enabled and the signed-in
// user's biometric preference is on.
type LockState struct {
	Locked             bool
	ChecksEnabled      bool
	SuppressUntil      time.Time
	LastBackgroundedAt time.Time
}

// Suppressed reports whether a suppression window covers the given instant.
func (s LockState) Suppressed(now time.Time) bool {
	return !s.SuppressUntil.IsZero() && now.Before(s.SuppressUntil)
}
