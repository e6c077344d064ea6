package ports

import "github.com/bnema/snapfeed-cli/internal/domain"

// LifecycleSource emits host-application foreground/background
// transitions. The channel is closed when the source shuts down.
type LifecycleSource interface {
	Events() <-chan domain.LifecycleEvent
	Close() error
}
