// Package manual is a lifecycle source driven by explicit calls. Used by
// tests and by CLI flows that simulate transitions.
package manual

import (
	"sync"

	"github.com/bnema/snapfeed-cli/internal/domain"
	"github.com/bnema/snapfeed-cli/internal/ports"
)

type Source struct {
	events    chan domain.LifecycleEvent
	closeOnce sync.Once
}

var _ ports.LifecycleSource = (*Source)(nil)

func NewSource() *Source {
	return &Source{events: make(chan domain.LifecycleEvent, 8)}
}

func (s *Source) Events() <-chan domain.LifecycleEvent {
	return s.events
}

// Emit queues one transition.
func (s *Source) Emit(event domain.LifecycleEvent) {
	s.events <- event
}

func (s *Source) Close() error {
	s.closeOnce.Do(func() { close(s.events) })
	return nil
}
