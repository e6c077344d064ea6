//go:build unix

// Package signals maps terminal job-control signals onto application
// lifecycle events: SIGTSTP (the user suspending the process) becomes a
// background transition, SIGCONT a foreground one. SIGTSTP is caught so
// the background event can be emitted before the process actually stops.
package signals

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/bnema/snapfeed-cli/internal/domain"
	"github.com/bnema/snapfeed-cli/internal/ports"
)

type Source struct {
	events    chan domain.LifecycleEvent
	signals   chan os.Signal
	closeOnce sync.Once
	done      chan struct{}
}

var _ ports.LifecycleSource = (*Source)(nil)

func NewSource() *Source {
	source := &Source{
		events:  make(chan domain.LifecycleEvent, 8),
		signals: make(chan os.Signal, 4),
		done:    make(chan struct{}),
	}

	signal.Notify(source.signals, syscall.SIGTSTP, syscall.SIGCONT)
	go source.loop()

	return source
}

func (s *Source) Events() <-chan domain.LifecycleEvent {
	return s.events
}

func (s *Source) Close() error {
	s.closeOnce.Do(func() {
		signal.Stop(s.signals)
		close(s.done)
	})
	return nil
}

func (s *Source) loop() {
	defer close(s.events)

	for {
		select {
		case <-s.done:
			return
		case sig := <-s.signals:
			switch sig {
			case syscall.SIGTSTP:
				s.emit(domain.EventBackground)
				// Hand control back to the shell now that the event is out.
				_ = syscall.Kill(os.Getpid(), syscall.SIGSTOP)
			case syscall.SIGCONT:
				s.emit(domain.EventForeground)
			}
		}
	}
}

func (s *Source) emit(event domain.LifecycleEvent) {
	select {
	case s.events <- event:
	default:
		// A stalled consumer drops the oldest pressure, never blocks
		// signal handling.
	}
}
