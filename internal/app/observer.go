package app

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/annedawson/amphibians/internal/state"
)

// Subscriber publishes UI state transitions.
type Subscriber interface {
	Subscribe() (<-chan state.UIState, func())
}

// StartTransitionLogger logs every state src publishes on a background
// goroutine. The returned stop func unsubscribes and blocks until the states
// already queued have been logged. It is safe to call more than once.
func StartTransitionLogger(src Subscriber, log logrus.FieldLogger) (stop func()) {
	ch, cancel := src.Subscribe()
	done := make(chan struct{})

	go func() {
		defer close(done)
		previous := ""
		for s := range ch {
			current := s.String()
			log.WithFields(logrus.Fields{
				"state":    current,
				"previous": previous,
			}).Debug("state changed")
			previous = current
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}
}
