// session.go provides the Session handle that owns collector teardown.

package errreport

import (
	"runtime"
	"sync/atomic"
)

// Session owns the teardown of a started collector.
//
// Stop is the supported way to end a session. If a Session becomes
// unreachable without Stop, a cleanup closes the collector's mailbox so the
// goroutine drains and exits, but nothing waits for it and the final store
// is discarded.
type Session[E any] struct {
	c       *Collector[E]
	stopped atomic.Bool
	cleanup runtime.Cleanup
}

func newSession[E any](c *Collector[E]) *Session[E] {
	s := &Session[E]{c: c}
	s.cleanup = runtime.AddCleanup(s, abandon[E], c.box)
	return s
}

// abandon is the cleanup for a leaked session. It must not reference the
// session itself.
func abandon[E any](box *mailbox[E]) {
	box.close(nil)
}

// Collector returns the collector this session controls.
func (s *Session[E]) Collector() *Collector[E] {
	return s.c
}

// Stop shuts the collector down and returns its final store.
//
// Stop must not be called from inside a visitor of this collector: it
// waits for the collector goroutine, which is busy running the visitor,
// and hangs forever.
//
// Every message sent before Stop is applied first. Stop blocks until the
// collector goroutine has exited. Producer operations after Stop return
// ErrStopped, as does a second call to Stop.
func (s *Session[E]) Stop() (*Store[E], error) {
	if !s.stopped.CompareAndSwap(false, true) {
		return nil, ErrStopped
	}
	s.cleanup.Stop()

	s.c.box.close(&message[E]{kind: msgShutdown})
	<-s.c.done

	if s.c.final == nil {
		return nil, ErrChannelFailure
	}
	return s.c.final, nil
}

// Close stops the session and discards the store.
func (s *Session[E]) Close() error {
	_, err := s.Stop()
	return err
}
