// mailbox.go implements the unbounded multi-producer, single-consumer queue
// between producers and the collector goroutine.

package errreport

import "sync"

type mailboxState uint8

const (
	mailboxIdle mailboxState = iota
	mailboxOpen
	mailboxClosed
)

// mailbox is a FIFO queue that never blocks senders on capacity.
//
// It also carries the lifecycle state of its collector: sends are refused
// before open and after close. Because close is the only way to enqueue a
// shutdown, nothing can ever sit behind the shutdown message.
type mailbox[E any] struct {
	mu    sync.Mutex
	state mailboxState
	queue []message[E]

	// ready holds at most one wakeup for the receiver.
	ready chan struct{}
}

func newMailbox[E any]() *mailbox[E] {
	return &mailbox[E]{ready: make(chan struct{}, 1)}
}

// open moves the mailbox from idle to open. It fails on every later call.
func (m *mailbox[E]) open() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != mailboxIdle {
		return ErrAlreadyStarted
	}
	m.state = mailboxOpen
	return nil
}

// send enqueues msg.
func (m *mailbox[E]) send(msg message[E]) error {
	m.mu.Lock()
	switch m.state {
	case mailboxIdle:
		m.mu.Unlock()
		return ErrNotStarted
	case mailboxClosed:
		m.mu.Unlock()
		return ErrStopped
	}
	m.queue = append(m.queue, msg)
	m.mu.Unlock()

	m.wake()
	return nil
}

// close refuses further sends. If final is non-nil it is enqueued as the
// last message. Reports false if the mailbox was not open.
func (m *mailbox[E]) close(final *message[E]) bool {
	m.mu.Lock()
	if m.state != mailboxOpen {
		m.mu.Unlock()
		return false
	}
	if final != nil {
		m.queue = append(m.queue, *final)
	}
	m.state = mailboxClosed
	m.mu.Unlock()

	m.wake()
	return true
}

// receive blocks until messages are pending and returns all of them in
// arrival order. spare is reused as the next queue buffer. ok is false once
// the mailbox is closed and empty.
func (m *mailbox[E]) receive(spare []message[E]) (batch []message[E], ok bool) {
	for {
		m.mu.Lock()
		if len(m.queue) > 0 {
			batch, m.queue = m.queue, spare[:0]
			m.mu.Unlock()
			return batch, true
		}
		closed := m.state == mailboxClosed
		m.mu.Unlock()

		if closed {
			return nil, false
		}
		<-m.ready
	}
}

// pending returns the number of queued messages.
func (m *mailbox[E]) pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

func (m *mailbox[E]) wake() {
	select {
	case m.ready <- struct{}{}:
	default:
	}
}
