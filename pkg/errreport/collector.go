// collector.go provides the Collector type and the producer API.

package errreport

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// Collector is the shared endpoint producers use to reach one collector
// goroutine. All methods are safe for concurrent use.
//
// A Collector is created idle by New, becomes active with Start, and stops
// for good when the Session returned by Start is stopped. E is the type of
// the extra context that Update attaches to records.
type Collector[E any] struct {
	id              uuid.UUID
	name            string
	logger          *log.Logger
	now             func() time.Time
	initialCapacity int
	metrics         *metrics

	box *mailbox[E]

	// done is closed when the collector goroutine returns. final is set
	// before that on a clean exit.
	done  chan struct{}
	final *Store[E]
}

// New creates an idle collector with the given options.
func New[E any](opts ...Option) *Collector[E] {
	cfg := &collectorConfig{
		initialCapacity: 64,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	id := uuid.New()
	if cfg.name == "" {
		cfg.name = id.String()
	}

	return &Collector[E]{
		id:              id,
		name:            cfg.name,
		logger:          cfg.logger,
		now:             cfg.now,
		initialCapacity: cfg.initialCapacity,
		metrics:         newMetrics(cfg.registerer, cfg.name, cfg.logger),
		box:             newMailbox[E](),
		done:            make(chan struct{}),
	}
}

// ID returns the collector ID carried by every key it issues.
func (c *Collector[E]) ID() uuid.UUID {
	return c.id
}

// Name returns the collector name.
func (c *Collector[E]) Name() string {
	return c.name
}

// Pending returns the number of messages waiting for the collector goroutine.
func (c *Collector[E]) Pending() int {
	return c.box.pending()
}

// Start launches the collector goroutine and returns the session that owns
// its teardown. Start succeeds at most once per collector; later calls
// return ErrAlreadyStarted.
//
// Keep the session and call Stop on it. A session dropped without Stop
// triggers a best-effort shutdown when it is garbage collected, with no
// guarantee about when that happens.
func (c *Collector[E]) Start() (*Session[E], error) {
	if err := c.box.open(); err != nil {
		return nil, err
	}

	store := newStore[E](c.id, c.initialCapacity)
	go c.run(store)

	c.logf("collector %s started", c.name)
	return newSession(c), nil
}

// Report records err and returns its key once the collector has inserted it.
//
// Report blocks until the collector replies or ctx is done. If ctx ends
// first the error is still recorded, but its key is lost to the caller.
//
// Calling Report from inside a visitor on the same collector deadlocks
// until ctx is done: the collector is busy running the visitor.
func (c *Collector[E]) Report(ctx context.Context, err error) (Key, error) {
	if err == nil {
		return Key{}, ErrNilError
	}

	reply := make(chan Key, 1)
	if sendErr := c.send(message[E]{kind: msgReport, err: err, reply: reply}); sendErr != nil {
		return Key{}, sendErr
	}

	select {
	case key := <-reply:
		return key, nil
	case <-c.done:
		select {
		case key := <-reply:
			return key, nil
		default:
			return Key{}, ErrChannelFailure
		}
	case <-ctx.Done():
		return Key{}, ctx.Err()
	}
}

// Reportf formats an error with fmt.Errorf and reports it.
func (c *Collector[E]) Reportf(ctx context.Context, format string, args ...any) (Key, error) {
	return c.Report(ctx, fmt.Errorf(format, args...))
}

// Update replaces the extra context of the record for key.
//
// Update does not wait for the collector. An update for a key this
// collector never issued is ignored.
func (c *Collector[E]) Update(key Key, extra E) error {
	return c.send(message[E]{kind: msgUpdate, key: key, extra: extra})
}

// Visit calls fn once for every record, on the collector goroutine.
//
// Visit does not wait for fn to run. fn receives copies and must not call
// Report or Flush on this collector (see Report), nor Stop or Close on its
// session: Stop waits for the collector goroutine, which is running fn, so
// it never returns. Call Stop from another goroutine instead.
//
// fn may call Update, Visit or VisitMutable. They are queued behind the
// current visit, unless Stop has already been called: a visitor can run
// after Stop closed the mailbox, and its sends then fail with ErrStopped
// and are not applied. Call Flush before Stop to let pending visitors
// finish sending.
func (c *Collector[E]) Visit(fn func(Record[E])) error {
	if fn == nil {
		return ErrNilVisitor
	}
	return c.send(message[E]{kind: msgVisit, visit: fn})
}

// VisitMutable calls fn once for every record with mutable access, on the
// collector goroutine. The same restrictions as Visit apply.
func (c *Collector[E]) VisitMutable(fn func(*Record[E])) error {
	if fn == nil {
		return ErrNilVisitor
	}
	return c.send(message[E]{kind: msgVisitMutable, mutate: fn})
}

// Flush blocks until every message the caller sent before Flush has been
// applied, or ctx is done.
func (c *Collector[E]) Flush(ctx context.Context) error {
	ack := make(chan struct{})
	if err := c.send(message[E]{kind: msgFlush, ack: ack}); err != nil {
		return err
	}

	select {
	case <-ack:
		return nil
	case <-c.done:
		select {
		case <-ack:
			return nil
		default:
			return ErrChannelFailure
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// send enqueues msg, reporting ErrChannelFailure if the collector goroutine
// has already exited without a shutdown.
func (c *Collector[E]) send(msg message[E]) error {
	if err := c.box.send(msg); err != nil {
		return err
	}
	select {
	case <-c.done:
		return ErrChannelFailure
	default:
		return nil
	}
}

func (c *Collector[E]) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf("errreport: "+format, args...)
	}
}
