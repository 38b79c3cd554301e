// Package errreport collects errors from many concurrent producers into one
// store owned by a single collector goroutine.
//
// Producers report an error and get back a Key. Later they can attach extra
// context to that error with Update, or walk every error with Visit and
// VisitMutable. No producer ever touches the store: every request travels
// through the collector's mailbox and is applied by the collector goroutine
// in arrival order, so the store needs no locks.
//
// # Core Components
//
//   - Collector: shared endpoint producers call; one per extra-context type
//   - Session: returned by Start, owns teardown; Stop returns the final Store
//   - Store: key to Record map, read-only once handed out by Stop
//   - Record: the reported error plus optional extra context of type E
//
// # Quick Start
//
//	type ExtraInfo struct{ Why string }
//
//	collector := errreport.New[ExtraInfo]()
//	session, err := collector.Start()
//	if err != nil {
//	    return err
//	}
//
//	key, _ := collector.Reportf(ctx, "dang")
//	// gather more information about that error
//	_ = collector.Update(key, ExtraInfo{Why: "something heinous"})
//
//	store, _ := session.Stop()
//	for key, rec := range store.All() {
//	    fmt.Println(key, rec)
//	}
//
// # Ordering
//
// Messages from one producer are applied in the order it sent them. Report
// and Flush wait for the collector; Update, Visit and VisitMutable do not.
// A producer that needs an update applied before continuing calls Flush.
//
// # Visitors
//
// Visitors run on the collector goroutine. A visitor that calls Report or
// Flush on its own collector waits for a goroutine that is busy running it,
// so it deadlocks until its context is done. A visitor that calls Stop or
// Close on the collector's session never returns; start them on another
// goroutine instead.
//
// Update, Visit and VisitMutable from a visitor only enqueue. If Stop has
// already closed the mailbox they fail with ErrStopped and are dropped, so
// Flush before Stop when visitors send.
//
// # Lifecycle
//
// Start succeeds once per collector. Operations before Start return
// ErrNotStarted; operations after Stop return ErrStopped. Both match
// ErrContractViolation.
package errreport
