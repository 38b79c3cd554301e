// recover.go reports panics to a collector.

package errreport

import (
	"context"
	"fmt"
	"runtime/debug"
)

// PanicError is the error reported for a recovered panic.
type PanicError struct {
	// Value is the value passed to panic.
	Value any

	// Stack is the stack of the panicking goroutine.
	Stack []byte
}

func (e *PanicError) Error() string {
	return "panic: " + formatRecovered(e.Value)
}

// Unwrap returns the panic value if it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Recover captures a panic, reports it as a *PanicError, and returns the
// recovered value. It does NOT re-panic.
//
// Use in defer:
//
//	go func() {
//	    defer collector.Recover(ctx)
//	    // code that might panic
//	}()
//
// Recover only sees the panic when it is itself the deferred call. Called
// from inside another deferred function it returns nil.
//
// Failures to report are ignored so the caller is never affected.
func (c *Collector[E]) Recover(ctx context.Context) any {
	r := recover()
	if r == nil {
		return nil
	}

	_, _ = c.Report(ctx, &PanicError{
		Value: r,
		Stack: debug.Stack(),
	})
	return r
}

func formatRecovered(recovered any) string {
	if recovered == nil {
		return "<nil>"
	}
	if err, ok := recovered.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("%v", recovered)
}
