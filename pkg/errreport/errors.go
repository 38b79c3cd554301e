// errors.go defines the errors returned by the producer API and the session.

package errreport

import (
	"errors"
	"fmt"
)

// ErrContractViolation is the parent of every lifecycle misuse error.
// Match it with errors.Is to catch any of them.
var ErrContractViolation = errors.New("errreport: start must be called once and its session retained")

var (
	// ErrNotStarted is returned by producer operations invoked before Start.
	ErrNotStarted = fmt.Errorf("%w: collector not started", ErrContractViolation)

	// ErrAlreadyStarted is returned by a second call to Start.
	ErrAlreadyStarted = fmt.Errorf("%w: collector already started", ErrContractViolation)

	// ErrStopped is returned by producer operations invoked after Stop, and by
	// a second call to Stop.
	ErrStopped = fmt.Errorf("%w: collector stopped", ErrContractViolation)

	// ErrNoCollector is returned when a context carries no collector.
	ErrNoCollector = fmt.Errorf("%w: no collector in context", ErrContractViolation)
)

var (
	// ErrChannelFailure means the collector goroutine ended before replying.
	ErrChannelFailure = errors.New("errreport: collector exited before replying")

	// ErrNilError is returned when Report is called with a nil error.
	ErrNilError = errors.New("errreport: cannot report a nil error")

	// ErrNilVisitor is returned when Visit or VisitMutable is given a nil function.
	ErrNilVisitor = errors.New("errreport: visitor must not be nil")
)
