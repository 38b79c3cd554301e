// message.go defines the requests producers send to the collector goroutine.

package errreport

// messageKind is the closed set of requests the collector understands.
type messageKind uint8

const (
	msgReport messageKind = iota + 1
	msgUpdate
	msgVisit
	msgVisitMutable
	msgFlush
	msgShutdown
)

func (k messageKind) String() string {
	switch k {
	case msgReport:
		return "report"
	case msgUpdate:
		return "update"
	case msgVisit:
		return "visit"
	case msgVisitMutable:
		return "visit_mutable"
	case msgFlush:
		return "flush"
	case msgShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// message is a single request. Only the fields for its kind are set.
type message[E any] struct {
	kind messageKind

	// report
	err   error
	reply chan Key // capacity 1, sent to exactly once

	// update
	key   Key
	extra E

	// visit, visit_mutable
	visit  func(Record[E])
	mutate func(*Record[E])

	// flush
	ack chan struct{}
}
