// record.go defines the record stored for every reported error.

package errreport

import (
	"fmt"
	"time"
)

// Record is one reported error plus its optional extra context.
//
// Records are created by the collector with no extra. Read accessors use
// value receivers so Visit can hand out copies; mutators use pointer
// receivers and only take effect inside VisitMutable.
type Record[E any] struct {
	key        Key
	err        error
	extra      E
	hasExtra   bool
	reportedAt time.Time
}

// Key returns the key issued for this record.
func (r Record[E]) Key() Key {
	return r.key
}

// Err returns the reported error.
func (r Record[E]) Err() error {
	return r.err
}

// Extra returns the extra context and whether one has been set.
func (r Record[E]) Extra() (E, bool) {
	return r.extra, r.hasExtra
}

// ReportedAt is when the collector inserted the record.
func (r Record[E]) ReportedAt() time.Time {
	return r.reportedAt
}

// SetExtra replaces the extra context. The last write wins.
func (r *Record[E]) SetExtra(extra E) {
	r.extra = extra
	r.hasExtra = true
}

// ClearExtra removes the extra context.
func (r *Record[E]) ClearExtra() {
	var zero E
	r.extra = zero
	r.hasExtra = false
}

// SetErr replaces the reported error. A nil err is ignored.
func (r *Record[E]) SetErr(err error) {
	if err == nil {
		return
	}
	r.err = err
}

// String formats the record as "<message>" or "<message> (extra: <extra>)".
func (r Record[E]) String() string {
	msg := "<nil>"
	if r.err != nil {
		msg = r.err.Error()
	}
	if !r.hasExtra {
		return msg
	}
	return fmt.Sprintf("%s (extra: %v)", msg, r.extra)
}
