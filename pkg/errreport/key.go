// key.go defines the opaque handle returned by Report.

package errreport

import (
	"fmt"

	"github.com/google/uuid"
)

// Key identifies one record in one collector.
//
// Keys are comparable and can be used as map keys. The zero Key is never
// issued. A key carries the ID of the collector that issued it, so it never
// addresses a record in another collector.
type Key struct {
	collector uuid.UUID
	seq       uint64
}

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool {
	return k.seq == 0
}

// Collector returns the ID of the collector that issued k.
func (k Key) Collector() uuid.UUID {
	return k.collector
}

// Seq returns the position of the record in its collector, starting at 1.
func (k Key) Seq() uint64 {
	return k.seq
}

// String renders the key as "<collector>#<seq>".
func (k Key) String() string {
	if k.IsZero() {
		return "<zero>"
	}
	return fmt.Sprintf("%s#%d", k.collector, k.seq)
}
