// context.go carries a collector through context.Context so producers can
// reach it without threading a parameter through every call site.

package errreport

import "context"

// collectorKey is distinct for every E, so collectors with different extra
// types never collide.
type collectorKey[E any] struct{}

// WithCollector returns a context carrying c.
func WithCollector[E any](ctx context.Context, c *Collector[E]) context.Context {
	return context.WithValue(ctx, collectorKey[E]{}, c)
}

// CollectorFromContext extracts the collector for extra type E.
// Returns nil and false if not set.
func CollectorFromContext[E any](ctx context.Context) (*Collector[E], bool) {
	c, ok := ctx.Value(collectorKey[E]{}).(*Collector[E])
	return c, ok && c != nil
}

// ReportContext reports err to the collector carried by ctx.
func ReportContext[E any](ctx context.Context, err error) (Key, error) {
	c, ok := CollectorFromContext[E](ctx)
	if !ok {
		return Key{}, ErrNoCollector
	}
	return c.Report(ctx, err)
}

// UpdateContext updates key on the collector carried by ctx.
func UpdateContext[E any](ctx context.Context, key Key, extra E) error {
	c, ok := CollectorFromContext[E](ctx)
	if !ok {
		return ErrNoCollector
	}
	return c.Update(key, extra)
}
