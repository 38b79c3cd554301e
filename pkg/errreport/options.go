// options.go provides the functional options accepted by New.

package errreport

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Collector.
type Option func(*collectorConfig)

type collectorConfig struct {
	name            string
	logger          *log.Logger
	initialCapacity int
	registerer      prometheus.Registerer
	now             func() time.Time
}

// WithName sets the collector name used in logs and as the "collector"
// metric label (default: the collector ID).
func WithName(name string) Option {
	return func(c *collectorConfig) {
		c.name = name
	}
}

// WithLogger sets the logger for lifecycle and diagnostic output.
// A nil logger (the default) disables logging.
func WithLogger(logger *log.Logger) Option {
	return func(c *collectorConfig) {
		c.logger = logger
	}
}

// WithInitialCapacity preallocates room for n records (default: 64).
func WithInitialCapacity(n int) Option {
	return func(c *collectorConfig) {
		if n > 0 {
			c.initialCapacity = n
		}
	}
}

// WithMetrics registers collector metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *collectorConfig) {
		c.registerer = reg
	}
}

// WithClock overrides the clock used to stamp records.
func WithClock(now func() time.Time) Option {
	return func(c *collectorConfig) {
		if now != nil {
			c.now = now
		}
	}
}
