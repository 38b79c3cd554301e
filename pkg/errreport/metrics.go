// metrics.go exposes optional Prometheus metrics for a collector.

package errreport

import (
	"errors"
	"log"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics is updated only from the collector goroutine. A nil *metrics is
// valid and records nothing.
type metrics struct {
	messages       *prometheus.CounterVec
	records        prometheus.Gauge
	ignoredUpdates prometheus.Counter
}

func newMetrics(reg prometheus.Registerer, name string, logger *log.Logger) *metrics {
	if reg == nil {
		return nil
	}
	labels := prometheus.Labels{"collector": name}

	m := &metrics{
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "errreport",
			Subsystem:   "collector",
			Name:        "messages_total",
			Help:        "Messages processed by the collector, by kind.",
			ConstLabels: labels,
		}, []string{"kind"}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "errreport",
			Subsystem:   "collector",
			Name:        "records",
			Help:        "Records currently held by the collector.",
			ConstLabels: labels,
		}),
		ignoredUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "errreport",
			Subsystem:   "collector",
			Name:        "ignored_updates_total",
			Help:        "Updates addressed to a key the collector never issued.",
			ConstLabels: labels,
		}),
	}

	m.messages = register(reg, m.messages, logger)
	m.records = register(reg, m.records, logger)
	m.ignoredUpdates = register(reg, m.ignoredUpdates, logger)
	return m
}

// register adds c to reg, reusing an identical collector that is already
// registered. On any other failure c is returned unregistered so the caller
// still has a working metric.
func register[T prometheus.Collector](reg prometheus.Registerer, c T, logger *log.Logger) T {
	err := reg.Register(c)
	if err == nil {
		return c
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing
		}
	}
	if logger != nil {
		logger.Printf("errreport: register metrics: %v", err)
	}
	return c
}

func (m *metrics) observe(kind messageKind) {
	if m == nil {
		return
	}
	m.messages.WithLabelValues(kind.String()).Inc()
}

func (m *metrics) setRecords(n int) {
	if m == nil {
		return
	}
	m.records.Set(float64(n))
}

func (m *metrics) ignoredUpdate() {
	if m == nil {
		return
	}
	m.ignoredUpdates.Inc()
}
