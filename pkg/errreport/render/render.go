// Package render formats collected errors in a human-readable form.
// Useful for development, demos, and visitors that print as they go.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/strongdm/errreport/pkg/errreport"
)

// Option configures rendering.
type Option func(*config)

type config struct {
	verbose bool
	prefix  string
}

// WithVerbose enables the cause chain and panic stack traces.
func WithVerbose() Option {
	return func(c *config) {
		c.verbose = true
	}
}

// WithPrefix sets the tag at the start of each record (default: "[ERRREPORT]").
func WithPrefix(prefix string) Option {
	return func(c *config) {
		c.prefix = prefix
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{prefix: "[ERRREPORT]"}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Record writes one record to w.
//
// Format:
//
//	[ERRREPORT] <timestamp> <key>
//	        Message: <error>
//	        Extra: <extra>
func Record[E any](w io.Writer, rec errreport.Record[E], opts ...Option) error {
	return writeRecord(w, rec, newConfig(opts))
}

// Store writes every record of a stopped store to w, followed by a summary line.
func Store[E any](w io.Writer, store *errreport.Store[E], opts ...Option) error {
	cfg := newConfig(opts)
	for _, rec := range store.All() {
		if err := writeRecord(w, rec, cfg); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s %d errors collected\n", cfg.prefix, store.Len())
	return err
}

// Visitor returns a function for Collector.Visit that writes each record to w.
// Write errors are dropped: the visitor runs on the collector goroutine.
func Visitor[E any](w io.Writer, opts ...Option) func(errreport.Record[E]) {
	cfg := newConfig(opts)
	return func(rec errreport.Record[E]) {
		_ = writeRecord(w, rec, cfg)
	}
}

func writeRecord[E any](w io.Writer, rec errreport.Record[E], cfg *config) error {
	var b strings.Builder

	timestamp := rec.ReportedAt().Format("2006-01-02T15:04:05Z07:00")
	fmt.Fprintf(&b, "%s %s %s\n", cfg.prefix, timestamp, rec.Key())

	err := rec.Err()
	if err != nil {
		fmt.Fprintf(&b, "        Message: %s\n", err.Error())
	}

	if extra, ok := rec.Extra(); ok {
		fmt.Fprintf(&b, "        Extra: %v\n", extra)
	}

	if cfg.verbose && err != nil {
		for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
			fmt.Fprintf(&b, "        Caused by: %s\n", cause.Error())
		}

		var panicErr *errreport.PanicError
		if errors.As(err, &panicErr) && len(panicErr.Stack) > 0 {
			fmt.Fprintf(&b, "        Stack trace:\n")
			for _, line := range strings.Split(strings.TrimRight(string(panicErr.Stack), "\n"), "\n") {
				fmt.Fprintf(&b, "          %s\n", line)
			}
		}
	}

	_, werr := io.WriteString(w, b.String())
	return werr
}
