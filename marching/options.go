// SPDX-License-Identifier: MIT

// Functional configuration for March / MarchGrid.
//
// Design goals:
//   - Deterministic behavior: no option changes the output except
//     WithInterpolation; WithWorkers only changes how the work is scheduled.
//   - Panic only on nonsensical values (programmer error).
//   - No dead switches: every flag is exercised by tests.

package marching

import (
	"fmt"
	"log/slog"
)

// Defaults (single source of truth).
const (
	// DefaultInterpolation places crossings by linear interpolation.
	DefaultInterpolation = true

	// DefaultWorkers processes rows sequentially.
	DefaultWorkers = 1
)

const panicWorkersInvalid = "marching: WithWorkers: n must be >= 1, got %d"

// Option mutates Options.
type Option func(*Options)

// Options is the resolved configuration of a march. Fields are unexported;
// build it with DefaultOptions and Option setters.
type Options struct {
	interpolation bool
	workers       int
	logger        *slog.Logger // nil ⇒ package Logger()
}

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{
		interpolation: DefaultInterpolation,
		workers:       DefaultWorkers,
	}
}

// WithInterpolation toggles linear interpolation of edge crossings.
// When off, every crossing sits at the edge midpoint.
func WithInterpolation(on bool) Option {
	return func(o *Options) {
		o.interpolation = on
	}
}

// WithWorkers splits the rows of the grid across up to n goroutines.
// Results are concatenated in row order, so the contour is identical to the
// sequential one. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf(panicWorkersInvalid, n))
	}
	return func(o *Options) {
		o.workers = n
	}
}

// WithLogger overrides the package logger for one call. nil keeps the
// package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.logger = l
	}
}

// Interpolation reports whether crossings are interpolated.
func (o Options) Interpolation() bool { return o.interpolation }

// Workers returns the configured row parallelism.
func (o Options) Workers() int { return o.workers }

// Logger returns the effective logger.
func (o Options) Logger() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
