// Package crossval: functional configuration for the driver.
//
// Defaults are exported constants; With* constructors panic only on
// nonsensical values (programmer error), never on data.

package crossval

import "github.com/yuanmengzhixing/PLS-DA/nipals"

// Mode selects the preprocessing replayed inside every fold: learned on
// the fold's training part, applied with those parameters to its
// held-out part.
type Mode int

const (
	// ModeAutoscale centers and variance-scales each training part
	// (the conventional PLS-DA preprocessing).
	ModeAutoscale Mode = iota

	// ModeCenter only subtracts the training-part column means.
	ModeCenter
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMode is the per-fold preprocessing applied when no WithMode
	// option is given.
	DefaultMode = ModeAutoscale

	// DefaultWorkers runs folds sequentially; raise via WithWorkers to
	// fit independent folds on parallel goroutines.
	DefaultWorkers = 1
)

const (
	panicModeInvalid    = "crossval: WithMode: unknown preprocessing mode"
	panicWorkersInvalid = "crossval: WithWorkers: workers must be >= 1"
)

// Options carries the driver policy. Fields are unexported; construct
// via DefaultOptions and the With* options.
type Options struct {
	mode    Mode
	workers int
	fit     []nipals.Option
}

// Option mutates Options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// DefaultOptions returns the documented default driver policy.
func DefaultOptions() Options {
	return Options{mode: DefaultMode, workers: DefaultWorkers}
}

// WithMode selects the per-fold preprocessing. Panics on an unknown mode.
func WithMode(m Mode) Option {
	if m != ModeAutoscale && m != ModeCenter {
		panic(panicModeInvalid)
	}

	return func(o *Options) { o.mode = m }
}

// WithWorkers bounds how many folds are fitted concurrently. Each fold
// works on its own data copies and writes to its own result slots, so no
// locking is needed. Panics if workers is below 1.
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// WithFitOptions forwards numeric-policy options to every per-fold
// nipals.Fit call.
func WithFitOptions(opts ...nipals.Option) Option {
	return func(o *Options) { o.fit = append(o.fit, opts...) }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
