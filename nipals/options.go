// SPDX-License-Identifier: MIT
// Package nipals: functional configuration for the fit loop.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Documented defaults as exported constants (single source of truth).
//   - Safe by construction: With* constructors panic only on nonsensical
//     values (programmer error), never on data.

package nipals

import "math"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultTolerance is the relative-change threshold on the x-score
	// vector t below which an iteration is considered converged.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations caps the inner power loop per latent variable.
	// Hitting the cap is non-fatal: the latent variable is retained with
	// the best available estimate and a ConditionNoConvergence is
	// recorded on the model.
	DefaultMaxIterations = 200

	// DefaultEpsilon is the squared-magnitude threshold below which a
	// score, weight or residual vector is treated as numerically zero.
	DefaultEpsilon = 1e-12
)

const (
	panicToleranceInvalid  = "nipals: WithTolerance: tol must be finite and > 0"
	panicIterationsInvalid = "nipals: WithMaxIterations: cap must be >= 1"
	panicEpsilonInvalid    = "nipals: WithEpsilon: eps must be finite and >= 0"
)

// Options carries the numeric policy of a single Fit call. Fields are
// unexported; construct via DefaultOptions and the With* options.
type Options struct {
	tolerance     float64
	maxIterations int
	epsilon       float64
}

// Option mutates Options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// DefaultOptions returns the documented default numeric policy.
func DefaultOptions() Options {
	return Options{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
		epsilon:       DefaultEpsilon,
	}
}

// WithTolerance sets the relative convergence tolerance on t.
// Panics if tol is not finite or not positive.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithMaxIterations sets the per-latent-variable iteration cap.
// Panics if cap is below 1.
func WithMaxIterations(iterations int) Option {
	if iterations < 1 {
		panic(panicIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = iterations }
}

// WithEpsilon sets the numerically-zero threshold for squared magnitudes.
// Panics if eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.epsilon = eps }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
