// Package stats: sentinel error set, matched via errors.Is.

package stats

import "errors"

var (
	// ErrShapeMismatch indicates matrices whose dimensions do not agree
	// with each other or with the fitted model.
	ErrShapeMismatch = errors.New("stats: shape mismatch")

	// ErrNilModel indicates a nil *nipals.Model argument.
	ErrNilModel = errors.New("stats: nil model")

	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("stats: nil matrix")

	// ErrSingularCovariance indicates that the active score covariance is
	// numerically singular, so a T² or leverage value is undefined. The
	// metric is reported as degenerate rather than returned as NaN.
	ErrSingularCovariance = errors.New("stats: singular score covariance")
)
