// SPDX-License-Identifier: MIT
// Package nipals: sentinel error set.
// Fit/Predict return these sentinels and tests check them via errors.Is.
// Usage errors (shape, configuration) fail the call outright; per-LV
// numeric trouble is recoverable and lands in Model.Conditions instead.

package nipals

import "errors"

var (
	// ErrNilDataset indicates a nil *dataset.Dataset passed to Fit.
	ErrNilDataset = errors.New("nipals: nil dataset")

	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("nipals: nil matrix")

	// ErrNotCentered rejects fitting a container that has not been
	// centered: NIPALS on raw data is numerically unreliable, so the
	// condition is flagged instead of being silently allowed to diverge.
	ErrNotCentered = errors.New("nipals: dataset not centered")

	// ErrBadLVCount indicates a latent-variable count outside the valid
	// range: below 1, above min(n-1, m) at fit time, or above the number
	// actually extracted at SetNrLV time.
	ErrBadLVCount = errors.New("nipals: invalid latent variable count")

	// ErrDegenerateData indicates the dataset cannot support even one
	// well-defined latent variable (fewer than 3 samples, or an
	// all-but-zero residual response at the first extraction).
	ErrDegenerateData = errors.New("nipals: degenerate dataset")

	// ErrShapeMismatch indicates a prediction matrix whose column count
	// does not match the fitted variable count.
	ErrShapeMismatch = errors.New("nipals: shape mismatch")

	// ErrDegenerateModel indicates a model whose retained components are
	// too collinear for a derived quantity (regression coefficients) to
	// be computed.
	ErrDegenerateModel = errors.New("nipals: degenerate model")
)
