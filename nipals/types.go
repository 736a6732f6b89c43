// SPDX-License-Identifier: MIT
// Package nipals: the fitted model value and its read-only surface.
//
// Ownership:
//   - A Model owns its matrices exclusively and is immutable after Fit,
//     with one exception: SetNrLV adjusts how many extracted components
//     downstream computations use. Accessors hand out defensive copies.

package nipals

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Space selects the predictor (x) or response (y) side of the model for
// quantities that exist symmetrically on both, such as explained
// variance. An explicit two-variant selector cannot encode the invalid
// "both" or "neither" states a pair of booleans could.
type Space int

const (
	// SpaceX selects the predictor-side quantity.
	SpaceX Space = iota

	// SpaceY selects the response-side quantity.
	SpaceY
)

// String returns "x" or "y".
func (s Space) String() string {
	if s == SpaceY {
		return "y"
	}

	return "x"
}

// ConditionKind classifies a non-fatal numeric condition recorded while
// fitting a single latent variable.
type ConditionKind int

const (
	// ConditionNoConvergence marks a latent variable whose power loop hit
	// the iteration cap; the component is retained with the best
	// available estimate.
	ConditionNoConvergence ConditionKind = iota

	// ConditionDegeneracy marks the point where extraction stopped
	// because a score, weight or residual vector became numerically
	// zero; latent variables before it remain valid.
	ConditionDegeneracy
)

// Condition reports a numeric event at latent-variable granularity. The
// caller decides whether to keep the affected component.
type Condition struct {
	// LV is the zero-based latent-variable index the condition refers to.
	LV int

	// Kind classifies the condition.
	Kind ConditionKind

	// Detail is a short human-readable description.
	Detail string
}

// Model is the immutable result of a NIPALS decomposition.
//
// All matrices span the extracted components (columns 0..Extracted()-1);
// NrLV selects how many of them Predict and the statistics layer use.
type Model struct {
	n, m, py int // samples, x variables, y variables

	extracted int // latent variables actually extracted
	nrLV      int // latent variables in active use, 1..extracted

	scoresX *mat.Dense // T, n×extracted
	scoresY *mat.Dense // U, n×extracted
	loadX   *mat.Dense // P, m×extracted
	loadY   *mat.Dense // Q, p×extracted
	weights *mat.Dense // W, m×extracted

	inner []float64 // b, inner-relation coefficient per latent variable

	resX *mat.Dense // E_x, x residual after full deflation, n×m
	resY *mat.Dense // E_y, y residual after full deflation, n×p

	xEig []float64 // tᵀt per latent variable
	yEig []float64 // uᵀu per latent variable

	conditions []Condition
}

// N returns the training sample count.
func (mod *Model) N() int { return mod.n }

// M returns the predictor variable count.
func (mod *Model) M() int { return mod.m }

// Responses returns the response column count p.
func (mod *Model) Responses() int { return mod.py }

// Extracted returns the number of latent variables actually extracted,
// which may fall short of the requested count when extraction stopped on
// a degeneracy (see Conditions).
func (mod *Model) Extracted() int { return mod.extracted }

// NrLV returns the number of latent variables in active use.
func (mod *Model) NrLV() int { return mod.nrLV }

// SetNrLV selects how many of the extracted latent variables Predict and
// dependent statistics use. Returns ErrBadLVCount if k is below 1 or
// beyond Extracted().
func (mod *Model) SetNrLV(k int) error {
	if k < 1 || k > mod.extracted {
		return fmt.Errorf("SetNrLV: %d of %d extracted: %w", k, mod.extracted, ErrBadLVCount)
	}
	mod.nrLV = k

	return nil
}

// T returns a copy of the x-score matrix (n × Extracted).
func (mod *Model) T() *mat.Dense { return mat.DenseCopyOf(mod.scoresX) }

// U returns a copy of the y-score matrix (n × Extracted).
func (mod *Model) U() *mat.Dense { return mat.DenseCopyOf(mod.scoresY) }

// P returns a copy of the x-loading matrix (m × Extracted).
func (mod *Model) P() *mat.Dense { return mat.DenseCopyOf(mod.loadX) }

// Q returns a copy of the y-loading matrix (p × Extracted).
func (mod *Model) Q() *mat.Dense { return mat.DenseCopyOf(mod.loadY) }

// W returns a copy of the weight matrix (m × Extracted).
func (mod *Model) W() *mat.Dense { return mat.DenseCopyOf(mod.weights) }

// B returns a copy of the inner-relation coefficients, one per extracted
// latent variable.
func (mod *Model) B() []float64 { return append([]float64(nil), mod.inner...) }

// EX returns a copy of the x-residual matrix after full deflation (n × m).
func (mod *Model) EX() *mat.Dense { return mat.DenseCopyOf(mod.resX) }

// EY returns a copy of the y-residual matrix after full deflation (n × p).
func (mod *Model) EY() *mat.Dense { return mat.DenseCopyOf(mod.resY) }

// XEigenvalues returns a copy of the per-latent-variable captured x
// variance (tᵀt), recorded in extraction order. Non-negative, but not
// guaranteed non-increasing.
func (mod *Model) XEigenvalues() []float64 { return append([]float64(nil), mod.xEig...) }

// YEigenvalues returns a copy of the per-latent-variable captured y
// variance (uᵀu), recorded in extraction order.
func (mod *Model) YEigenvalues() []float64 { return append([]float64(nil), mod.yEig...) }

// Conditions returns the numeric conditions recorded during Fit, in
// extraction order. An empty slice means every requested latent variable
// converged cleanly.
func (mod *Model) Conditions() []Condition { return append([]Condition(nil), mod.conditions...) }

// ExplainedVariance returns the percentage of captured variance
// attributed to each extracted latent variable in the chosen space,
// relative to the total captured by the model. Values sum to 100 when at
// least one component was extracted.
func (mod *Model) ExplainedVariance(s Space) []float64 {
	eig := mod.xEig
	if s == SpaceY {
		eig = mod.yEig
	}

	total := 0.0
	for _, v := range eig {
		total += v
	}
	out := make([]float64, len(eig))
	if total == 0 {
		return out
	}
	for i, v := range eig {
		out[i] = v / total * 100
	}

	return out
}
