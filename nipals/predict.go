// SPDX-License-Identifier: MIT
// Package nipals: projection of new samples onto the fitted latent space.

package nipals

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Predict projects a new predictor matrix through the first NrLV latent
// variables and returns the predicted response scores (rows(x) × p).
//
// x must already be transformed into the training coordinate frame
// (dataset.NewTestSet does this) and must carry exactly M columns
// (ErrShapeMismatch otherwise). The projection re-deflates a working
// copy the same way training deflation proceeded and accumulates each
// latent variable's contribution bᵢ·tᵢ·qᵢᵀ; the model itself is never
// mutated.
func (mod *Model) Predict(x mat.Matrix) (*mat.Dense, error) {
	if x == nil {
		return nil, fmt.Errorf("Predict: %w", ErrNilMatrix)
	}
	r, c := x.Dims()
	if c != mod.m {
		return nil, fmt.Errorf("Predict: %d columns, model has %d variables: %w", c, mod.m, ErrShapeMismatch)
	}

	residual := mat.DenseCopyOf(x)
	pred := mat.NewDense(r, mod.py, nil)
	t := mat.NewVecDense(r, nil)

	var outerX, outerY mat.Dense
	for i := 0; i < mod.nrLV; i++ {
		t.MulVec(residual, mod.weights.ColView(i))

		outerX.Outer(1, t, mod.loadX.ColView(i))
		residual.Sub(residual, &outerX)

		outerY.Outer(mod.inner[i], t, mod.loadY.ColView(i))
		pred.Add(pred, &outerY)
	}

	return pred, nil
}

// Coefficients collapses the first NrLV latent variables into a single
// m×p regression coefficient matrix B = W(PᵀW)⁻¹·diag(b)·Qᵀ, so that
// X·B reproduces Predict(X) in one multiplication. Useful for inspecting
// per-variable influence on each response column.
//
// Returns ErrDegenerateModel when PᵀW is singular, which happens when
// the retained components are numerically collinear.
func (mod *Model) Coefficients() (*mat.Dense, error) {
	k := mod.nrLV
	wk := mod.weights.Slice(0, mod.m, 0, k)
	pk := mod.loadX.Slice(0, mod.m, 0, k)
	qk := mod.loadY.Slice(0, mod.py, 0, k)

	var ptw mat.Dense
	ptw.Mul(pk.T(), wk)
	var inv mat.Dense
	if err := inv.Inverse(&ptw); err != nil {
		return nil, fmt.Errorf("Coefficients: %w", ErrDegenerateModel)
	}

	var rot mat.Dense
	rot.Mul(wk, &inv)
	var scaled mat.Dense
	scaled.Mul(&rot, mat.NewDiagDense(k, mod.inner[:k]))

	var coef mat.Dense
	coef.Mul(&scaled, qk.T())

	return &coef, nil
}
