// SPDX-License-Identifier: MIT
// Package nipals: the iterative NIPALS fit.
//
// Algorithm Outline (per latent variable, on the residual matrices):
//  1. u ← the residual-Y column with the largest sum of squares.
//  2. Iterate:
//     w = Xᵀu / (uᵀu), normalized to unit length
//     t = X·w
//     q = Yᵀt / (tᵀt), normalized to unit length
//     u = Y·q / (qᵀq)
//     until the relative change of t drops below the tolerance or the
//     iteration cap is reached (cap overrun is recorded, not fatal).
//  3. p = Xᵀt / (tᵀt);  b = uᵀt / (tᵀt).
//  4. Deflate: X ← X − t·pᵀ,  Y ← Y − b·t·qᵀ.
//  5. Record t, u, w, p, q, b; eigenvalues tᵀt and uᵀu.
//
// A single-column Y degenerates q to ±1 and the u-update to a sign-fixed
// pass-through of Y; the same loop handles it without special cases.
//
// Complexity: O(k · iters · n·m) time, O(n·m + n·p) working memory.

package nipals

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/yuanmengzhixing/PLS-DA/dataset"
)

// latent carries one extracted component before it is recorded into the
// model's column-indexed matrices.
type latent struct {
	t, u, w, p, q *mat.VecDense
	b             float64
	tSq, uSq      float64
	converged     bool
}

// Fit extracts up to k latent variables from the preprocessed container
// via the iterative NIPALS procedure and returns the fitted model.
//
// Requirements:
//   - ds must be centered (ErrNotCentered otherwise); fitting non-centered
//     data is numerically unreliable and is refused rather than attempted.
//   - 1 ≤ k ≤ min(n-1, m) (ErrBadLVCount otherwise).
//   - n ≥ 3 (ErrDegenerateData otherwise).
//
// Numeric conditions at latent-variable granularity are recoverable: a
// component that hits the iteration cap is retained with the best
// available estimate and a ConditionNoConvergence record; a vanishing
// score/weight/residual stops extraction early with a
// ConditionDegeneracy record, keeping the components found so far. Only
// a dataset yielding no component at all fails with ErrDegenerateData.
//
// Fit does not mutate ds, and the same inputs always reproduce an
// identical model.
func Fit(ds *dataset.Dataset, k int, opts ...Option) (*Model, error) {
	if ds == nil {
		return nil, fmt.Errorf("Fit: %w", ErrNilDataset)
	}
	if !ds.Centered() {
		return nil, fmt.Errorf("Fit: %w", ErrNotCentered)
	}
	n, m, p := ds.N(), ds.M(), ds.P()
	if n < 3 {
		return nil, fmt.Errorf("Fit: %d samples: %w", n, ErrDegenerateData)
	}
	if kMax := min(n-1, m); k < 1 || k > kMax {
		return nil, fmt.Errorf("Fit: k=%d outside [1, %d]: %w", k, kMax, ErrBadLVCount)
	}
	o := gatherOptions(opts...)

	// Work on residual copies; deflation must not touch the container.
	X := mat.DenseCopyOf(ds.X())
	Y := mat.DenseCopyOf(ds.Y())

	mod := &Model{
		n: n, m: m, py: p,
		scoresX: mat.NewDense(n, k, nil),
		scoresY: mat.NewDense(n, k, nil),
		loadX:   mat.NewDense(m, k, nil),
		loadY:   mat.NewDense(p, k, nil),
		weights: mat.NewDense(m, k, nil),
		inner:   make([]float64, k),
		xEig:    make([]float64, k),
		yEig:    make([]float64, k),
	}

	for i := 0; i < k; i++ {
		lc, cond := extractLatent(X, Y, o)
		if cond != nil {
			cond.LV = i
			mod.conditions = append(mod.conditions, *cond)
			if cond.Kind == ConditionDegeneracy {
				break // keep the components found so far
			}
		}

		// Deflate the residuals before the next extraction.
		var outerX, outerY mat.Dense
		outerX.Outer(1, lc.t, lc.p)
		X.Sub(X, &outerX)
		outerY.Outer(lc.b, lc.t, lc.q)
		Y.Sub(Y, &outerY)

		mod.scoresX.SetCol(i, lc.t.RawVector().Data)
		mod.scoresY.SetCol(i, lc.u.RawVector().Data)
		mod.loadX.SetCol(i, lc.p.RawVector().Data)
		mod.loadY.SetCol(i, lc.q.RawVector().Data)
		mod.weights.SetCol(i, lc.w.RawVector().Data)
		mod.inner[i] = lc.b
		mod.xEig[i] = lc.tSq
		mod.yEig[i] = lc.uSq
		mod.extracted++
	}

	if mod.extracted == 0 {
		return nil, fmt.Errorf("Fit: no latent variable could be extracted: %w", ErrDegenerateData)
	}
	if mod.extracted < k {
		mod.truncate(mod.extracted)
	}
	mod.resX = X
	mod.resY = Y
	mod.nrLV = mod.extracted

	return mod, nil
}

// extractLatent runs the inner power loop on the current residuals and
// returns one component. A nil condition means clean convergence; a
// ConditionNoConvergence still carries a usable component; a
// ConditionDegeneracy carries none and extraction must stop.
func extractLatent(X, Y *mat.Dense, o Options) (latent, *Condition) {
	n, m := X.Dims()
	_, p := Y.Dims()

	lc := latent{
		t: mat.NewVecDense(n, nil),
		u: mat.NewVecDense(n, nil),
		w: mat.NewVecDense(m, nil),
		p: mat.NewVecDense(m, nil),
		q: mat.NewVecDense(p, nil),
	}

	// Seed u with the residual-Y column of largest sum of squares: a
	// deterministic start that degenerates to the only column when p = 1.
	col := make([]float64, n)
	best, bestSq := 0, math.Inf(-1)
	for j := 0; j < p; j++ {
		mat.Col(col, j, Y)
		if ss := floats.Dot(col, col); ss > bestSq {
			best, bestSq = j, ss
		}
	}
	if bestSq < o.epsilon {
		return lc, &Condition{Kind: ConditionDegeneracy, Detail: "response residual exhausted"}
	}
	mat.Col(col, best, Y)
	for i := 0; i < n; i++ {
		lc.u.SetVec(i, col[i])
	}

	tPrev := mat.NewVecDense(n, nil)
	for it := 0; it < o.maxIterations; it++ {
		// w = Xᵀu / (uᵀu), then unit-normalized.
		uSq := mat.Dot(lc.u, lc.u)
		if uSq < o.epsilon {
			return lc, &Condition{Kind: ConditionDegeneracy, Detail: "y-score collapsed to zero"}
		}
		lc.w.MulVec(X.T(), lc.u)
		lc.w.ScaleVec(1/uSq, lc.w)
		wNorm := mat.Norm(lc.w, 2)
		if wNorm*wNorm < o.epsilon {
			return lc, &Condition{Kind: ConditionDegeneracy, Detail: "weight vector collapsed to zero"}
		}
		lc.w.ScaleVec(1/wNorm, lc.w)

		// t = X·w.
		lc.t.MulVec(X, lc.w)
		lc.tSq = mat.Dot(lc.t, lc.t)
		if lc.tSq < o.epsilon {
			return lc, &Condition{Kind: ConditionDegeneracy, Detail: "x-score collapsed to zero"}
		}

		// q = Yᵀt / (tᵀt), then unit-normalized.
		lc.q.MulVec(Y.T(), lc.t)
		lc.q.ScaleVec(1/lc.tSq, lc.q)
		qNorm := mat.Norm(lc.q, 2)
		if qNorm*qNorm < o.epsilon {
			return lc, &Condition{Kind: ConditionDegeneracy, Detail: "y-loading collapsed to zero"}
		}
		lc.q.ScaleVec(1/qNorm, lc.q)

		// u = Y·q / (qᵀq); q has unit length here, so qᵀq = 1.
		lc.u.MulVec(Y, lc.q)
		lc.uSq = mat.Dot(lc.u, lc.u)

		// Converged when t moves by less than tolerance, relatively.
		if it > 0 {
			delta := floats.Distance(lc.t.RawVector().Data, tPrev.RawVector().Data, 2)
			if delta/math.Sqrt(lc.tSq) < o.tolerance {
				lc.converged = true

				break
			}
		}
		tPrev.CopyVec(lc.t)
	}

	// p = Xᵀt / (tᵀt); b = uᵀt / (tᵀt).
	lc.p.MulVec(X.T(), lc.t)
	lc.p.ScaleVec(1/lc.tSq, lc.p)
	lc.b = mat.Dot(lc.u, lc.t) / lc.tSq

	if !lc.converged {
		return lc, &Condition{
			Kind:   ConditionNoConvergence,
			Detail: fmt.Sprintf("iteration cap %d reached", o.maxIterations),
		}
	}

	return lc, nil
}

// truncate shrinks the model's column-indexed storage to the first k
// extracted components.
func (mod *Model) truncate(k int) {
	n := mod.n
	mod.scoresX = mat.DenseCopyOf(mod.scoresX.Slice(0, n, 0, k))
	mod.scoresY = mat.DenseCopyOf(mod.scoresY.Slice(0, n, 0, k))
	mod.loadX = mat.DenseCopyOf(mod.loadX.Slice(0, mod.m, 0, k))
	mod.loadY = mat.DenseCopyOf(mod.loadY.Slice(0, mod.py, 0, k))
	mod.weights = mat.DenseCopyOf(mod.weights.Slice(0, mod.m, 0, k))
	mod.inner = mod.inner[:k]
	mod.xEig = mod.xEig[:k]
	mod.yEig = mod.yEig[:k]
}
