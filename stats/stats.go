// Package stats: residual summaries over true vs. predicted responses.

package stats

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Result is one evaluation outcome, produced fresh per call and owned by
// the caller (one per cross-validation cell, typically).
type Result struct {
	// RSS is the residual sum of squares between true and predicted
	// response values. Meaningless when Degenerate is set.
	RSS float64

	// Degenerate marks a cell whose metric is undefined, e.g. because the
	// underlying fit stopped short of the requested latent variables.
	Degenerate bool
}

// RSS returns the sum of squared elementwise differences between the
// true and predicted response matrices.
//
// Errors: ErrNilMatrix, ErrShapeMismatch on differing dimensions.
func RSS(yTrue, yPred mat.Matrix) (float64, error) {
	if yTrue == nil || yPred == nil {
		return 0, fmt.Errorf("RSS: %w", ErrNilMatrix)
	}
	tr, tc := yTrue.Dims()
	pr, pc := yPred.Dims()
	if tr != pr || tc != pc {
		return 0, fmt.Errorf("RSS: %dx%d vs %dx%d: %w", tr, tc, pr, pc, ErrShapeMismatch)
	}

	sum := 0.0
	for i := 0; i < tr; i++ {
		for j := 0; j < tc; j++ {
			d := yTrue.At(i, j) - yPred.At(i, j)
			sum += d * d
		}
	}

	return sum, nil
}

// Evaluate wraps RSS into a Result value.
func Evaluate(yTrue, yPred mat.Matrix) (Result, error) {
	rss, err := RSS(yTrue, yPred)
	if err != nil {
		return Result{}, err
	}

	return Result{RSS: rss}, nil
}
