// SPDX-License-Identifier: MIT
// Package dataset: in-place preprocessing transforms.
//
// Purpose:
//   - Center, Normalize and Autoscale the container once each, recording
//     the learned parameters so paired test data can be transformed with
//     the training statistics.
//
// Determinism:
//   - Fixed column-major traversal; no data-dependent ordering.

package dataset

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ZeroDeviationGuard is the threshold below which a column's standard
// deviation is considered zero: Normalize leaves such columns unscaled
// (recorded via ConstantXColumns/ConstantYColumns) instead of dividing
// by a vanishing denominator.
const ZeroDeviationGuard = 1e-8

// Center subtracts the column-wise mean from every column of X and of Y
// independently and records the means, which NewTestSet and TransformAs
// later replay onto paired test data.
//
// A second call returns ErrAlreadyCentered: double-centering would record
// useless (all-zero) means and silently corrupt the paired transform.
func (d *Dataset) Center() error {
	if d.centered {
		return fmt.Errorf("Center: %w", ErrAlreadyCentered)
	}

	d.xMeans = columnMeans(d.x)
	d.yMeans = columnMeans(d.y)
	subtractColumns(d.x, d.xMeans)
	subtractColumns(d.y, d.yMeans)
	d.centered = true

	return nil
}

// Normalize divides every column of X and of Y by its population
// (ddof=0) standard deviation, computed on the current — possibly
// centered — data, and records the deviations.
//
// Columns whose deviation falls below ZeroDeviationGuard are left
// unscaled with a recorded deviation of 1; their indices are reported by
// ConstantXColumns/ConstantYColumns so the caller can inspect or drop
// them before fitting.
//
// A second call returns ErrAlreadyNormalized.
func (d *Dataset) Normalize() error {
	if d.normalized {
		return fmt.Errorf("Normalize: %w", ErrAlreadyNormalized)
	}

	d.xStds, d.constXCols = columnDeviations(d.x)
	d.yStds, d.constYCols = columnDeviations(d.y)
	divideColumns(d.x, d.xStds)
	divideColumns(d.y, d.yStds)
	d.normalized = true

	return nil
}

// Autoscale is the conventional composition Center then Normalize, in
// that order. The order matters: the recorded deviations are those of the
// centered data, and prediction-time scaling replays them in the same
// order.
func (d *Dataset) Autoscale() error {
	if err := d.Center(); err != nil {
		return err
	}

	return d.Normalize()
}

// TransformAs applies the training container's recorded transforms to a
// raw receiver: train's means are subtracted if train is centered, then
// train's deviations divide each column if train is normalized. The
// receiver ends up flagged exactly like train.
//
// Errors: ErrNilDataset, ErrAlreadyPreprocessed if the receiver has its
// own transforms applied, ErrDimensionMismatch if variable or category
// counts differ.
func (d *Dataset) TransformAs(train *Dataset) error {
	if train == nil {
		return fmt.Errorf("TransformAs: %w", ErrNilDataset)
	}
	if d.centered || d.normalized {
		return fmt.Errorf("TransformAs: %w", ErrAlreadyPreprocessed)
	}
	if d.M() != train.M() || d.P() != train.P() {
		return fmt.Errorf("TransformAs: %dx%d vs train %dx%d: %w",
			d.M(), d.P(), train.M(), train.P(), ErrDimensionMismatch)
	}

	if train.centered {
		subtractColumns(d.x, train.xMeans)
		subtractColumns(d.y, train.yMeans)
		d.xMeans = append([]float64(nil), train.xMeans...)
		d.yMeans = append([]float64(nil), train.yMeans...)
		d.centered = true
	}
	if train.normalized {
		divideColumns(d.x, train.xStds)
		divideColumns(d.y, train.yStds)
		d.xStds = append([]float64(nil), train.xStds...)
		d.yStds = append([]float64(nil), train.yStds...)
		d.constXCols = append([]int(nil), train.constXCols...)
		d.constYCols = append([]int(nil), train.constYCols...)
		d.normalized = true
	}

	return nil
}

// columnMeans computes the per-column mean of a in a single deterministic
// pass.
func columnMeans(a *mat.Dense) []float64 {
	r, c := a.Dims()
	means := make([]float64, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, a)
		means[j] = stat.Mean(col, nil)
	}

	return means
}

// columnDeviations computes the per-column population standard deviation
// of a. Deviations below ZeroDeviationGuard are replaced by 1 and the
// column index is reported in the second return value.
func columnDeviations(a *mat.Dense) (devs []float64, constCols []int) {
	r, c := a.Dims()
	devs = make([]float64, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, a)
		devs[j] = stat.PopStdDev(col, nil)
		if math.Abs(devs[j]) < ZeroDeviationGuard {
			devs[j] = 1
			constCols = append(constCols, j)
		}
	}

	return devs, constCols
}

// subtractColumns mutates a in place: a[i][j] -= v[j].
func subtractColumns(a *mat.Dense, v []float64) {
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			a.Set(i, j, a.At(i, j)-v[j])
		}
	}
}

// divideColumns mutates a in place: a[i][j] /= v[j].
func divideColumns(a *mat.Dense, v []float64) {
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			a.Set(i, j, a.At(i, j)/v[j])
		}
	}
}
