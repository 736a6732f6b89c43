// SPDX-License-Identifier: MIT
// Package dataset: container construction and read accessors.
//
// Purpose:
//   - Build the predictor matrix X and the one-hot response matrix Y from an
//     already-parsed table (header + numeric rows + category labels).
//   - Keep the category ordering deterministic (sorted, ascending) so that
//     Y columns align across containers built from the same training set.

package dataset

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Dataset holds a labeled multivariate table in matrix form together with
// the preprocessing state learned from it.
//
// X is n×m (samples × predictor variables), Y is n×p (samples × category
// indicator columns). Y's columns follow Categories() order: Y[i][j] = 1
// iff sample i carries category j, 0 otherwise.
//
// A Dataset is owned by the scope that constructed it; transforms mutate
// it in place, at most once per transform kind.
type Dataset struct {
	x *mat.Dense // n×m predictor matrix
	y *mat.Dense // n×p one-hot response matrix

	labels     []string // per-row category label, len n
	header     []string // variable names, len m+1 (first entry: sample-id column)
	categories []string // distinct labels, sorted ascending, len p

	centered   bool
	normalized bool

	xMeans, yMeans []float64 // recorded by Center
	xStds, yStds   []float64 // recorded by Normalize

	constXCols []int // x columns left unscaled by Normalize (near-zero deviation)
	constYCols []int // y columns left unscaled by Normalize
}

// New builds a training-role Dataset from an already-parsed table.
//
// header carries m+1 entries: the sample-identifier column name followed
// by one name per predictor variable. labels carries one category label
// per row. rows is the n×m numeric body; every value must be finite.
//
// The one-hot response matrix is derived from the distinct labels, sorted
// ascending, one indicator column per category.
//
// Errors: ErrEmptyDataset, ErrRaggedBody, ErrHeaderMismatch,
// ErrLabelMismatch, ErrNaNInf.
func New(header []string, labels []string, rows [][]float64) (*Dataset, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyDataset
	}
	n, m := len(rows), len(rows[0])
	if len(header) != m+1 {
		return nil, fmt.Errorf("New: want %d names, got %d: %w", m+1, len(header), ErrHeaderMismatch)
	}
	if len(labels) != n {
		return nil, fmt.Errorf("New: want %d labels, got %d: %w", n, len(labels), ErrLabelMismatch)
	}

	x := mat.NewDense(n, m, nil)
	for i, row := range rows {
		if len(row) != m {
			return nil, fmt.Errorf("New: row %d has %d columns, want %d: %w", i, len(row), m, ErrRaggedBody)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("New: row %d column %d: %w", i, j, ErrNaNInf)
			}
			x.Set(i, j, v)
		}
	}

	categories := distinctSorted(labels)
	y := oneHot(labels, categories)

	return &Dataset{
		x:          x,
		y:          y,
		labels:     append([]string(nil), labels...),
		header:     append([]string(nil), header...),
		categories: categories,
	}, nil
}

// NewTestSet builds a test-role Dataset in the training container's
// coordinate frame: the response columns follow train's category order and
// the predictor/response matrices are transformed with train's recorded
// means and deviations.
//
// Requiring the training container here is deliberate: a held-out set must
// never be scaled with its own statistics.
//
// Errors: ErrNilDataset, ErrUnknownCategory, ErrDimensionMismatch, plus
// every error New can return.
func NewTestSet(train *Dataset, labels []string, rows [][]float64) (*Dataset, error) {
	if train == nil {
		return nil, fmt.Errorf("NewTestSet: %w", ErrNilDataset)
	}
	if len(rows) > 0 && len(rows[0]) != train.M() {
		return nil, fmt.Errorf("NewTestSet: %d predictor columns, train has %d: %w",
			len(rows[0]), train.M(), ErrDimensionMismatch)
	}

	ts, err := New(train.header, labels, rows)
	if err != nil {
		return nil, err
	}

	// Rebuild Y against the training category set so indicator columns align.
	for _, lab := range labels {
		if !contains(train.categories, lab) {
			return nil, fmt.Errorf("NewTestSet: label %q: %w", lab, ErrUnknownCategory)
		}
	}
	ts.categories = append([]string(nil), train.categories...)
	ts.y = oneHot(ts.labels, ts.categories)

	if err = ts.TransformAs(train); err != nil {
		return nil, err
	}

	return ts, nil
}

// Subset returns a fresh Dataset holding only the given rows, in the given
// order. The parent's category ordering (hence Y column layout), header,
// preprocessing flags and learned parameters are all preserved, so a
// subset of a raw container is raw and a subset of an autoscaled container
// stays in the parent's coordinate frame.
//
// Errors: ErrBadIndex on empty, out-of-range or duplicate indices.
func (d *Dataset) Subset(indices []int) (*Dataset, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("Subset: empty index set: %w", ErrBadIndex)
	}
	n := d.N()
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= n || seen[i] {
			return nil, fmt.Errorf("Subset: index %d: %w", i, ErrBadIndex)
		}
		seen[i] = true
	}

	m, p := d.M(), d.P()
	x := mat.NewDense(len(indices), m, nil)
	y := mat.NewDense(len(indices), p, nil)
	labels := make([]string, len(indices))
	for k, i := range indices {
		x.SetRow(k, d.x.RawRowView(i))
		y.SetRow(k, d.y.RawRowView(i))
		labels[k] = d.labels[i]
	}

	return &Dataset{
		x:          x,
		y:          y,
		labels:     labels,
		header:     append([]string(nil), d.header...),
		categories: append([]string(nil), d.categories...),
		centered:   d.centered,
		normalized: d.normalized,
		xMeans:     append([]float64(nil), d.xMeans...),
		yMeans:     append([]float64(nil), d.yMeans...),
		xStds:      append([]float64(nil), d.xStds...),
		yStds:      append([]float64(nil), d.yStds...),
		constXCols: append([]int(nil), d.constXCols...),
		constYCols: append([]int(nil), d.constYCols...),
	}, nil
}

// N returns the sample count.
func (d *Dataset) N() int { r, _ := d.x.Dims(); return r }

// M returns the predictor variable count.
func (d *Dataset) M() int { _, c := d.x.Dims(); return c }

// P returns the response (category indicator) column count.
func (d *Dataset) P() int { _, c := d.y.Dims(); return c }

// X returns the predictor matrix. The returned value is the Dataset's
// backing storage; callers must treat it as read-only.
func (d *Dataset) X() *mat.Dense { return d.x }

// Y returns the one-hot response matrix. The returned value is the
// Dataset's backing storage; callers must treat it as read-only.
func (d *Dataset) Y() *mat.Dense { return d.y }

// Labels returns the per-sample category labels, one per row.
func (d *Dataset) Labels() []string { return append([]string(nil), d.labels...) }

// Header returns the m+1 variable names; the first entry is the
// sample-identifier column name.
func (d *Dataset) Header() []string { return append([]string(nil), d.header...) }

// Categories returns the distinct category labels in Y column order
// (sorted ascending).
func (d *Dataset) Categories() []string { return append([]string(nil), d.categories...) }

// Centered reports whether Center has been applied.
func (d *Dataset) Centered() bool { return d.centered }

// Normalized reports whether Normalize has been applied.
func (d *Dataset) Normalized() bool { return d.normalized }

// XMeans returns the per-column x means recorded by Center, or nil if the
// container is not centered.
func (d *Dataset) XMeans() []float64 { return append([]float64(nil), d.xMeans...) }

// YMeans returns the per-column y means recorded by Center, or nil if the
// container is not centered.
func (d *Dataset) YMeans() []float64 { return append([]float64(nil), d.yMeans...) }

// XStdDevs returns the per-column x deviations recorded by Normalize, or
// nil if the container is not normalized. Columns listed by
// ConstantXColumns hold 1 (left unscaled).
func (d *Dataset) XStdDevs() []float64 { return append([]float64(nil), d.xStds...) }

// YStdDevs returns the per-column y deviations recorded by Normalize, or
// nil if the container is not normalized.
func (d *Dataset) YStdDevs() []float64 { return append([]float64(nil), d.yStds...) }

// ConstantXColumns returns the x column indices Normalize left unscaled
// because their deviation was below the zero guard.
func (d *Dataset) ConstantXColumns() []int { return append([]int(nil), d.constXCols...) }

// ConstantYColumns returns the y column indices Normalize left unscaled.
func (d *Dataset) ConstantYColumns() []int { return append([]int(nil), d.constYCols...) }

// distinctSorted returns the distinct values of labels, sorted ascending.
func distinctSorted(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	out := make([]string, 0, len(labels))
	for _, lab := range labels {
		if !seen[lab] {
			seen[lab] = true
			out = append(out, lab)
		}
	}
	sort.Strings(out)

	return out
}

// oneHot builds the n×p indicator matrix of labels against categories.
func oneHot(labels, categories []string) *mat.Dense {
	y := mat.NewDense(len(labels), len(categories), nil)
	for i, lab := range labels {
		for j, cat := range categories {
			if lab == cat {
				y.Set(i, j, 1)
			}
		}
	}

	return y
}

// contains reports whether s is an element of set.
func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}

	return false
}
