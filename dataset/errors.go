// SPDX-License-Identifier: MIT
// Package dataset: sentinel error set.
// All constructors and transforms MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user input.

package dataset

import "errors"

var (
	// ErrEmptyDataset is returned when the table has no rows or no
	// predictor columns.
	ErrEmptyDataset = errors.New("dataset: empty table")

	// ErrRaggedBody indicates that the body rows do not all share the
	// same column count.
	ErrRaggedBody = errors.New("dataset: ragged body rows")

	// ErrHeaderMismatch indicates that the header length does not equal
	// the predictor column count plus the sample-identifier column.
	ErrHeaderMismatch = errors.New("dataset: header length mismatch")

	// ErrLabelMismatch indicates that the number of category labels does
	// not equal the number of rows.
	ErrLabelMismatch = errors.New("dataset: label count mismatch")

	// ErrNaNInf signals a NaN or ±Inf value in the predictor body where
	// finite values are required.
	ErrNaNInf = errors.New("dataset: NaN or Inf encountered")

	// ErrUnknownCategory is returned by NewTestSet when a test label does
	// not belong to the training container's category set.
	ErrUnknownCategory = errors.New("dataset: unknown category label")

	// ErrAlreadyCentered rejects a second Center call: double-centering
	// silently corrupts the learned means.
	ErrAlreadyCentered = errors.New("dataset: already centered")

	// ErrAlreadyNormalized rejects a second Normalize call.
	ErrAlreadyNormalized = errors.New("dataset: already normalized")

	// ErrAlreadyPreprocessed rejects TransformAs on a container that has
	// its own transforms applied; training parameters can only be replayed
	// onto raw data.
	ErrAlreadyPreprocessed = errors.New("dataset: receiver already preprocessed")

	// ErrDimensionMismatch indicates incompatible variable or category
	// counts between a training and a test container.
	ErrDimensionMismatch = errors.New("dataset: dimension mismatch")

	// ErrBadIndex indicates an out-of-range or duplicate row index passed
	// to Subset.
	ErrBadIndex = errors.New("dataset: row index out of range")

	// ErrNilDataset indicates a nil *Dataset argument.
	ErrNilDataset = errors.New("dataset: nil dataset")
)
