// Package crossval: sentinel error set, matched via errors.Is.

package crossval

import "errors"

var (
	// ErrNilDataset indicates a nil *dataset.Dataset argument.
	ErrNilDataset = errors.New("crossval: nil dataset")

	// ErrPreprocessed rejects an already-centered or normalized input:
	// the driver re-learns preprocessing inside each fold to keep
	// training statistics out of the held-out data, which a globally
	// transformed container would defeat.
	ErrPreprocessed = errors.New("crossval: dataset already preprocessed")

	// ErrBadFoldCount indicates a fold count below 2, above the sample
	// count, or one that leaves a training part too small to fit.
	ErrBadFoldCount = errors.New("crossval: invalid fold count")

	// ErrBadLVCount indicates a maximum latent-variable count below 1 or
	// beyond what the smallest training part can support.
	ErrBadLVCount = errors.New("crossval: invalid latent variable count")
)
