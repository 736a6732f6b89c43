// Package crossval: stratified K-fold driver.
//
// Partitioning:
//   - Samples are grouped by category (sorted order) and dealt onto folds
//     with a single rotating cursor, so every category's samples spread
//     proportionally across folds and every fold is non-empty whenever
//     folds ≤ n. The partition is deterministic: identical inputs yield
//     identical folds.
//
// Per fold:
//   - The training part re-learns preprocessing (per Options.Mode), the
//     held-out part is transformed with those training parameters, the
//     engine fits once at the maximum latent-variable count, and every
//     candidate count 1..K is scored on the held-out part.
//
// Concurrency:
//   - Folds are independent: each worker owns its fold's data copies and
//     writes to its own preallocated result slots. The output map is
//     assembled once, after all workers finish.

package crossval

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/yuanmengzhixing/PLS-DA/dataset"
	"github.com/yuanmengzhixing/PLS-DA/nipals"
	"github.com/yuanmengzhixing/PLS-DA/stats"
)

// Key indexes one cross-validation cell: fold numbers run 1..folds,
// latent-variable counts 1..maxLV.
type Key struct {
	Fold int
	NrLV int
}

// CrossValidate partitions ds into folds category-balanced groups and,
// for each fold, fits the remaining samples and scores the held-out part
// at every latent-variable count 1..maxLV. The result holds exactly
// folds×maxLV cells.
//
// ds must be raw: preprocessing is learned inside each fold and replayed
// onto its held-out part, keeping training statistics out of validation
// data. A fold whose fit stops short of a requested count yields cells
// flagged Degenerate instead of aborting the run.
//
// Errors: ErrNilDataset, ErrPreprocessed, ErrBadFoldCount, ErrBadLVCount.
func CrossValidate(ds *dataset.Dataset, folds, maxLV int, opts ...Option) (map[Key]stats.Result, error) {
	if ds == nil {
		return nil, fmt.Errorf("CrossValidate: %w", ErrNilDataset)
	}
	if ds.Centered() || ds.Normalized() {
		return nil, fmt.Errorf("CrossValidate: %w", ErrPreprocessed)
	}
	n := ds.N()
	if folds < 2 || folds > n {
		return nil, fmt.Errorf("CrossValidate: %d folds over %d samples: %w", folds, n, ErrBadFoldCount)
	}
	if maxLV < 1 || maxLV > ds.M() {
		return nil, fmt.Errorf("CrossValidate: maxLV=%d with %d variables: %w", maxLV, ds.M(), ErrBadLVCount)
	}

	partition := stratifiedFolds(ds.Labels(), folds)
	for _, val := range partition {
		nTrain := n - len(val)
		if nTrain < 3 {
			return nil, fmt.Errorf("CrossValidate: a training part has %d samples: %w", nTrain, ErrBadFoldCount)
		}
		if maxLV > nTrain-1 {
			return nil, fmt.Errorf("CrossValidate: maxLV=%d exceeds training part of %d samples: %w",
				maxLV, nTrain, ErrBadLVCount)
		}
	}

	o := gatherOptions(opts...)

	// One write-once slot per (fold, lv_count) cell; workers never share.
	cells := make([]stats.Result, folds*maxLV)
	errs := make([]error, folds)

	var wg sync.WaitGroup
	sem := make(chan struct{}, o.workers)
	for f := 0; f < folds; f++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(f int) {
			defer wg.Done()
			defer func() { <-sem }()
			errs[f] = runFold(ds, partition, f, maxLV, o, cells[f*maxLV:(f+1)*maxLV])
		}(f)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	out := make(map[Key]stats.Result, folds*maxLV)
	for f := 0; f < folds; f++ {
		for k := 1; k <= maxLV; k++ {
			out[Key{Fold: f + 1, NrLV: k}] = cells[f*maxLV+k-1]
		}
	}

	return out, nil
}

// runFold fits fold f's training part and scores its held-out part at
// every candidate latent-variable count, writing into slots[k-1].
func runFold(ds *dataset.Dataset, partition [][]int, f, maxLV int, o Options, slots []stats.Result) error {
	val := partition[f]
	inVal := make(map[int]bool, len(val))
	for _, i := range val {
		inVal[i] = true
	}
	trainIdx := make([]int, 0, ds.N()-len(val))
	for i := 0; i < ds.N(); i++ {
		if !inVal[i] {
			trainIdx = append(trainIdx, i)
		}
	}

	train, err := ds.Subset(trainIdx)
	if err != nil {
		return err
	}
	switch o.mode {
	case ModeCenter:
		err = train.Center()
	default:
		err = train.Autoscale()
	}
	if err != nil {
		return err
	}

	hold, err := ds.Subset(val)
	if err != nil {
		return err
	}
	if err = hold.TransformAs(train); err != nil {
		return err
	}

	model, err := nipals.Fit(train, maxLV, o.fit...)
	if errors.Is(err, nipals.ErrDegenerateData) {
		// Nothing extractable on this fold: every cell is undefined.
		for k := range slots {
			slots[k] = stats.Result{Degenerate: true}
		}

		return nil
	}
	if err != nil {
		return err
	}

	for k := 1; k <= maxLV; k++ {
		if k > model.Extracted() {
			slots[k-1] = stats.Result{Degenerate: true}

			continue
		}
		if err = model.SetNrLV(k); err != nil {
			return err
		}
		pred, err := model.Predict(hold.X())
		if err != nil {
			return err
		}
		res, err := stats.Evaluate(hold.Y(), pred)
		if err != nil {
			return err
		}
		slots[k-1] = res
	}

	return nil
}

// stratifiedFolds deals sample indices onto folds with one rotating
// cursor, walking categories in sorted order and each category's samples
// in row order. Proportions per category are preserved up to rounding.
func stratifiedFolds(labels []string, folds int) [][]int {
	byCategory := make(map[string][]int, 8)
	for i, lab := range labels {
		byCategory[lab] = append(byCategory[lab], i)
	}

	out := make([][]int, folds)
	cursor := 0
	for _, cat := range sortedKeys(byCategory) {
		for _, i := range byCategory[cat] {
			out[cursor] = append(out[cursor], i)
			cursor = (cursor + 1) % folds
		}
	}

	return out
}

// sortedKeys returns the map keys in ascending order.
func sortedKeys(m map[string][]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
