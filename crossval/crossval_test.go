package crossval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuanmengzhixing/PLS-DA/crossval"
	"github.com/yuanmengzhixing/PLS-DA/dataset"
)

var (
	testHeader = []string{"sample", "v1", "v2", "v3", "v4"}
	testLabels = []string{"A", "A", "A", "B", "B", "B"}
	testRows   = [][]float64{
		{1.0, 2.1, 3.2, 0.5},
		{1.2, 1.9, 3.0, 0.7},
		{0.8, 2.3, 3.1, 0.4},
		{3.1, 0.9, 1.0, 2.5},
		{2.9, 1.1, 1.2, 2.8},
		{3.3, 0.8, 0.9, 2.4},
	}
)

func rawDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(testHeader, testLabels, testRows)
	require.NoError(t, err)

	return ds
}

// TestCrossValidate_Scenario: 3 folds x 2 latent-variable counts over the
// 6x4 two-category table must yield exactly 6 finite, non-negative cells.
func TestCrossValidate_Scenario(t *testing.T) {
	results, err := crossval.CrossValidate(rawDataset(t), 3, 2)
	require.NoError(t, err)
	require.Len(t, results, 6, "3 folds x 2 lv counts")

	for f := 1; f <= 3; f++ {
		for k := 1; k <= 2; k++ {
			res, ok := results[crossval.Key{Fold: f, NrLV: k}]
			require.True(t, ok, "cell (%d,%d) present", f, k)
			assert.False(t, res.Degenerate, "cell (%d,%d)", f, k)
			assert.False(t, math.IsNaN(res.RSS), "cell (%d,%d)", f, k)
			assert.GreaterOrEqual(t, res.RSS, 0.0, "cell (%d,%d)", f, k)
		}
	}
}

// TestCrossValidate_Guards exercises the configuration sentinels.
func TestCrossValidate_Guards(t *testing.T) {
	_, err := crossval.CrossValidate(nil, 3, 2)
	assert.ErrorIs(t, err, crossval.ErrNilDataset)

	pre := rawDataset(t)
	require.NoError(t, pre.Autoscale())
	_, err = crossval.CrossValidate(pre, 3, 2)
	assert.ErrorIs(t, err, crossval.ErrPreprocessed, "globally scaled input would leak into validation folds")

	_, err = crossval.CrossValidate(rawDataset(t), 1, 2)
	assert.ErrorIs(t, err, crossval.ErrBadFoldCount, "folds < 2")
	_, err = crossval.CrossValidate(rawDataset(t), 7, 2)
	assert.ErrorIs(t, err, crossval.ErrBadFoldCount, "folds > n")

	_, err = crossval.CrossValidate(rawDataset(t), 3, 0)
	assert.ErrorIs(t, err, crossval.ErrBadLVCount)
	_, err = crossval.CrossValidate(rawDataset(t), 3, 5)
	assert.ErrorIs(t, err, crossval.ErrBadLVCount, "maxLV > m")
	_, err = crossval.CrossValidate(rawDataset(t), 2, 3)
	assert.ErrorIs(t, err, crossval.ErrBadLVCount, "maxLV exceeds a training part")
}

// TestCrossValidate_ParallelMatchesSequential: folds are independent, so
// worker count must not change any cell.
func TestCrossValidate_ParallelMatchesSequential(t *testing.T) {
	seq, err := crossval.CrossValidate(rawDataset(t), 3, 2)
	require.NoError(t, err)
	par, err := crossval.CrossValidate(rawDataset(t), 3, 2, crossval.WithWorkers(3))
	require.NoError(t, err)

	assert.Equal(t, seq, par)
}

// TestCrossValidate_CenterMode runs the lighter preprocessing path.
func TestCrossValidate_CenterMode(t *testing.T) {
	results, err := crossval.CrossValidate(rawDataset(t), 3, 2, crossval.WithMode(crossval.ModeCenter))
	require.NoError(t, err)
	require.Len(t, results, 6)
	for key, res := range results {
		assert.False(t, res.Degenerate, "cell %+v", key)
	}
}

// TestOptions_Panics: nonsensical option values are programmer errors.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { crossval.WithWorkers(0) })
	assert.Panics(t, func() { crossval.WithMode(crossval.Mode(7)) })
}
