package nipals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/yuanmengzhixing/PLS-DA/dataset"
	"github.com/yuanmengzhixing/PLS-DA/nipals"
)

// TestPredict_ShapeGuard: a predictor matrix with the wrong column count
// must be rejected before any arithmetic happens.
func TestPredict_ShapeGuard(t *testing.T) {
	model, err := nipals.Fit(autoscaled(t), 2)
	require.NoError(t, err)

	_, err = model.Predict(mat.NewDense(2, 5, nil))
	assert.ErrorIs(t, err, nipals.ErrShapeMismatch, "5 columns against m=4")

	_, err = model.Predict(nil)
	assert.ErrorIs(t, err, nipals.ErrNilMatrix)
}

// TestPredict_TrainingReconstruction: predicting the training matrix with
// every extracted component must reproduce the modeled response
// structure, i.e. Y_preprocessed - E_y.
func TestPredict_TrainingReconstruction(t *testing.T) {
	ds := autoscaled(t)
	model, err := nipals.Fit(ds, 2)
	require.NoError(t, err)

	pred, err := model.Predict(ds.X())
	require.NoError(t, err)

	var want mat.Dense
	want.Sub(ds.Y(), model.EY())

	r, c := want.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.InDelta(t, want.At(i, j), pred.At(i, j), 1e-9, "y[%d][%d]", i, j)
		}
	}
}

// TestPredict_DoesNotMutateModel: projection re-deflates a working copy,
// never the model's own matrices.
func TestPredict_DoesNotMutateModel(t *testing.T) {
	ds := autoscaled(t)
	model, err := nipals.Fit(ds, 2)
	require.NoError(t, err)

	before := model.W()
	_, err = model.Predict(ds.X())
	require.NoError(t, err)

	assert.True(t, mat.Equal(before, model.W()), "W unchanged by Predict")
}

// TestPredict_SeparatesCategories: on well-separated training data the
// predicted indicator scores should favor each sample's own category.
func TestPredict_SeparatesCategories(t *testing.T) {
	ds := autoscaled(t)
	model, err := nipals.Fit(ds, 2)
	require.NoError(t, err)

	pred, err := model.Predict(ds.X())
	require.NoError(t, err)

	// Categories are ("A", "B"): column 0 scores A-ness, column 1 B-ness.
	for i := 0; i < 3; i++ {
		assert.Greater(t, pred.At(i, 0), pred.At(i, 1), "sample %d is an A", i)
	}
	for i := 3; i < 6; i++ {
		assert.Greater(t, pred.At(i, 1), pred.At(i, 0), "sample %d is a B", i)
	}
}

// TestCoefficients_MatchPredict: the collapsed coefficient matrix must
// reproduce the iterative projection in a single multiplication.
func TestCoefficients_MatchPredict(t *testing.T) {
	ds := autoscaled(t)
	model, err := nipals.Fit(ds, 2)
	require.NoError(t, err)

	coef, err := model.Coefficients()
	require.NoError(t, err)
	r, c := coef.Dims()
	assert.Equal(t, 4, r, "m rows")
	assert.Equal(t, 2, c, "p columns")

	pred, err := model.Predict(ds.X())
	require.NoError(t, err)
	var direct mat.Dense
	direct.Mul(ds.X(), coef)

	for i := 0; i < 6; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, pred.At(i, j), direct.At(i, j), 1e-9, "y[%d][%d]", i, j)
		}
	}
}

// TestPredict_RespectsNrLV: lowering the active count changes the
// projection, and a test-set prediction goes through the training frame.
func TestPredict_RespectsNrLV(t *testing.T) {
	train := autoscaled(t)
	model, err := nipals.Fit(train, 2)
	require.NoError(t, err)

	ts, err := dataset.NewTestSet(train, []string{"A"}, [][]float64{{1.1, 2.0, 3.1, 0.6}})
	require.NoError(t, err)

	full, err := model.Predict(ts.X())
	require.NoError(t, err)
	require.NoError(t, model.SetNrLV(1))
	reduced, err := model.Predict(ts.X())
	require.NoError(t, err)

	assert.False(t, mat.Equal(full, reduced), "active component count must matter")
	assert.Greater(t, full.At(0, 0), full.At(0, 1), "an A-like sample scores A")
}
