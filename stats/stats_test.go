package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/yuanmengzhixing/PLS-DA/dataset"
	"github.com/yuanmengzhixing/PLS-DA/nipals"
	"github.com/yuanmengzhixing/PLS-DA/stats"
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

func fittedModel(t *testing.T, k int) (*nipals.Model, *dataset.Dataset) {
	t.Helper()
	ds, err := dataset.New(testHeader, testLabels, testRows)
	require.NoError(t, err)
	require.NoError(t, ds.Autoscale())
	model, err := nipals.Fit(ds, k)
	require.NoError(t, err)

	return model, ds
}

// TestRSS_Values checks the scalar against a hand-computed sum.
func TestRSS_Values(t *testing.T) {
	yTrue := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	yPred := mat.NewDense(2, 2, []float64{0.9, 0.1, 0.2, 0.8})

	rss, err := stats.RSS(yTrue, yPred)
	require.NoError(t, err)
	assert.InDelta(t, 0.01+0.01+0.04+0.04, rss, 1e-12)

	same, err := stats.RSS(yTrue, yTrue)
	require.NoError(t, err)
	assert.Equal(t, 0.0, same, "identical matrices have zero residual")
}

// TestRSS_Guards covers nil and shape sentinels.
func TestRSS_Guards(t *testing.T) {
	y := mat.NewDense(2, 2, nil)

	_, err := stats.RSS(nil, y)
	assert.ErrorIs(t, err, stats.ErrNilMatrix)

	_, err = stats.RSS(y, mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, stats.ErrShapeMismatch)

	_, err = stats.Evaluate(y, mat.NewDense(3, 2, nil))
	assert.ErrorIs(t, err, stats.ErrShapeMismatch, "Evaluate shares the RSS guards")
}

// TestEvaluate_Result produces a fresh, finite, non-degenerate result.
func TestEvaluate_Result(t *testing.T) {
	model, ds := fittedModel(t, 2)
	pred, err := model.Predict(ds.X())
	require.NoError(t, err)

	res, err := stats.Evaluate(ds.Y(), pred)
	require.NoError(t, err)
	assert.False(t, res.Degenerate)
	assert.False(t, math.IsNaN(res.RSS))
	assert.GreaterOrEqual(t, res.RSS, 0.0)
}

// TestTSquare_Positive: one finite non-negative distance per training
// sample, responsive to the active latent-variable count.
func TestTSquare_Positive(t *testing.T) {
	model, _ := fittedModel(t, 2)

	t2, err := stats.TSquare(model)
	require.NoError(t, err)
	require.Len(t, t2, 6)
	for i, v := range t2 {
		assert.False(t, math.IsNaN(v), "sample %d", i)
		assert.GreaterOrEqual(t, v, 0.0, "sample %d", i)
	}

	require.NoError(t, model.SetNrLV(1))
	t2one, err := stats.TSquare(model)
	require.NoError(t, err)
	assert.NotEqual(t, t2, t2one, "restricting the latent space changes T²")

	_, err = stats.TSquare(nil)
	assert.ErrorIs(t, err, stats.ErrNilModel)
}

// TestQResidualsX_MatchesResiduals: with every extracted component
// active, the Q residual is exactly the squared row sum of E_x.
func TestQResidualsX_MatchesResiduals(t *testing.T) {
	model, ds := fittedModel(t, 2)

	qx, err := stats.QResidualsX(model, ds.X())
	require.NoError(t, err)
	require.Len(t, qx, 6)

	ex := model.EX()
	for i := 0; i < 6; i++ {
		want := 0.0
		for j := 0; j < 4; j++ {
			want += ex.At(i, j) * ex.At(i, j)
		}
		assert.InDelta(t, want, qx[i], 1e-9, "sample %d", i)
	}

	_, err = stats.QResidualsX(model, mat.NewDense(6, 5, nil))
	assert.ErrorIs(t, err, stats.ErrShapeMismatch)
	_, err = stats.QResidualsX(model, nil)
	assert.ErrorIs(t, err, stats.ErrNilMatrix)
	_, err = stats.QResidualsX(nil, ds.X())
	assert.ErrorIs(t, err, stats.ErrNilModel)
}

// TestLeverage_Range: leverages are positive and sum to the active
// latent-variable count (trace of the projection hat matrix).
func TestLeverage_Range(t *testing.T) {
	model, _ := fittedModel(t, 2)

	lev, err := stats.Leverage(model)
	require.NoError(t, err)
	require.Len(t, lev, 6)

	total := 0.0
	for i, v := range lev {
		assert.Greater(t, v, 0.0, "sample %d", i)
		total += v
	}
	assert.InDelta(t, 2, total, 1e-9, "trace equals nr_lv")

	_, err = stats.Leverage(nil)
	assert.ErrorIs(t, err, stats.ErrNilModel)
}
