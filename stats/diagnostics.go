// Package stats: per-sample diagnostics of a fitted model.
//
// TSquare and Leverage are multivariate distances in latent-score space;
// QResidualsX measures what the latent space fails to explain. Together
// they separate "unusual but modeled" samples (high T², low Q) from
// "outside the model" samples (high Q).

package stats

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/yuanmengzhixing/PLS-DA/nipals"
)

// TSquare returns Hotelling's T² per training sample, computed from the
// y-score matrix U restricted to the active latent variables and its
// inverse sample covariance.
//
// Errors: ErrNilModel; ErrSingularCovariance when fewer informative
// dimensions than retained latent variables make the covariance
// non-invertible — the degeneracy is reported, never emitted as NaN.
func TSquare(mod *nipals.Model) ([]float64, error) {
	if mod == nil {
		return nil, fmt.Errorf("TSquare: %w", ErrNilModel)
	}
	n, k := mod.N(), mod.NrLV()
	scores := mod.U().Slice(0, n, 0, k)

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, scores, nil)
	var inv mat.Dense
	if err := inv.Inverse(&cov); err != nil {
		return nil, fmt.Errorf("TSquare: %w", ErrSingularCovariance)
	}

	return quadraticForm(scores, &inv), nil
}

// Leverage returns the leverage of each training sample: the quadratic
// form tᵢᵀ(TᵀT)⁻¹tᵢ over the active x-scores. High-leverage samples
// dominate the orientation of the latent space.
//
// Errors: ErrNilModel, ErrSingularCovariance.
func Leverage(mod *nipals.Model) ([]float64, error) {
	if mod == nil {
		return nil, fmt.Errorf("Leverage: %w", ErrNilModel)
	}
	n, k := mod.N(), mod.NrLV()
	scores := mod.T().Slice(0, n, 0, k)

	var gram mat.Dense
	gram.Mul(scores.T(), scores)
	var inv mat.Dense
	if err := inv.Inverse(&gram); err != nil {
		return nil, fmt.Errorf("Leverage: %w", ErrSingularCovariance)
	}

	return quadraticForm(scores, &inv), nil
}

// QResidualsX returns the per-sample sum of squared x-residuals after
// reconstructing x0 from the active components (x0 − T·Pᵀ, row-wise
// squared sums). x0 is the preprocessed training predictor matrix the
// model was fitted on.
//
// Errors: ErrNilModel, ErrNilMatrix, ErrShapeMismatch when x0's
// dimensions differ from the training dimensions.
func QResidualsX(mod *nipals.Model, x0 mat.Matrix) ([]float64, error) {
	if mod == nil {
		return nil, fmt.Errorf("QResidualsX: %w", ErrNilModel)
	}
	if x0 == nil {
		return nil, fmt.Errorf("QResidualsX: %w", ErrNilMatrix)
	}
	r, c := x0.Dims()
	n, m, k := mod.N(), mod.M(), mod.NrLV()
	if r != n || c != m {
		return nil, fmt.Errorf("QResidualsX: %dx%d vs model %dx%d: %w", r, c, n, m, ErrShapeMismatch)
	}

	scores := mod.T().Slice(0, n, 0, k)
	loads := mod.P().Slice(0, m, 0, k)
	var recon mat.Dense
	recon.Mul(scores, loads.T())
	var resid mat.Dense
	resid.Sub(x0, &recon)

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			v := resid.At(i, j)
			out[i] += v * v
		}
	}

	return out, nil
}

// quadraticForm evaluates rowᵢᵀ·inv·rowᵢ for every row of scores.
func quadraticForm(scores mat.Matrix, inv *mat.Dense) []float64 {
	n, k := scores.Dims()
	out := make([]float64, n)
	row := mat.NewVecDense(k, nil)
	var tmp mat.VecDense
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			row.SetVec(j, scores.At(i, j))
		}
		tmp.MulVec(inv, row)
		out[i] = mat.Dot(row, &tmp)
	}

	return out
}
