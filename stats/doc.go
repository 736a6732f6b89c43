// Package stats computes fit-quality diagnostics for a fitted PLS-DA
// model: residual sum of squares between true and predicted responses,
// Hotelling's T² distances, Q residuals and leverage.
//
// The package exposes raw per-sample vectors and scalar summaries only;
// confidence thresholds over their distributions are a presentational
// concern left to downstream consumers.
//
// All diagnostics respect the model's active latent-variable count
// (Model.NrLV): lowering it via SetNrLV immediately changes what
// TSquare, QResidualsX and Leverage measure.
//
// ⚙️ Usage:
//
//	import "github.com/yuanmengzhixing/PLS-DA/stats"
//
//	res, err := stats.Evaluate(test.Y(), pred) // res.RSS
//	t2, err := stats.TSquare(model)            // per training sample
//	qx, err := stats.QResidualsX(model, train.X())
//
// Degenerate inputs (near-singular score covariance) surface as sentinel
// errors, never as silent NaNs.
package stats
