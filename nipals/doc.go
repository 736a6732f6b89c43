// Package nipals implements the PLS-DA modeling engine: the iterative
// NIPALS decomposition, the fitted Model value, and the projection of
// new samples onto the fitted latent space.
//
// 🚀 What is NIPALS?
//
//	Nonlinear Iterative Partial Least Squares extracts latent variables
//	one at a time: each iteration alternates between the predictor and
//	response matrices until the x-score stabilizes, then removes the
//	captured structure (deflation) and moves on to the next component.
//	The result links X and Y through paired score/loading/weight vectors
//	and a per-component inner-relation coefficient b.
//
// ✨ Key properties:
//   - Deterministic: identical inputs reproduce identical models, so a
//     model can be rebuilt from a saved raw table plus its recorded
//     preprocessing flags and latent-variable count.
//   - Honest about numerics: a component that hits the iteration cap is
//     kept with a recorded ConditionNoConvergence; a vanishing residual
//     stops extraction with a ConditionDegeneracy instead of emitting
//     NaNs.
//   - Immutable results: the Model owns its matrices; accessors return
//     copies; only the active latent-variable count (SetNrLV) may change
//     after the fit.
//
// ⚙️ Usage:
//
//	import "github.com/yuanmengzhixing/PLS-DA/nipals"
//
//	model, err := nipals.Fit(train, 2)
//	if err != nil { ... }
//	pred, err := model.Predict(test.X())
//
// The convergence tolerance, iteration cap and zero threshold are
// configurable through functional options (WithTolerance,
// WithMaxIterations, WithEpsilon); the defaults are exported constants.
//
// See example_test.go for a complete fit-and-predict walkthrough.
package nipals
