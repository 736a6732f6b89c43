// Package dataset provides the labeled data container consumed by the
// NIPALS engine: a predictor matrix X, a one-hot response matrix Y
// derived from per-sample category labels, and the preprocessing
// transforms (centering, scaling, autoscaling) that PLS-DA requires.
//
// 🚀 What does dataset do?
//
//	It turns an already-parsed table (header + numeric rows + labels)
//	into matrices ready for decomposition, and it remembers every
//	parameter it learned along the way:
//	  • column means recorded by Center
//	  • column standard deviations recorded by Normalize
//	  • which transforms were applied (Centered / Normalized flags)
//
// ✨ The central invariant:
//
//	A test or validation set must NEVER be scaled with its own
//	statistics. NewTestSet and TransformAs therefore take the training
//	container and replay its learned means and deviations, so both sets
//	live in the same coordinate frame. Recomputing statistics on held-out
//	data is the classic way to leak information into a model — this
//	package makes that mistake unrepresentable.
//
// ⚙️ Usage:
//
//	import "github.com/yuanmengzhixing/PLS-DA/dataset"
//
//	train, err := dataset.New(header, labels, rows)
//	if err != nil { ... }
//	if err = train.Autoscale(); err != nil { ... }
//
//	test, err := dataset.NewTestSet(train, testLabels, testRows)
//	// test.X() is now centered and scaled with train's parameters.
//
// Columns with (near) zero variance are left unscaled by Normalize and
// reported via ConstantXColumns/ConstantYColumns, so callers can decide
// whether to drop them before fitting.
//
// See example_test.go for complete walkthroughs.
package dataset
