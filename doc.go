// Package plsda is an in-memory toolkit for Partial Least Squares
// Discriminant Analysis: preprocessing, NIPALS decomposition, prediction,
// fit diagnostics and cross-validated model selection.
//
// 🚀 What is PLS-DA?
//
//	PLS-DA finds latent variables that jointly explain the variance of a
//	predictor matrix X and a category-indicator response matrix Y, then
//	scores new samples by projecting them onto that latent space.
//	It is a standard tool for:
//		• Chemometrics & spectroscopy (NIR, Raman, GC-MS fingerprints)
//		• Metabolomics / omics class separation
//		• Sensory and food-authentication panels
//		• Any wide, collinear dataset where ordinary regression breaks down
//
// ✨ Why choose this module?
//
//   - Small API – datasets in, value-typed models out, no hidden state
//   - Deterministic – identical inputs reproduce identical models
//   - Honest numerics – degeneracies are reported, never papered over
//   - Built on gonum – dense kernels from gonum.org/v1/gonum/mat
//
// Everything is organized under four subpackages:
//
//	dataset/  — labeled data container: one-hot response, centering,
//	            scaling, train-parameter transforms for test sets
//	nipals/   — the NIPALS engine: Fit, the immutable Model, Predict,
//	            explained variance and regression coefficients
//	stats/    — RSS, Hotelling's T², Q residuals, leverage
//	crossval/ — stratified K-fold cross-validation driver
//
// Quick sketch:
//
//	ds, _ := dataset.New(header, labels, rows)
//	_ = ds.Autoscale()
//	model, _ := nipals.Fit(ds, 2)
//	pred, _ := model.Predict(ds.X())
//	res, _ := stats.Evaluate(ds.Y(), pred)
//
// See each subpackage's doc.go and example_test.go for walkthroughs.
//
//	go get github.com/yuanmengzhixing/PLS-DA
package plsda
