// Package crossval drives K-fold cross-validation of a PLS-DA model:
// the standard mechanism for choosing how many latent variables to
// retain without overfitting.
//
// 🚀 How it works:
//
//	The samples are partitioned into K category-balanced folds. For each
//	fold, the engine is refitted on the remaining samples and the
//	held-out fold is scored at every candidate latent-variable count,
//	producing one stats.Result per (fold, lv_count) cell. Aggregation
//	(e.g. mean RSS per count across folds) is left to the caller.
//
// ✨ Correctness guarantees:
//   - Stratified, deterministic partitioning — discriminant analysis is
//     category-sensitive, so folds respect per-category proportions.
//   - Preprocessing is learned inside each fold and replayed onto the
//     held-out part with the training parameters; the driver refuses
//     globally preprocessed inputs (ErrPreprocessed) for this reason.
//   - A degenerate fold flags its cells instead of aborting the run.
//
// ⚙️ Usage:
//
//	import "github.com/yuanmengzhixing/PLS-DA/crossval"
//
//	results, err := crossval.CrossValidate(raw, 3, 2)
//	// results[crossval.Key{Fold: 1, NrLV: 2}].RSS
//
// Folds are independent computations over disjoint data copies; pass
// WithWorkers(w) to fit up to w folds concurrently with no shared
// mutable state.
package crossval
