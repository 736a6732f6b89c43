package crossval

// StratifiedFolds exposes the partitioner to the package tests.
var StratifiedFolds = stratifiedFolds
