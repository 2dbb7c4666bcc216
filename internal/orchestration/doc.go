// Package orchestration runs several accumulators concurrently over one
// dataset and analyzes how their results agree with the exact reference.
// It decouples the runs from presentation through the ProgressReporter
// and ResultPresenter interfaces.
package orchestration
