// Package accumulate puts several summation strategies behind one
// Accumulator interface: an exact BigFloat accumulator that serves as the
// oracle, a plain float64 sum, a Neumaier-compensated sum and a big.Rat
// reference. It also provides lazy partial-result sequences and a
// parallel exact reduction.
//
// An Accumulator is not safe for concurrent use. Callers that accumulate
// from several goroutines use one Accumulator each and combine the
// exact values afterwards, as ParallelSum does.
package accumulate
