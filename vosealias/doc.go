// Package vosealias implements the Vose alias method: an O(n) construction
// from a non-negative probability vector and an O(1) per-draw discrete
// sampler, used by the fixed-degree connection strategies to draw weighted
// candidates.
//
// Errors:
//
//	ErrEmptyDistribution - NewTable was given a zero-length vector.
//	ErrNegativeProbability - a vector entry was negative.
package vosealias
