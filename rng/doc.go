// Package rng defines the randomness capability the core consumes:
// Uniform, UniformInt, Normal, Binomial, plus a Provider that hands out
// per-thread and global streams. The core never constructs randomness of
// its own; every package that needs entropy takes an Rng value through its
// API.
//
// NewDefaultProvider returns a math/rand-backed implementation supplied for tests,
// examples, and callers that have no RNG of their own to plug in.
package rng
