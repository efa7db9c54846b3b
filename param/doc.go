// Package param implements a closed set of position-dependent real-valued
// functions used for kernels, weights, and delays. Every Parameter exposes
// RawValue(displacement, rng) and Value(displacement, rng) = RawValue if
// RawValue >= cutoff, else 0; the cutoff-respecting Value is what
// arithmetic composition (Product, Quotient, Sum, Difference) consumes from
// its operands, while RawValue is what composition ignores the cutoff for.
//
// Like mask.Mask, Parameter is a closed interface: concrete variants
// implement the unexported isParameter method so no type outside this
// package satisfies it.
//
// Errors:
//
//	ErrDimensionMismatch - Gaussian2D saw a displacement with fewer than two
//	                       components, or an Anchored offset's D differs from
//	                       the displacement's.
//	ErrInvalidParameter  - a constructor's numeric constraint was violated
//	                       (σ<=0, τ<=0, min>=max, |ρ|>=1, κ<=0, θ<=0).
//	ErrRNGRequired       - a sampling variant (Uniform/Normal/Lognormal) was
//	                       evaluated with a nil Rng.
package param
