// Package geom provides fixed-dimension position vectors, axis-aligned
// boxes, and the toroidal displacement/distance arithmetic that every
// higher-level package (mask, param, ntree, layer) builds on.
//
// Positions carry their dimension D (2 or 3) at runtime as len(Position);
// mixing dimensions across a single computation is a programmer error and
// is reported via ErrDimensionMismatch rather than silently truncated or
// padded.
//
// Errors:
//
//	ErrDimensionMismatch - two Positions/Boxes of different D were combined.
//	ErrInvalidDimension  - names a D outside {2,3}; no function in this
//	                       package checks D or returns it.
//	ErrDegenerateExtent  - NewBox got a lower-left corner above its
//	                       upper-right corner on some axis (a zero-width
//	                       axis is accepted).
package geom
