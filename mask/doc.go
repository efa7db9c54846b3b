// Package mask implements a small closed set of spatial acceptance
// predicates (Ball, Box, Ellipse, Grid) plus Boolean composition
// (Intersection, Union, Difference), Converse (mirror through the origin),
// Anchored (translate), and All (unconditional acceptance).
//
// Every Mask answers four queries: Inside(point), InsideBox(box) (box fully
// contained), OutsideBox(box) (box fully disjoint — may be conservative: it
// is always safe to return false, never safe to return true incorrectly),
// and BoundingBox() (a box containing every point that could test inside).
//
// Mask is a closed Go interface: every concrete variant implements the
// unexported isMask marker method, so no type outside this package can implement
// Mask, and Intersection/Union/Difference/Converse/Anchored simply hold
// other Mask values by (shared, immutable) reference — no clone method is
// needed anywhere.
//
// Errors:
//
//	ErrDimensionMismatch - masks or points of differing D were combined.
//	ErrGridRealCoordinates - Inside()/BoundingBox() called on a Grid mask
//	                         directly; Grid is only meaningful once
//	                         translated into a Box mask against a grid
//	                         layer (see maskedlayer.CheckMask).
//	ErrUnboundedMask - BoundingBox() requested on the unconditional All mask.
package mask
