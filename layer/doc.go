// Package layer implements Layer: a population of nodes, their positions,
// and the shared extent/periodicity they sit in. A Layer is
// immutable after construction except for its position cache, which
// memoises one of {Ntree view, flat vector view} at a time and converts
// between them in place rather than rebuilding from scratch.
//
// Two population families are supported: Grid (positions derived from a
// row/column[/layer] shape, following the "matrix convention" of inverting
// the second axis) and Free (positions supplied explicitly per node).
//
// Errors:
//
//	ErrDegenerateExtent   - an extent component was <= 0.
//	ErrDimensionMismatch  - LowerLeft/Extent/Periodic/positions disagree on D.
//	ErrShapeMismatch      - product(shape)*depth != len(gids) (Grid).
//	ErrPositionCount      - len(positions) != len(gids) (Free).
//	ErrPositionOutOfBounds - a Free position lies outside [lowerLeft, lowerLeft+extent].
//	ErrPositionOnPerimeter - a Free position lies exactly on a periodic axis's boundary.
package layer
