package mask

import (
	"errors"

	"github.com/katalvlaran/fieldwire/geom"
)

// Sentinel errors for mask operations.
var (
	// ErrDimensionMismatch indicates masks or points of differing D were combined.
	ErrDimensionMismatch = errors.New("mask: dimension mismatch")

	// ErrGridRealCoordinates indicates a Grid mask was queried directly in
	// real coordinates instead of being translated to a Box mask first.
	ErrGridRealCoordinates = errors.New("mask: grid mask used with real coordinates, convert via check-mask first")

	// ErrUnboundedMask indicates BoundingBox() was requested on a mask with
	// no finite extent (the All mask).
	ErrUnboundedMask = errors.New("mask: unbounded mask has no bounding box")

	// ErrInvalidRadius indicates a non-positive Ball radius.
	ErrInvalidRadius = errors.New("mask: radius must be > 0")

	// ErrInvalidAxes indicates a non-positive Ellipse semi-axis.
	ErrInvalidAxes = errors.New("mask: ellipse semi-axes must be > 0")

	// ErrInvalidShape indicates a non-positive Grid shape component.
	ErrInvalidShape = errors.New("mask: grid shape components must be > 0")
)

// Mask is a spatial acceptance predicate over points and boxes in a layer's
// native coordinate system. The set of implementations is closed to this
// package (see doc.go); construct values via the NewXxx functions and
// compose them via Intersection/Union/Difference/Converse/Anchored.
type Mask interface {
	// Dim returns the mask's dimension (2 or 3).
	Dim() int

	// Inside reports whether p lies in the mask region.
	Inside(p geom.Position) (bool, error)

	// InsideBox reports whether the entire box b is contained in the mask.
	// May conservatively return false for a box that is actually fully
	// inside; must never return true incorrectly.
	InsideBox(b geom.Box) (bool, error)

	// OutsideBox reports whether b is disjoint from the mask. May
	// conservatively return false for a box that is actually fully
	// outside; must never return true incorrectly.
	OutsideBox(b geom.Box) (bool, error)

	// BoundingBox returns an axis-aligned box containing every point for
	// which Inside could return true. Returns ErrUnboundedMask for All.
	BoundingBox() (geom.Box, error)

	// isMask closes the Mask sum type to this package.
	isMask()
}

func dimOf(p geom.Position) int { return len(p) }

func checkDim(want int, p geom.Position) error {
	if dimOf(p) != want {
		return ErrDimensionMismatch
	}
	return nil
}
