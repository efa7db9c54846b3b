package mask

import (
	"math"

	"github.com/katalvlaran/fieldwire/geom"
)

// rotateIntoBoxFrame maps a global-frame point into a Box mask's own
// (unrotated) frame: first undo the azimuth rotation about z with
// R_z(-azimuth), then, in 3D, undo the polar tilt about y with R_y(-polar).
// Rotation is about center.
func rotateIntoBoxFrame(p, center geom.Position, azimuth, polar float64) geom.Position {
	rel := make(geom.Position, len(p))
	for i := range rel {
		rel[i] = p[i] - center[i]
	}

	x, y := rel[0], rel[1]
	cz, sz := math.Cos(azimuth), math.Sin(azimuth)
	// R_z(-azimuth) * (x,y):
	rel[0] = x*cz + y*sz
	rel[1] = -x*sz + y*cz

	if len(rel) == 3 && polar != 0 {
		x0, z0 := rel[0], rel[2]
		cy, sy := math.Cos(polar), math.Sin(polar)
		// R_y(-polar) * (x,z):
		rel[0] = x0*cy - z0*sy
		rel[2] = x0*sy + z0*cy
	}

	out := make(geom.Position, len(p))
	for i := range out {
		out[i] = rel[i] + center[i]
	}
	return out
}

// rotateIntoEllipseFrame maps a global-frame point into an Ellipse mask's
// own frame. The azimuth step is written as R_z(azimuth) with the
// off-diagonal signs flipped, [[c, s], [-s, c]], which is the same matrix
// that Box applies as R_z(-azimuth) above; the polar step is the same
// R_y(-polar) that Box uses.
func rotateIntoEllipseFrame(p, center geom.Position, azimuth, polar float64) geom.Position {
	rel := make(geom.Position, len(p))
	for i := range rel {
		rel[i] = p[i] - center[i]
	}

	x, y := rel[0], rel[1]
	c, s := math.Cos(azimuth), math.Sin(azimuth)
	// R_z(azimuth) with the off-diagonal sign flipped, i.e. [[c, s], [-s, c]]:
	rel[0] = x*c + y*s
	rel[1] = -x*s + y*c

	if len(rel) == 3 && polar != 0 {
		x0, z0 := rel[0], rel[2]
		cy, sy := math.Cos(polar), math.Sin(polar)
		rel[0] = x0*cy - z0*sy
		rel[2] = x0*sy + z0*cy
	}

	out := make(geom.Position, len(p))
	for i := range out {
		out[i] = rel[i] + center[i]
	}
	return out
}

// rotatedBoxHull rotates the 2^D corners of the axis-aligned box [center-half,
// center+half] by the forward rotation (azimuth, polar) and returns the
// axis-aligned hull — used by Box.BoundingBox when rotation is non-zero.
func rotatedBoxHull(center, half geom.Position, azimuth, polar float64) geom.Box {
	d := len(center)
	n := 1 << uint(d)
	var lo, hi geom.Position
	for i := 0; i < n; i++ {
		local := make(geom.Position, d)
		for axis := 0; axis < d; axis++ {
			if i&(1<<uint(axis)) != 0 {
				local[axis] = center[axis] + half[axis]
			} else {
				local[axis] = center[axis] - half[axis]
			}
		}
		// Forward-rotate the corner: rotate by +azimuth/+polar, which is
		// the inverse of rotateIntoBoxFrame's -azimuth/-polar undo, so the
		// tilt about y comes first and the turn about z second.
		tilted := rotateIntoBoxFrame(local, center, 0, -polar)
		global := rotateIntoBoxFrame(tilted, center, -azimuth, 0)
		if lo == nil {
			lo, hi = global.Clone(), global.Clone()
			continue
		}
		for axis := 0; axis < d; axis++ {
			if global[axis] < lo[axis] {
				lo[axis] = global[axis]
			}
			if global[axis] > hi[axis] {
				hi[axis] = global[axis]
			}
		}
	}
	return geom.Box{LowerLeft: lo, UpperRight: hi}
}
