package geom

import "math"

// ComputeDisplacement returns d = to - from, folding each periodic axis into
// the half-open interval (-extent[i]/2, +extent[i]/2] so that the result is
// always the minimum-image vector on the corresponding torus:
//
//	d[i] <- d[i] - extent[i]*round(d[i]/extent[i])
//
// periodic and extent must have the same dimension as from/to; a nil
// periodic is treated as "no periodic axes".
//
// Complexity: O(D).
func ComputeDisplacement(from, to, extent Position, periodic []bool) (Position, error) {
	d, err := Sub(to, from)
	if err != nil {
		return nil, err
	}
	if extent != nil {
		if _, err := sameDim(d, extent); err != nil {
			return nil, err
		}
	}
	for i := range d {
		if periodic != nil && i < len(periodic) && periodic[i] {
			e := extent[i]
			if e > 0 {
				d[i] = d[i] - e*math.Round(d[i]/e)
			}
		}
	}
	return d, nil
}

// ComputeDistance returns the Euclidean length of the displacement from "from"
// to "to", honoring periodic wrap exactly as ComputeDisplacement does.
//
// Complexity: O(D).
func ComputeDistance(from, to, extent Position, periodic []bool) (float64, error) {
	d, err := ComputeDisplacement(from, to, extent, periodic)
	if err != nil {
		return 0, err
	}
	return d.Length(), nil
}
