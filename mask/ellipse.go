package mask

import "github.com/katalvlaran/fieldwire/geom"

// ellipseMask tests x²/a² + y²/b² (+ z²/c²) <= 1 in the ellipse's own frame.
type ellipseMask struct {
	center         geom.Position
	semiAxes       geom.Position
	azimuth, polar float64
}

func (*ellipseMask) isMask() {}

// NewEllipse constructs an Ellipse mask: center plus per-axis semi-axis
// lengths (all > 0), with rotation angles azimuth/polar in radians.
func NewEllipse(center, semiAxes geom.Position, azimuth, polar float64) (Mask, error) {
	if _, err := checkSameDimReturn(center, semiAxes); err != nil {
		return nil, err
	}
	for _, a := range semiAxes {
		if a <= 0 {
			return nil, ErrInvalidAxes
		}
	}
	if len(center) == 2 && polar != 0 {
		return nil, ErrDimensionMismatch
	}
	return &ellipseMask{center: center.Clone(), semiAxes: semiAxes.Clone(), azimuth: azimuth, polar: polar}, nil
}

func checkSameDimReturn(a, b geom.Position) (int, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	return len(a), nil
}

func (m *ellipseMask) Dim() int { return m.center.Dim() }

func (m *ellipseMask) rotated() bool { return m.azimuth != 0 || m.polar != 0 }

func (m *ellipseMask) Inside(p geom.Position) (bool, error) {
	if err := checkDim(m.Dim(), p); err != nil {
		return false, err
	}
	local := p
	if m.rotated() {
		local = rotateIntoEllipseFrame(p, m.center, m.azimuth, m.polar)
	}
	var sum float64
	for i := range local {
		v := (local[i] - m.center[i]) / m.semiAxes[i]
		sum += v * v
	}
	return sum <= 1, nil
}

func (m *ellipseMask) InsideBox(b geom.Box) (bool, error) {
	if err := checkDim(m.Dim(), b.LowerLeft); err != nil {
		return false, err
	}
	for _, c := range boxCorners(b) {
		ok, err := m.Inside(c)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (m *ellipseMask) OutsideBox(b geom.Box) (bool, error) {
	bbox, err := m.BoundingBox()
	if err != nil {
		return false, err
	}
	return bbox.Disjoint(b)
}

// BoundingBox: axis-aligned when unrotated; when tilted, this deliberately
// returns a conservative cube of side = max semi-axis * 2 rather than
// computing a tight rotated-ellipsoid hull.
func (m *ellipseMask) BoundingBox() (geom.Box, error) {
	if !m.rotated() {
		lo := make(geom.Position, m.Dim())
		hi := make(geom.Position, m.Dim())
		for i := range lo {
			lo[i] = m.center[i] - m.semiAxes[i]
			hi[i] = m.center[i] + m.semiAxes[i]
		}
		return geom.Box{LowerLeft: lo, UpperRight: hi}, nil
	}
	maxAxis := m.semiAxes[0]
	for _, a := range m.semiAxes[1:] {
		if a > maxAxis {
			maxAxis = a
		}
	}
	lo := make(geom.Position, m.Dim())
	hi := make(geom.Position, m.Dim())
	for i := range lo {
		lo[i] = m.center[i] - maxAxis
		hi[i] = m.center[i] + maxAxis
	}
	return geom.Box{LowerLeft: lo, UpperRight: hi}, nil
}
