package mask

import "github.com/katalvlaran/fieldwire/geom"

// boxMask is an (optionally rotated) axis-aligned box region.
type boxMask struct {
	lowerLeft, upperRight geom.Position
	azimuth, polar        float64
}

func (*boxMask) isMask() {}

// NewBoxMask constructs a Box mask. azimuth/polar are rotation angles in
// radians (polar is only meaningful in 3D and must be 0 in 2D).
func NewBoxMask(lowerLeft, upperRight geom.Position, azimuth, polar float64) (Mask, error) {
	b, err := geom.NewBox(lowerLeft, upperRight)
	if err != nil {
		return nil, err
	}
	if b.Dim() == 2 && polar != 0 {
		return nil, ErrDimensionMismatch
	}
	return &boxMask{lowerLeft: b.LowerLeft, upperRight: b.UpperRight, azimuth: azimuth, polar: polar}, nil
}

func (m *boxMask) Dim() int { return len(m.lowerLeft) }

func (m *boxMask) rotated() bool { return m.azimuth != 0 || m.polar != 0 }

// epsilon returns 1% of the box's smallest side length, used to tolerate
// rounding error on rotated-box boundaries.
func (m *boxMask) epsilon() float64 {
	min := m.upperRight[0] - m.lowerLeft[0]
	for i := 1; i < len(m.lowerLeft); i++ {
		if side := m.upperRight[i] - m.lowerLeft[i]; side < min {
			min = side
		}
	}
	return 0.01 * min
}

func (m *boxMask) Inside(p geom.Position) (bool, error) {
	if err := checkDim(m.Dim(), p); err != nil {
		return false, err
	}
	if !m.rotated() {
		lo, err := geom.LE(m.lowerLeft, p)
		if err != nil {
			return false, err
		}
		hi, err := geom.LE(p, m.upperRight)
		if err != nil {
			return false, err
		}
		return lo && hi, nil
	}

	center := geom.Box{LowerLeft: m.lowerLeft, UpperRight: m.upperRight}.Center()
	local := rotateIntoBoxFrame(p, center, m.azimuth, m.polar)
	eps := m.epsilon()
	for i := range local {
		if local[i] < m.lowerLeft[i]-eps || local[i] > m.upperRight[i]+eps {
			return false, nil
		}
	}
	return true, nil
}

func (m *boxMask) InsideBox(b geom.Box) (bool, error) {
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

func (m *boxMask) OutsideBox(b geom.Box) (bool, error) {
	bbox, err := m.BoundingBox()
	if err != nil {
		return false, err
	}
	return bbox.Disjoint(b)
}

func (m *boxMask) BoundingBox() (geom.Box, error) {
	if !m.rotated() {
		return geom.Box{LowerLeft: m.lowerLeft, UpperRight: m.upperRight}, nil
	}
	own := geom.Box{LowerLeft: m.lowerLeft, UpperRight: m.upperRight}
	center := own.Center()
	half := make(geom.Position, len(center))
	for i := range half {
		half[i] = (m.upperRight[i] - m.lowerLeft[i]) / 2
	}
	return rotatedBoxHull(center, half, m.azimuth, m.polar), nil
}
