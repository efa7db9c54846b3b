package mask

import "github.com/katalvlaran/fieldwire/geom"

// ballMask is |p - center| <= radius.
type ballMask struct {
	center geom.Position
	radius float64
}

func (*ballMask) isMask() {}

// NewBall constructs a Ball mask: all points within radius of center.
// radius must be > 0.
func NewBall(center geom.Position, radius float64) (Mask, error) {
	if radius <= 0 {
		return nil, ErrInvalidRadius
	}
	return &ballMask{center: center.Clone(), radius: radius}, nil
}

func (m *ballMask) Dim() int { return m.center.Dim() }

func (m *ballMask) Inside(p geom.Position) (bool, error) {
	if err := checkDim(m.Dim(), p); err != nil {
		return false, err
	}
	d, err := geom.Sub(p, m.center)
	if err != nil {
		return false, err
	}
	return d.Length() <= m.radius, nil
}

// InsideBox tests whether every corner of b lies within the ball; the ball
// is convex, so that holds exactly when every point of b is inside.
func (m *ballMask) InsideBox(b geom.Box) (bool, error) {
	if err := checkDim(m.Dim(), b.LowerLeft); err != nil {
		return false, err
	}
	for _, corner := range boxCorners(b) {
		ok, err := m.Inside(corner)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// OutsideBox conservatively tests the mask's bounding box against b: if the
// ball's bbox is disjoint from b, the ball itself certainly is.
func (m *ballMask) OutsideBox(b geom.Box) (bool, error) {
	bbox, err := m.BoundingBox()
	if err != nil {
		return false, err
	}
	return bbox.Disjoint(b)
}

func (m *ballMask) BoundingBox() (geom.Box, error) {
	lo := make(geom.Position, m.Dim())
	hi := make(geom.Position, m.Dim())
	for i := range lo {
		lo[i] = m.center[i] - m.radius
		hi[i] = m.center[i] + m.radius
	}
	return geom.Box{LowerLeft: lo, UpperRight: hi}, nil
}

// boxCorners returns all 2^D corners of b.
func boxCorners(b geom.Box) []geom.Position {
	d := b.Dim()
	n := 1 << uint(d)
	out := make([]geom.Position, n)
	for i := 0; i < n; i++ {
		c := make(geom.Position, d)
		for axis := 0; axis < d; axis++ {
			if i&(1<<uint(axis)) != 0 {
				c[axis] = b.UpperRight[axis]
			} else {
				c[axis] = b.LowerLeft[axis]
			}
		}
		out[i] = c
	}
	return out
}
