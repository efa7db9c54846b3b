package mask

import "github.com/katalvlaran/fieldwire/geom"

type intersectionMask struct{ a, b Mask }
type unionMask struct{ a, b Mask }
type differenceMask struct{ a, b Mask }

func (*intersectionMask) isMask() {}
func (*unionMask) isMask()        {}
func (*differenceMask) isMask()   {}

func checkCompatible(a, b Mask) error {
	if a.Dim() != b.Dim() {
		return ErrDimensionMismatch
	}
	return nil
}

// NewIntersection returns a Mask accepting points inside both a and b.
func NewIntersection(a, b Mask) (Mask, error) {
	if err := checkCompatible(a, b); err != nil {
		return nil, err
	}
	return &intersectionMask{a: a, b: b}, nil
}

// NewUnion returns a Mask accepting points inside either a or b.
func NewUnion(a, b Mask) (Mask, error) {
	if err := checkCompatible(a, b); err != nil {
		return nil, err
	}
	return &unionMask{a: a, b: b}, nil
}

// NewDifference returns a Mask accepting points inside a but not inside b.
func NewDifference(a, b Mask) (Mask, error) {
	if err := checkCompatible(a, b); err != nil {
		return nil, err
	}
	return &differenceMask{a: a, b: b}, nil
}

func (m *intersectionMask) Dim() int { return m.a.Dim() }
func (m *unionMask) Dim() int        { return m.a.Dim() }
func (m *differenceMask) Dim() int   { return m.a.Dim() }

func (m *intersectionMask) Inside(p geom.Position) (bool, error) {
	ia, err := m.a.Inside(p)
	if err != nil || !ia {
		return false, err
	}
	return m.b.Inside(p)
}

func (m *unionMask) Inside(p geom.Position) (bool, error) {
	ia, err := m.a.Inside(p)
	if err != nil {
		return false, err
	}
	if ia {
		return true, nil
	}
	return m.b.Inside(p)
}

func (m *differenceMask) Inside(p geom.Position) (bool, error) {
	ia, err := m.a.Inside(p)
	if err != nil || !ia {
		return false, err
	}
	ib, err := m.b.Inside(p)
	if err != nil {
		return false, err
	}
	return !ib, nil
}

func (m *intersectionMask) InsideBox(b geom.Box) (bool, error) {
	ia, err := m.a.InsideBox(b)
	if err != nil || !ia {
		return false, err
	}
	return m.b.InsideBox(b)
}

func (m *unionMask) InsideBox(b geom.Box) (bool, error) {
	// Conservative: a box fully inside a union is hard to detect in
	// general without per-point testing, so only claim it when one
	// operand alone already contains the whole box.
	ia, err := m.a.InsideBox(b)
	if err != nil {
		return false, err
	}
	if ia {
		return true, nil
	}
	return m.b.InsideBox(b)
}

func (m *differenceMask) InsideBox(b geom.Box) (bool, error) {
	ia, err := m.a.InsideBox(b)
	if err != nil || !ia {
		return false, err
	}
	return m.b.OutsideBox(b)
}

func (m *intersectionMask) OutsideBox(b geom.Box) (bool, error) {
	oa, err := m.a.OutsideBox(b)
	if err != nil {
		return false, err
	}
	if oa {
		return true, nil
	}
	return m.b.OutsideBox(b)
}

func (m *unionMask) OutsideBox(b geom.Box) (bool, error) {
	oa, err := m.a.OutsideBox(b)
	if err != nil || !oa {
		return false, err
	}
	return m.b.OutsideBox(b)
}

// OutsideBox of Difference(a,b) is a.outside(b_box) or b.inside(b_box).
// This is a conservative, not exact, test.
func (m *differenceMask) OutsideBox(b geom.Box) (bool, error) {
	oa, err := m.a.OutsideBox(b)
	if err != nil {
		return false, err
	}
	if oa {
		return true, nil
	}
	return m.b.InsideBox(b)
}

func (m *intersectionMask) BoundingBox() (geom.Box, error) {
	ba, err := m.a.BoundingBox()
	if err != nil {
		return geom.Box{}, err
	}
	bb, err := m.b.BoundingBox()
	if err != nil {
		return geom.Box{}, err
	}
	inter, ok, err := geom.Intersect(ba, bb)
	if err != nil {
		return geom.Box{}, err
	}
	if !ok {
		// Empty region: collapse to a degenerate point box rather than
		// returning a zero-value Box with nil positions.
		return geom.Box{LowerLeft: ba.LowerLeft.Clone(), UpperRight: ba.LowerLeft.Clone()}, nil
	}
	return inter, nil
}

func (m *unionMask) BoundingBox() (geom.Box, error) {
	ba, err := m.a.BoundingBox()
	if err != nil {
		return geom.Box{}, err
	}
	bb, err := m.b.BoundingBox()
	if err != nil {
		return geom.Box{}, err
	}
	return geom.Union(ba, bb)
}

func (m *differenceMask) BoundingBox() (geom.Box, error) {
	return m.a.BoundingBox()
}
