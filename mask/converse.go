package mask

import "github.com/katalvlaran/fieldwire/geom"

// converseMask mirrors an inner mask through the origin: Converse(m).Inside(p)
// == m.Inside(-p). Used to express a target-frame mask in the source
// layer's frame for source-driven connect.
type converseMask struct{ inner Mask }

func (*converseMask) isMask() {}

// NewConverse mirrors m through the origin.
func NewConverse(m Mask) Mask {
	return &converseMask{inner: m}
}

func negate(p geom.Position) geom.Position {
	out := make(geom.Position, len(p))
	for i, v := range p {
		out[i] = -v
	}
	return out
}

func negateBox(b geom.Box) geom.Box {
	return geom.Box{LowerLeft: negate(b.UpperRight), UpperRight: negate(b.LowerLeft)}
}

func (m *converseMask) Dim() int { return m.inner.Dim() }

func (m *converseMask) Inside(p geom.Position) (bool, error) {
	if err := checkDim(m.Dim(), p); err != nil {
		return false, err
	}
	return m.inner.Inside(negate(p))
}

func (m *converseMask) InsideBox(b geom.Box) (bool, error) {
	return m.inner.InsideBox(negateBox(b))
}

func (m *converseMask) OutsideBox(b geom.Box) (bool, error) {
	return m.inner.OutsideBox(negateBox(b))
}

func (m *converseMask) BoundingBox() (geom.Box, error) {
	b, err := m.inner.BoundingBox()
	if err != nil {
		return geom.Box{}, err
	}
	return negateBox(b), nil
}
