package mask

import "github.com/katalvlaran/fieldwire/geom"

// anchoredMask shifts an inner mask: Anchored(m,a).Inside(p) == m.Inside(p-a).
type anchoredMask struct {
	inner  Mask
	offset geom.Position
}

func (*anchoredMask) isMask() {}

// NewAnchored translates m by offset.
func NewAnchored(m Mask, offset geom.Position) (Mask, error) {
	if m.Dim() != offset.Dim() {
		return nil, ErrDimensionMismatch
	}
	return &anchoredMask{inner: m, offset: offset.Clone()}, nil
}

func (m *anchoredMask) Dim() int { return m.inner.Dim() }

func (m *anchoredMask) Inside(p geom.Position) (bool, error) {
	shifted, err := geom.Sub(p, m.offset)
	if err != nil {
		return false, err
	}
	return m.inner.Inside(shifted)
}

func (m *anchoredMask) InsideBox(b geom.Box) (bool, error) {
	shifted, err := b.Translate(geom.Scale(m.offset, -1))
	if err != nil {
		return false, err
	}
	return m.inner.InsideBox(shifted)
}

func (m *anchoredMask) OutsideBox(b geom.Box) (bool, error) {
	shifted, err := b.Translate(geom.Scale(m.offset, -1))
	if err != nil {
		return false, err
	}
	return m.inner.OutsideBox(shifted)
}

func (m *anchoredMask) BoundingBox() (geom.Box, error) {
	b, err := m.inner.BoundingBox()
	if err != nil {
		return geom.Box{}, err
	}
	return b.Translate(m.offset)
}
