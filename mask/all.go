package mask

import "github.com/katalvlaran/fieldwire/geom"

// allMask accepts every point unconditionally.
type allMask struct{ dim int }

func (*allMask) isMask() {}

// NewAll returns the unconditional-acceptance Mask for dimension dim (2 or 3).
func NewAll(dim int) Mask { return &allMask{dim: dim} }

func (m *allMask) Dim() int { return m.dim }

func (m *allMask) Inside(p geom.Position) (bool, error) {
	if err := checkDim(m.dim, p); err != nil {
		return false, err
	}
	return true, nil
}

func (m *allMask) InsideBox(b geom.Box) (bool, error) {
	if err := checkDim(m.dim, b.LowerLeft); err != nil {
		return false, err
	}
	return true, nil
}

func (m *allMask) OutsideBox(b geom.Box) (bool, error) {
	if err := checkDim(m.dim, b.LowerLeft); err != nil {
		return false, err
	}
	return false, nil
}

func (m *allMask) BoundingBox() (geom.Box, error) {
	return geom.Box{}, ErrUnboundedMask
}
