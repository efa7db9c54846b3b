package geom

// NewBox constructs a Box, validating LowerLeft <= UpperRight componentwise.
//
// Complexity: O(D).
func NewBox(lowerLeft, upperRight Position) (Box, error) {
	ok, err := LE(lowerLeft, upperRight)
	if err != nil {
		return Box{}, err
	}
	if !ok {
		return Box{}, ErrDegenerateExtent
	}
	return Box{LowerLeft: lowerLeft.Clone(), UpperRight: upperRight.Clone()}, nil
}

// Dim returns the dimension of b.
func (b Box) Dim() int { return len(b.LowerLeft) }

// Extent returns UpperRight - LowerLeft, the box's side lengths.
//
// Complexity: O(D).
func (b Box) Extent() Position {
	out := make(Position, b.Dim())
	for i := range out {
		out[i] = b.UpperRight[i] - b.LowerLeft[i]
	}
	return out
}

// Center returns the box's geometric center.
//
// Complexity: O(D).
func (b Box) Center() Position {
	out := make(Position, b.Dim())
	for i := range out {
		out[i] = (b.LowerLeft[i] + b.UpperRight[i]) / 2
	}
	return out
}

// ContainsPoint reports whether p lies inside the closed box b.
//
// Complexity: O(D).
func (b Box) ContainsPoint(p Position) (bool, error) {
	loOK, err := LE(b.LowerLeft, p)
	if err != nil {
		return false, err
	}
	hiOK, err := LE(p, b.UpperRight)
	if err != nil {
		return false, err
	}
	return loOK && hiOK, nil
}

// ContainsBox reports whether other is entirely contained within b.
//
// Complexity: O(D).
func (b Box) ContainsBox(other Box) (bool, error) {
	loOK, err := LE(b.LowerLeft, other.LowerLeft)
	if err != nil {
		return false, err
	}
	hiOK, err := LE(other.UpperRight, b.UpperRight)
	if err != nil {
		return false, err
	}
	return loOK && hiOK, nil
}

// Disjoint reports whether b and other share no point.
//
// Complexity: O(D).
func (b Box) Disjoint(other Box) (bool, error) {
	d, err := sameDim(b.LowerLeft, other.LowerLeft)
	if err != nil {
		return false, err
	}
	for i := 0; i < d; i++ {
		if b.UpperRight[i] < other.LowerLeft[i] || other.UpperRight[i] < b.LowerLeft[i] {
			return true, nil
		}
	}
	return false, nil
}

// Union returns the smallest Box containing both b and other.
//
// Complexity: O(D).
func Union(b, other Box) (Box, error) {
	lo, err := Min(b.LowerLeft, other.LowerLeft)
	if err != nil {
		return Box{}, err
	}
	hi, err := Max(b.UpperRight, other.UpperRight)
	if err != nil {
		return Box{}, err
	}
	return Box{LowerLeft: lo, UpperRight: hi}, nil
}

// Intersect returns the Box covering the overlap of b and other. The second
// return value is false when the boxes are disjoint (the returned Box is
// meaningless in that case).
//
// Complexity: O(D).
func Intersect(b, other Box) (Box, bool, error) {
	disjoint, err := b.Disjoint(other)
	if err != nil {
		return Box{}, false, err
	}
	if disjoint {
		return Box{}, false, nil
	}
	lo, err := Max(b.LowerLeft, other.LowerLeft)
	if err != nil {
		return Box{}, false, err
	}
	hi, err := Min(b.UpperRight, other.UpperRight)
	if err != nil {
		return Box{}, false, err
	}
	return Box{LowerLeft: lo, UpperRight: hi}, true, nil
}

// Translate returns b shifted by offset.
//
// Complexity: O(D).
func (b Box) Translate(offset Position) (Box, error) {
	lo, err := Add(b.LowerLeft, offset)
	if err != nil {
		return Box{}, err
	}
	hi, err := Add(b.UpperRight, offset)
	if err != nil {
		return Box{}, err
	}
	return Box{LowerLeft: lo, UpperRight: hi}, nil
}
