// File: api.go
// Role: thin, deterministic public facade for mask construction.
// No algorithmic logic lives here; see ball.go/box.go/ellipse.go/grid.go/
// bool.go/converse.go/anchored.go/all.go for behavior.
package mask

// Intersection is sugar for NewIntersection, kept for call-site brevity at
// composition sites that chain several masks together.
func Intersection(a, b Mask) (Mask, error) { return NewIntersection(a, b) }

// Union is sugar for NewUnion.
func Union(a, b Mask) (Mask, error) { return NewUnion(a, b) }

// Difference is sugar for NewDifference.
func Difference(a, b Mask) (Mask, error) { return NewDifference(a, b) }

// Converse is sugar for NewConverse.
func Converse(m Mask) Mask { return NewConverse(m) }

// Anchored is sugar for NewAnchored.
func Anchored(m Mask, offset []float64) (Mask, error) { return NewAnchored(m, offset) }
