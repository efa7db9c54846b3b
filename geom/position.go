package geom

import "math"

// Add returns a+b componentwise.
//
// Complexity: O(D).
func Add(a, b Position) (Position, error) {
	d, err := sameDim(a, b)
	if err != nil {
		return nil, err
	}
	out := make(Position, d)
	for i := 0; i < d; i++ {
		out[i] = a[i] + b[i]
	}
	return out, nil
}

// Sub returns a-b componentwise.
//
// Complexity: O(D).
func Sub(a, b Position) (Position, error) {
	d, err := sameDim(a, b)
	if err != nil {
		return nil, err
	}
	out := make(Position, d)
	for i := 0; i < d; i++ {
		out[i] = a[i] - b[i]
	}
	return out, nil
}

// Mul returns a*b componentwise.
//
// Complexity: O(D).
func Mul(a, b Position) (Position, error) {
	d, err := sameDim(a, b)
	if err != nil {
		return nil, err
	}
	out := make(Position, d)
	for i := 0; i < d; i++ {
		out[i] = a[i] * b[i]
	}
	return out, nil
}

// Div returns a/b componentwise. Division by zero follows IEEE-754 float
// semantics (±Inf or NaN); callers that need a guarded divide should check
// b beforehand.
//
// Complexity: O(D).
func Div(a, b Position) (Position, error) {
	d, err := sameDim(a, b)
	if err != nil {
		return nil, err
	}
	out := make(Position, d)
	for i := 0; i < d; i++ {
		out[i] = a[i] / b[i]
	}
	return out, nil
}

// Scale returns p scaled by the scalar s.
//
// Complexity: O(D).
func Scale(p Position, s float64) Position {
	out := make(Position, len(p))
	for i, v := range p {
		out[i] = v * s
	}
	return out
}

// Length returns the Euclidean length of p.
//
// Complexity: O(D).
func (p Position) Length() float64 {
	var sum float64
	for _, v := range p {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Min returns the componentwise minimum of a and b.
//
// Complexity: O(D).
func Min(a, b Position) (Position, error) {
	d, err := sameDim(a, b)
	if err != nil {
		return nil, err
	}
	out := make(Position, d)
	for i := 0; i < d; i++ {
		out[i] = math.Min(a[i], b[i])
	}
	return out, nil
}

// Max returns the componentwise maximum of a and b.
//
// Complexity: O(D).
func Max(a, b Position) (Position, error) {
	d, err := sameDim(a, b)
	if err != nil {
		return nil, err
	}
	out := make(Position, d)
	for i := 0; i < d; i++ {
		out[i] = math.Max(a[i], b[i])
	}
	return out, nil
}

// LE reports the partial order a <= b: true iff a[i] <= b[i] for every i.
// Note this is a partial order — !LE(a,b) does not imply LE(b,a) or any
// strict ">" relation; callers must not assume totality.
//
// Complexity: O(D).
func LE(a, b Position) (bool, error) {
	d, err := sameDim(a, b)
	if err != nil {
		return false, err
	}
	for i := 0; i < d; i++ {
		if a[i] > b[i] {
			return false, nil
		}
	}
	return true, nil
}
