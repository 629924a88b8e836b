// Package mars implements the MARS (Memory Array Redcode Simulator) engine:
// a toroidal two-dimensional Core War core, its Redcode instruction set, and
// the scheduler that steps warriors through it.
package mars

// Point is a dual-axis signed integer value. It is used both for operand
// values and for coordinates on the core's torus. Points are plain values —
// copy freely, never share.
type Point struct {
	X int
	Y int
}

// Pt constructs a Point from an x coordinate, with y defaulting to 0.
func Pt(x int, y ...int) Point {
	if len(y) > 0 {
		return Point{X: x, Y: y[0]}
	}
	return Point{X: x, Y: 0}
}

// Add returns the component-wise sum.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// MulScalar scales both axes by n.
func (p Point) MulScalar(n int) Point {
	return Point{X: p.X * n, Y: p.Y * n}
}

// Mul returns the component-wise product.
func (p Point) Mul(q Point) Point {
	return Point{X: p.X * q.X, Y: p.Y * q.Y}
}

// Equal compares both components. Comparison against a bare integer, where
// a Point with Y == 0 equals x (Redcode's historical "value is usually just
// an x-offset" convention), is EqualInt.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// EqualInt reports whether p equals the bare integer n (i.e. p.Y == 0 && p.X == n).
func (p Point) EqualInt(n int) bool {
	return p.Y == 0 && p.X == n
}

// IsZero reports whether both axes are zero.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// floorDiv and floorMod implement Euclidean (floored) division, as required
// by the core's toroidal address arithmetic: negative coordinates must wrap
// into [0, n) rather than truncate toward zero.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

// DivFloor returns the component-wise floored quotient against a scalar.
func (p Point) DivFloor(n int) Point {
	return Point{X: floorDiv(p.X, n), Y: floorDiv(p.Y, n)}
}

// ModFloor returns the component-wise floored remainder against a scalar.
func (p Point) ModFloor(n int) Point {
	return Point{X: floorMod(p.X, n), Y: floorMod(p.Y, n)}
}
