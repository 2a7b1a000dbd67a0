package blit

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of numeric kinds a Point or Rect can be built from.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Point is a 2D point or vector with components of kind T.
// The zero value is the origin.
type Point[T Scalar] struct {
	X, Y T
}

// Common point kinds.
type (
	PointSize   = Point[uint]
	PointInt    = Point[int]
	PointScalar = Point[float32]
)

// Pt is a convenience function to create a Point.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// ConvertPoint converts p to a point of another scalar kind. Conversion
// follows Go's numeric conversion rules, so floats are truncated toward
// zero rather than rounded.
func ConvertPoint[U, T Scalar](p Point[T]) Point[U] {
	return Point[U]{X: U(p.X), Y: U(p.Y)}
}

// Add returns the component-wise sum p+q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p-q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the component-wise product of p and q.
func (p Point[T]) Mul(q Point[T]) Point[T] {
	return Point[T]{X: p.X * q.X, Y: p.Y * q.Y}
}

// Div returns the component-wise quotient of p and q.
// Integer kinds panic on a zero component, as Go division does.
func (p Point[T]) Div(q Point[T]) Point[T] {
	return Point[T]{X: p.X / q.X, Y: p.Y / q.Y}
}

// Scale returns the point with both components multiplied by s.
func (p Point[T]) Scale(s T) Point[T] {
	return Point[T]{X: p.X * s, Y: p.Y * s}
}

// DivScalar returns the point with both components divided by s.
func (p Point[T]) DivScalar(s T) Point[T] {
	return Point[T]{X: p.X / s, Y: p.Y / s}
}

// Eq reports whether p and q are equal.
func (p Point[T]) Eq(q Point[T]) bool {
	return p == q
}

// Dot returns the dot product of p and q.
func (p Point[T]) Dot(q Point[T]) float64 {
	return float64(p.X)*float64(q.X) + float64(p.Y)*float64(q.Y)
}

// Length returns the Euclidean length of the vector. It is computed in
// floating point for every scalar kind.
func (p Point[T]) Length() float64 {
	return math.Hypot(float64(p.X), float64(p.Y))
}

// Rect is an axis-aligned rectangle described by its center and its
// half extents.
type Rect[T Scalar] struct {
	Center      Point[T]
	HalfExtents Point[T]
}

// Common rectangle kinds.
type (
	RectSize   = Rect[uint]
	RectInt    = Rect[int]
	RectScalar = Rect[float32]
)

// NewRect creates a rectangle from its center and half width and height.
func NewRect[T Scalar](cx, cy, halfWidth, halfHeight T) Rect[T] {
	return Rect[T]{
		Center:      Point[T]{X: cx, Y: cy},
		HalfExtents: Point[T]{X: halfWidth, Y: halfHeight},
	}
}

// Contains reports whether p lies inside r. Points on the boundary are
// inside. Negative half extents behave like their absolute value.
func (r Rect[T]) Contains(p Point[T]) bool {
	return absDiff(r.Center.X, p.X) <= Abs(r.HalfExtents.X) &&
		absDiff(r.Center.Y, p.Y) <= Abs(r.HalfExtents.Y)
}

// absDiff returns |a-b| without wrapping for unsigned kinds.
func absDiff[T Scalar](a, b T) T {
	if a >= b {
		return a - b
	}
	return b - a
}

// Abs returns the absolute value of v.
func Abs[T Scalar](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0 or +1 according to the sign of v.
func Sign[T constraints.Signed | constraints.Float](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Clamp limits v to the range [lo, hi].
func Clamp[T Scalar](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
