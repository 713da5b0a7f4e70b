package mapshade

import "github.com/chewxy/math32"

// Point represents a 2D point or vector in float32, matching the precision
// of the instance buffers the editor packs for this core.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float32 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float32 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float32 {
	return math32.Hypot(p.X, p.Y)
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float32 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float32 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (p Point) Normalize() Point {
	l := p.Length()
	if l < epsilon {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// RotateBy rotates the vector by the rotation encoded in the unit vector
// rot = (cos a, sin a).
func (p Point) RotateBy(rot Point) Point {
	return Point{
		X: p.X*rot.X - p.Y*rot.Y,
		Y: p.X*rot.Y + p.Y*rot.X,
	}
}

// RotateByInverse rotates the vector by the inverse of the rotation encoded
// in rot = (cos a, sin a). Rotating sampling coordinates by the inverse
// angle is equivalent to rotating the sampled sprite forward by the angle.
func (p Point) RotateByInverse(rot Point) Point {
	return Point{
		X: p.X*rot.X + p.Y*rot.Y,
		Y: -p.X*rot.Y + p.Y*rot.X,
	}
}

// Rect is an axis-aligned rectangle in float32, stored as min/max corners.
type Rect struct {
	X0, Y0, X1, Y1 float32
}

// R is a convenience function to create a Rect.
func R(x0, y0, x1, y1 float32) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the rectangle width.
func (r Rect) Width() float32 { return r.X1 - r.X0 }

// Height returns the rectangle height.
func (r Rect) Height() float32 { return r.Y1 - r.Y0 }

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{X: r.X0, Y: r.Y0} }

// Max returns the bottom-right corner.
func (r Rect) Max() Point { return Point{X: r.X1, Y: r.Y1} }

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: (r.X0 + r.X1) * 0.5, Y: (r.Y0 + r.Y1) * 0.5}
}

// Contains reports whether p lies inside the rectangle (inclusive min,
// exclusive max).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// Expand returns the rectangle grown by d on every side.
func (r Rect) Expand(d float32) Rect {
	return Rect{X0: r.X0 - d, Y0: r.Y0 - d, X1: r.X1 + d, Y1: r.Y1 + d}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: math32.Min(r.X0, o.X0), Y0: math32.Min(r.Y0, o.Y0),
		X1: math32.Max(r.X1, o.X1), Y1: math32.Max(r.Y1, o.Y1),
	}
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X0 < o.X1 && o.X0 < r.X1 && r.Y0 < o.Y1 && o.Y0 < r.Y1
}

// Canon returns the rectangle with its corners swapped as needed so that
// X0 <= X1 and Y0 <= Y1.
func (r Rect) Canon() Rect {
	if r.X1 < r.X0 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y1 < r.Y0 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}
