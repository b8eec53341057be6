// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package triangulate implements 2D Delaunay triangulation via recursive
// divide-and-conquer over an index-addressed triangle mesh with ghost
// sentinel triangles describing the convex hull.
package triangulate

import (
	"math"

	"github.com/golang/geo/r2"
)

// defaultVecEpsilon is the default Euclidean-distance tolerance used by
// Vec2.Equivalent.
const defaultVecEpsilon = 1e-6

// Vec2 is an immutable 2D vector built on r2.Point.
type Vec2 struct {
	r2.Point
}

// NewVec2 returns the vector (x, y).
func NewVec2(x, y float64) Vec2 {
	return Vec2{r2.Point{X: x, Y: y}}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.Point.Add(other.Point)}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.Point.Sub(other.Point)}
}

// Mul returns v scaled by m.
func (v Vec2) Mul(m float64) Vec2 {
	return Vec2{v.Point.Mul(m)}
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float64 {
	return v.Point.Dot(other.Point)
}

// Cross returns the z-component of the 3D cross product of v and other,
// i.e. the signed area of the parallelogram they span.
func (v Vec2) Cross(other Vec2) float64 {
	return v.Point.Cross(other.Point)
}

// Length returns the Euclidean norm of v.
func (v Vec2) Length() float64 {
	return v.Point.Norm()
}

// Distance returns the Euclidean distance between v and other.
func (v Vec2) Distance(other Vec2) float64 {
	return v.Sub(other).Length()
}

// Lerp returns the point a fraction t of the way from v to other.
func (v Vec2) Lerp(other Vec2, t float64) Vec2 {
	return v.Add(other.Sub(v).Mul(t))
}

// Equivalent reports whether v and other are within epsilon of each other.
// A non-positive epsilon falls back to defaultVecEpsilon.
func (v Vec2) Equivalent(other Vec2, epsilon float64) bool {
	if epsilon <= 0 {
		epsilon = defaultVecEpsilon
	}
	return v.Distance(other) < epsilon
}

// Less reports whether v sorts before other in x-major, then y-major,
// lexicographic order. Used to sort vertices for vertical-cut
// divide-and-conquer.
func (v Vec2) Less(other Vec2) bool {
	if v.X != other.X {
		return v.X < other.X
	}
	return v.Y < other.Y
}

// LessYMajor reports whether v sorts before other in y-major, then
// x-major order. Used to sort vertices for horizontal-cut
// divide-and-conquer (unimplemented, see CutHorizontal).
func (v Vec2) LessYMajor(other Vec2) bool {
	if v.Y != other.Y {
		return v.Y < other.Y
	}
	return v.X < other.X
}

// Rotated returns v rotated by rad radians.
//
// NOTE: this intentionally reproduces the non-standard rotation formula
// from the original implementation (y = x*sin(theta) - y*cos(theta),
// rather than the textbook y*cos(theta) + x*sin(theta)). Left unfixed by
// design — see DESIGN.md.
func (v Vec2) Rotated(rad float64) Vec2 {
	x := v.X*math.Cos(rad) - v.Y*math.Sin(rad)
	y := v.X*math.Sin(rad) - v.Y*math.Cos(rad)
	return NewVec2(x, y)
}
