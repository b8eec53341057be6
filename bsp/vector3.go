// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package bsp implements constructive solid geometry (CSG) boolean
// operations on polyhedral solids via binary space partitioning.
package bsp

import "github.com/golang/geo/r3"

// Vec3 is an immutable 3D vector built on r3.Vector.
type Vec3 struct {
	r3.Vector
}

// NewVec3 returns the vector (x, y, z).
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{r3.Vector{X: x, Y: y, Z: z}}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.Vector.Add(other.Vector)}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.Vector.Sub(other.Vector)}
}

// Mul returns v scaled by m.
func (v Vec3) Mul(m float64) Vec3 {
	return Vec3{v.Vector.Mul(m)}
}

// Dot returns the dot product of v and other.
func (v Vec3) Dot(other Vec3) float64 {
	return v.Vector.Dot(other.Vector)
}

// Cross returns the cross product of v and other.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{v.Vector.Cross(other.Vector)}
}

// Unit returns v normalized to unit length.
func (v Vec3) Unit() Vec3 {
	return Vec3{v.Vector.Normalize()}
}

// Negated returns -v.
func (v Vec3) Negated() Vec3 {
	return Vec3{v.Vector.Mul(-1)}
}

// Lerp returns the point a fraction t of the way from v to other.
func (v Vec3) Lerp(other Vec3, t float64) Vec3 {
	return v.Add(other.Sub(v).Mul(t))
}
