// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package bsp

// Solid is a polyhedral solid represented as a set of convex polygons,
// each facing outward. Boolean operations (Union, Subtract, Intersect) and
// Inverse treat Solid as immutable: every operation returns a new Solid
// built from freshly cloned polygons, leaving the receiver untouched.
type Solid struct {
	Polygons []Polygon
}

// FromPolygons returns a Solid over polygons directly, without cloning.
func FromPolygons(polygons []Polygon) Solid {
	return Solid{Polygons: polygons}
}

// Clone returns a deep copy of s.
func (s Solid) Clone() Solid {
	polygons := make([]Polygon, len(s.Polygons))
	for i, p := range s.Polygons {
		polygons[i] = p.Clone()
	}
	return Solid{Polygons: polygons}
}

// Union returns the solid occupying the space of s, other, or both.
func (s Solid) Union(other Solid) Solid {
	a := NewNode(s.Clone().Polygons)
	b := NewNode(other.Clone().Polygons)
	a.ClipTo(b)
	b.ClipTo(a)
	b.Invert()
	b.ClipTo(a)
	b.Invert()
	a.Build(b.AllPolygons())
	return FromPolygons(a.AllPolygons())
}

// Subtract returns the solid occupying the space of s but not other.
func (s Solid) Subtract(other Solid) Solid {
	a := NewNode(s.Clone().Polygons)
	b := NewNode(other.Clone().Polygons)
	a.Invert()
	a.ClipTo(b)
	b.ClipTo(a)
	b.Invert()
	b.ClipTo(a)
	b.Invert()
	a.Build(b.AllPolygons())
	a.Invert()
	return FromPolygons(a.AllPolygons())
}

// Intersect returns the solid occupying the space of both s and other.
func (s Solid) Intersect(other Solid) Solid {
	a := NewNode(s.Clone().Polygons)
	b := NewNode(other.Clone().Polygons)
	a.Invert()
	b.ClipTo(a)
	b.Invert()
	a.ClipTo(b)
	b.ClipTo(a)
	a.Build(b.AllPolygons())
	a.Invert()
	return FromPolygons(a.AllPolygons())
}

// Inverse returns s with every polygon facing the opposite way: the
// complement solid, inside-out.
func (s Solid) Inverse() Solid {
	clone := s.Clone()
	for i, p := range clone.Polygons {
		clone.Polygons[i] = p.Flip()
	}
	return clone
}
