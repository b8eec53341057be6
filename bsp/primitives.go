// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package bsp

import "math"

// cubeFaces lists, for each of the cube's six faces, the corner indices
// (bit 0 = x, bit 1 = y, bit 2 = z, each selecting -radius or +radius) that
// make up its counter-clockwise winding, viewed from outside the cube.
var cubeFaces = [6][4]int{
	{0, 4, 6, 2},
	{1, 3, 7, 5},
	{0, 1, 5, 4},
	{2, 6, 7, 3},
	{0, 2, 3, 1},
	{4, 5, 7, 6},
}

// Cube returns an axis-aligned box centered at center, extending radius in
// each axis (a single radius applies uniformly to x, y, and z).
func Cube(center Vec3, radius float64) Solid {
	return cube(center, NewVec3(radius, radius, radius))
}

// CubeAnisotropic returns an axis-aligned box centered at center, with an
// independent half-extent for each axis.
func CubeAnisotropic(center, radius Vec3) Solid {
	return cube(center, radius)
}

func cube(c, r Vec3) Solid {
	polygons := make([]Polygon, 0, 6)
	for _, face := range cubeFaces {
		vertices := make([]Vertex, 0, 4)
		for _, i := range face {
			sign := func(bit int) float64 {
				if i&bit != 0 {
					return 1
				}
				return -1
			}
			pos := NewVec3(
				c.X+r.X*sign(1),
				c.Y+r.Y*sign(2),
				c.Z+r.Z*sign(4),
			)
			vertices = append(vertices, NewVertex(pos))
		}
		polygons = append(polygons, NewPolygon(vertices, nil))
	}
	return FromPolygons(polygons)
}

// Sphere returns a UV sphere centered at center with the given radius,
// subdivided into slices longitude bands and stacks latitude bands.
func Sphere(center Vec3, radius float64, slices, stacks int) Solid {
	vertexAt := func(theta, phi float64) Vertex {
		theta *= math.Pi * 2.0
		phi *= math.Pi
		direction := NewVec3(
			math.Cos(theta)*math.Sin(phi),
			math.Cos(phi),
			math.Sin(theta)*math.Sin(phi),
		)
		return NewVertex(center.Add(direction.Mul(radius)))
	}

	var polygons []Polygon
	for i := 0; i < slices; i++ {
		for j := 0; j < stacks; j++ {
			vertices := []Vertex{vertexAt(float64(i)/float64(slices), float64(j)/float64(stacks))}
			if j > 0 {
				vertices = append(vertices, vertexAt(float64(i+1)/float64(slices), float64(j)/float64(stacks)))
			}
			if j < stacks-1 {
				vertices = append(vertices, vertexAt(float64(i+1)/float64(slices), float64(j+1)/float64(stacks)))
			}
			vertices = append(vertices, vertexAt(float64(i)/float64(slices), float64(j+1)/float64(stacks)))
			polygons = append(polygons, NewPolygon(vertices, nil))
		}
	}
	return FromPolygons(polygons)
}

// Cylinder returns a capped cylinder of the given radius running from
// start to end, subdivided into slices around its circumference.
func Cylinder(start, end Vec3, radius float64, slices int) Solid {
	ray := end.Sub(start)
	axisZ := ray.Unit()
	isY := math.Abs(axisZ.Y) > 0.5
	isYf := 0.0
	if isY {
		isYf = 1.0
	}
	notYf := 1.0 - isYf
	axisX := NewVec3(isYf, notYf, 0.0).Cross(axisZ).Unit()
	axisY := axisX.Cross(axisZ).Unit()
	startVertex := NewVertex(start)
	endVertex := NewVertex(end)

	point := func(stack, slice float64) Vertex {
		angle := slice * math.Pi * 2.0
		out := axisX.Mul(math.Cos(angle)).Add(axisY.Mul(math.Sin(angle)))
		pos := start.Add(ray.Mul(stack)).Add(out.Mul(radius))
		return NewVertex(pos)
	}

	var polygons []Polygon
	for i := 0; i < slices; i++ {
		t0 := float64(i) / float64(slices)
		t1 := float64(i+1) / float64(slices)
		polygons = append(polygons, NewPolygon([]Vertex{startVertex.Clone(), point(0, t0), point(0, t1)}, nil))
		polygons = append(polygons, NewPolygon([]Vertex{point(0, t1), point(0, t0), point(1, t0), point(1, t1)}, nil))
		polygons = append(polygons, NewPolygon([]Vertex{endVertex.Clone(), point(1, t1), point(1, t0)}, nil))
	}
	return FromPolygons(polygons)
}
