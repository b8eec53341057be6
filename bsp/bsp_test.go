// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package bsp

import "testing"

func TestCubeHasSixQuadFaces(t *testing.T) {
	c := Cube(NewVec3(0, 0, 0), 1)
	if len(c.Polygons) != 6 {
		t.Fatalf("len(Polygons) = %d, want 6", len(c.Polygons))
	}
	for i, p := range c.Polygons {
		if len(p.Vertices) != 4 {
			t.Errorf("face %d has %d vertices, want 4", i, len(p.Vertices))
		}
	}
}

func TestInverseIsInvolution(t *testing.T) {
	c := Cube(NewVec3(0, 0, 0), 1)
	back := c.Inverse().Inverse()

	if len(back.Polygons) != len(c.Polygons) {
		t.Fatalf("len(Polygons) = %d, want %d", len(back.Polygons), len(c.Polygons))
	}
	for i := range c.Polygons {
		got, want := back.Polygons[i], c.Polygons[i]
		if len(got.Vertices) != len(want.Vertices) {
			t.Fatalf("face %d: vertex count %d, want %d", i, len(got.Vertices), len(want.Vertices))
		}
		for j := range want.Vertices {
			if got.Vertices[j].Pos != want.Vertices[j].Pos {
				t.Errorf("face %d vertex %d = %v, want %v", i, j, got.Vertices[j].Pos, want.Vertices[j].Pos)
			}
		}
		if got.Plane.Normal.Sub(want.Plane.Normal).Norm() > 1e-9 {
			t.Errorf("face %d plane normal = %v, want %v", i, got.Plane.Normal, want.Plane.Normal)
		}
	}
}

func TestUnionOfDisjointSolidsKeepsAllPolygons(t *testing.T) {
	a := Cube(NewVec3(0, 0, 0), 1)
	b := Cube(NewVec3(100, 100, 100), 1)

	u := a.Union(b)
	if got, want := len(u.Polygons), len(a.Polygons)+len(b.Polygons); got != want {
		t.Errorf("len(Union.Polygons) = %d, want %d (disjoint solids keep every face)", got, want)
	}
}

func TestIntersectOfDisjointSolidsIsEmpty(t *testing.T) {
	a := Cube(NewVec3(0, 0, 0), 1)
	b := Cube(NewVec3(100, 100, 100), 1)

	i := a.Intersect(b)
	if len(i.Polygons) != 0 {
		t.Errorf("len(Intersect.Polygons) = %d, want 0 (disjoint solids share no volume)", len(i.Polygons))
	}
}

func TestSubtractOfDisjointSolidsKeepsReceiver(t *testing.T) {
	a := Cube(NewVec3(0, 0, 0), 1)
	b := Cube(NewVec3(100, 100, 100), 1)

	s := a.Subtract(b)
	if got, want := len(s.Polygons), len(a.Polygons); got != want {
		t.Errorf("len(Subtract.Polygons) = %d, want %d (subtracting a disjoint solid is a no-op)", got, want)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := Cube(NewVec3(0, 0, 0), 1)
	clone := a.Clone()
	clone.Polygons[0].Vertices[0].Pos = NewVec3(999, 999, 999)

	if a.Polygons[0].Vertices[0].Pos == NewVec3(999, 999, 999) {
		t.Error("mutating a clone's vertex mutated the original solid")
	}
}
