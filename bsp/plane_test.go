// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package bsp

import (
	"math"
	"testing"
)

func TestNewPlaneFromPoints(t *testing.T) {
	p := NewPlaneFromPoints(NewVec3(0, 0, 0), NewVec3(1, 0, 0), NewVec3(0, 1, 0))
	want := NewVec3(0, 0, 1)
	if p.Normal.Sub(want).Norm() > 1e-9 {
		t.Errorf("Normal = %v, want %v", p.Normal, want)
	}
	if math.Abs(p.W) > 1e-9 {
		t.Errorf("W = %v, want 0", p.W)
	}
}

func TestPlaneSplitPolygonClassification(t *testing.T) {
	plane := Plane{Normal: NewVec3(0, 0, 1), W: 0}
	square := NewPolygon([]Vertex{
		NewVertex(NewVec3(-1, -1, 1)),
		NewVertex(NewVec3(1, -1, 1)),
		NewVertex(NewVec3(1, 1, 1)),
		NewVertex(NewVec3(-1, 1, 1)),
	}, "tag")

	var coplanarFront, coplanarBack, front, back []Polygon
	plane.SplitPolygon(square, &coplanarFront, &coplanarBack, &front, &back)

	if len(front) != 1 || len(back) != 0 || len(coplanarFront) != 0 || len(coplanarBack) != 0 {
		t.Fatalf("front=%d back=%d coplanarFront=%d coplanarBack=%d, want front-only", len(front), len(back), len(coplanarFront), len(coplanarBack))
	}
	if front[0].Shared != "tag" {
		t.Errorf("Shared = %v, want %q", front[0].Shared, "tag")
	}
}

func TestPlaneSplitPolygonSpanning(t *testing.T) {
	plane := Plane{Normal: NewVec3(0, 0, 1), W: 0}
	square := NewPolygon([]Vertex{
		NewVertex(NewVec3(-1, -1, -1)),
		NewVertex(NewVec3(1, -1, 1)),
		NewVertex(NewVec3(1, 1, 1)),
		NewVertex(NewVec3(-1, 1, -1)),
	}, nil)

	var front, back []Polygon
	plane.SplitPolygon(square, &front, &back, &front, &back)

	if len(front) != 1 {
		t.Fatalf("len(front) = %d, want 1", len(front))
	}
	if len(back) != 1 {
		t.Fatalf("len(back) = %d, want 1", len(back))
	}
	for _, v := range front[0].Vertices {
		if v.Pos.Z < -PlaneEpsilon {
			t.Errorf("front vertex %v has negative z", v.Pos)
		}
	}
	for _, v := range back[0].Vertices {
		if v.Pos.Z > PlaneEpsilon {
			t.Errorf("back vertex %v has positive z", v.Pos)
		}
	}
}

func TestPlaneFlipReversesOrientation(t *testing.T) {
	p := Plane{Normal: NewVec3(1, 0, 0), W: 2}
	flipped := p.Flip()
	if flipped.Normal != NewVec3(-1, 0, 0) {
		t.Errorf("Flip().Normal = %v, want (-1,0,0)", flipped.Normal)
	}
	if flipped.W != -2 {
		t.Errorf("Flip().W = %v, want -2", flipped.W)
	}
}
