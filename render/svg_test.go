// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package render

import (
	"strings"
	"testing"

	"github.com/2dChan/geocore/triangulate"
)

func TestRenderDrawsOneTriangleAndThreeGhosts(t *testing.T) {
	tr, err := triangulate.New([]triangulate.Vec2{
		triangulate.NewVec2(0, 0), triangulate.NewVec2(1, 0), triangulate.NewVec2(0, 1),
	}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := tr.Triangulate(triangulate.MergeArbitrary, triangulate.CutVertical); err != nil {
		t.Fatalf("Triangulate: %v", err)
	}

	var sb strings.Builder
	Render(&sb, tr, DefaultOptions())
	out := sb.String()

	if got, want := strings.Count(out, "<polygon"), 1; got != want {
		t.Errorf("polygon count = %d, want %d (one existent triangle)", got, want)
	}
	if got, want := strings.Count(out, "<line"), 6; got != want {
		t.Errorf("line count = %d, want %d (3 ghost triangles, 2 edges each to a synthesized vertex)", got, want)
	}
	if got, want := strings.Count(out, "<circle"), 3; got != want {
		t.Errorf("circle count = %d, want %d (one per vertex)", got, want)
	}
	if !strings.Contains(out, "<svg") {
		t.Error("output does not contain an <svg> element")
	}
}

func TestGhostVertexPositionDisplacesOutwardAlongLeftHandNormal(t *testing.T) {
	a := triangulate.NewVec2(0, 0)
	b := triangulate.NewVec2(2, 0)

	got := ghostVertexPosition(a, b, 0.25)
	want := triangulate.NewVec2(1, 0.5)

	if !got.Equivalent(want, 1e-9) {
		t.Errorf("ghostVertexPosition(%v, %v, 0.25) = %v, want %v", a, b, got, want)
	}
}

func TestRenderHandlesEmptyTriangulation(t *testing.T) {
	tr, err := triangulate.New(nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := tr.Triangulate(triangulate.MergeArbitrary, triangulate.CutVertical); err != nil {
		t.Fatalf("Triangulate: %v", err)
	}

	var sb strings.Builder
	Render(&sb, tr, DefaultOptions())
	if !strings.Contains(sb.String(), "<svg") {
		t.Error("output does not contain an <svg> element")
	}
}
