// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package stlio

import (
	"strings"
	"testing"

	"github.com/2dChan/geocore/bsp"
)

func TestWriteCubeProducesTwelveTriangleFacets(t *testing.T) {
	c := bsp.Cube(bsp.NewVec3(0, 0, 0), 1)

	var sb strings.Builder
	if err := Write(&sb, "cube", c.Polygons); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := sb.String()

	if !strings.HasPrefix(out, "solid cube\n") {
		t.Errorf("output does not start with %q", "solid cube\n")
	}
	if !strings.HasSuffix(out, "endsolid cube\n") {
		t.Errorf("output does not end with %q", "endsolid cube\n")
	}
	if got, want := strings.Count(out, "facet normal"), 12; got != want {
		t.Errorf("facet count = %d, want %d (6 quad faces fan-triangulated into 2 each)", got, want)
	}
	if got, want := strings.Count(out, "vertex "), 36; got != want {
		t.Errorf("vertex count = %d, want %d", got, want)
	}
}

func TestWriteSkipsDegeneratePolygons(t *testing.T) {
	c := bsp.Cube(bsp.NewVec3(0, 0, 0), 1)
	degenerate := append([]bsp.Polygon{}, c.Polygons...)
	degenerate[0].Vertices = degenerate[0].Vertices[:2]

	var sb strings.Builder
	if err := Write(&sb, "mixed", degenerate); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got, want := strings.Count(sb.String(), "facet normal"), 11; got != want {
		t.Errorf("facet count = %d, want %d", got, want)
	}
}
