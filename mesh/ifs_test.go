// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package mesh

import (
	"testing"

	"github.com/2dChan/geocore/bsp"
)

func TestFromSolidTriangulatesCube(t *testing.T) {
	c := bsp.Cube(bsp.NewVec3(0, 0, 0), 1)
	ifs := FromSolid(c)

	if got, want := len(ifs.Vertices), 24; got != want {
		t.Errorf("len(Vertices) = %d, want %d (6 faces * 4 vertices, no sharing)", got, want)
	}
	if got, want := len(ifs.Triangles), 12; got != want {
		t.Errorf("len(Triangles) = %d, want %d (6 quad faces fan-triangulated into 2 each)", got, want)
	}
	for i, tri := range ifs.Triangles {
		for _, v := range tri.Vertices {
			if v < 0 || v >= len(ifs.Vertices) {
				t.Errorf("triangle %d references out-of-range vertex %d", i, v)
			}
		}
	}
}

func TestFromSolidSkipsDegeneratePolygons(t *testing.T) {
	c := bsp.Cube(bsp.NewVec3(0, 0, 0), 1)
	c.Polygons[0].Vertices = c.Polygons[0].Vertices[:2]

	ifs := FromSolid(c)
	if got, want := len(ifs.Triangles), 10; got != want {
		t.Errorf("len(Triangles) = %d, want %d", got, want)
	}
}
