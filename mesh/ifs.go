// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package mesh

import "github.com/2dChan/geocore/bsp"

// IFSVertex is a vertex in an indexed face set. Data is an optional index
// into caller-owned data associated with the vertex; -1 means none.
type IFSVertex struct {
	Position bsp.Vec3
	Data     int
}

// IFSTriangle is a triangle in an indexed face set, given as three
// counter-clockwise vertex indices. Data is an optional index into
// caller-owned data associated with the triangle; -1 means none.
type IFSTriangle struct {
	Vertices [3]int
	Data     int
}

// IFS is an indexed face set: a flat vertex array and a list of triangles
// referencing it by index.
type IFS struct {
	Vertices  []IFSVertex
	Triangles []IFSTriangle
}

// FromSolid fan-triangulates every polygon of s around its first vertex and
// returns the result as an IFS. Polygons with fewer than 3 vertices
// contribute nothing.
func FromSolid(s bsp.Solid) IFS {
	var out IFS
	for _, p := range s.Polygons {
		if len(p.Vertices) < 3 {
			continue
		}
		base := len(out.Vertices)
		for _, v := range p.Vertices {
			out.Vertices = append(out.Vertices, IFSVertex{Position: v.Pos, Data: -1})
		}
		for i := 2; i < len(p.Vertices); i++ {
			out.Triangles = append(out.Triangles, IFSTriangle{
				Vertices: [3]int{base, base + i - 1, base + i},
				Data:     -1,
			})
		}
	}
	return out
}
