// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package stlio writes bsp.Solid polygon meshes out as ASCII STL files.
package stlio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/2dChan/geocore/bsp"
)

// Write fan-triangulates every polygon in polygons around its first vertex
// and writes the result to w as an ASCII STL solid named name.
func Write(w io.Writer, name string, polygons []bsp.Polygon) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "solid %s\n", name); err != nil {
		return err
	}
	for _, p := range polygons {
		if len(p.Vertices) < 3 {
			continue
		}
		a := p.Vertices[0].Pos
		for i := 2; i < len(p.Vertices); i++ {
			b := p.Vertices[i-1].Pos
			c := p.Vertices[i].Pos
			n := b.Sub(a).Cross(c.Sub(a)).Unit()
			if err := writeFacet(bw, n, a, b, c); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintf(bw, "endsolid %s\n", name); err != nil {
		return err
	}
	return bw.Flush()
}

func writeFacet(w io.Writer, n, a, b, c bsp.Vec3) error {
	_, err := fmt.Fprintf(w,
		"facet normal %g %g %g\nouter loop\nvertex %g %g %g\nvertex %g %g %g\nvertex %g %g %g\nendloop\nendfacet\n",
		n.X, n.Y, n.Z,
		a.X, a.Y, a.Z,
		b.X, b.Y, b.Z,
		c.X, c.Y, c.Z,
	)
	return err
}

// Save writes polygons to path as an ASCII STL file named name.
func Save(path, name string, polygons []bsp.Polygon) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stlio: %w", err)
	}
	defer f.Close()
	if err := Write(f, name, polygons); err != nil {
		return fmt.Errorf("stlio: %w", err)
	}
	return nil
}
