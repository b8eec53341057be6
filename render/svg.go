// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package render draws a triangulate.Triangulation to SVG for inspection,
// generalizing the sphere-projection renderer this module's triangulation
// engine replaced into a direct planar one.
package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/2dChan/geocore/triangulate"
)

const (
	defaultTriangleStyle     = "fill:rgb(255,255,255);stroke:rgb(170,170,170);stroke-width:1;stroke-opacity:1.0"
	defaultVertexStyle       = "fill:rgb(0,0,255)"
	defaultVertexRadius      = 3
	defaultGhostStyle        = "stroke:rgb(220,80,80);stroke-width:1;stroke-dasharray:4,3"
	defaultGhostDisplacement = 0.15
)

// Options configures Render.
type Options struct {
	Width, Height int
	// Margin reserves space, in pixels, between the triangulation's bounds
	// and the canvas edge.
	Margin        int
	TriangleStyle string
	VertexStyle   string
	VertexRadius  int
	GhostStyle    string
	// GhostDisplacement is the fraction of a ghost triangle's hull-edge
	// length by which its synthesized vertex is displaced outward, away
	// from the existent triangle on the other side of that edge.
	GhostDisplacement float64
}

// DefaultOptions returns canvas options sized to 800x800 with a 20px
// margin and the original polygon/site/ghost-edge styling.
func DefaultOptions() Options {
	return Options{
		Width: 800, Height: 800, Margin: 20,
		TriangleStyle:     defaultTriangleStyle,
		VertexStyle:       defaultVertexStyle,
		VertexRadius:      defaultVertexRadius,
		GhostStyle:        defaultGhostStyle,
		GhostDisplacement: defaultGhostDisplacement,
	}
}

// ghostVertexPosition synthesizes a drawable position for a ghost
// triangle's missing third vertex: the midpoint of its hull edge (a, b),
// displaced outward along the edge's left-hand normal by a fraction of
// the edge's length. The existent neighbor of a ghost lies to the right of
// (a, b), so the left-hand normal points away from the hull.
func ghostVertexPosition(a, b triangulate.Vec2, fraction float64) triangulate.Vec2 {
	mid := a.Add(b).Mul(0.5)
	edge := b.Sub(a)
	normal := triangulate.NewVec2(-edge.Y, edge.X)
	return mid.Add(normal.Mul(fraction))
}

// projection maps a triangulation's bounding box onto a pixel canvas,
// flipping y so larger y values render higher on the page.
type projection struct {
	xMin, yMin float64
	xScale, yScale float64
	margin int
	height int
}

func newProjection(vertices []triangulate.Vec2, opts Options) projection {
	if len(vertices) == 0 {
		return projection{xScale: 1, yScale: 1, margin: opts.Margin, height: opts.Height}
	}
	xMin, xMax := vertices[0].X, vertices[0].X
	yMin, yMax := vertices[0].Y, vertices[0].Y
	for _, v := range vertices[1:] {
		xMin, xMax = min(xMin, v.X), max(xMax, v.X)
		yMin, yMax = min(yMin, v.Y), max(yMax, v.Y)
	}
	usableW := float64(opts.Width - 2*opts.Margin)
	usableH := float64(opts.Height - 2*opts.Margin)
	xSpan, ySpan := xMax-xMin, yMax-yMin
	if xSpan == 0 {
		xSpan = 1
	}
	if ySpan == 0 {
		ySpan = 1
	}
	return projection{
		xMin: xMin, yMin: yMin,
		xScale: usableW / xSpan, yScale: usableH / ySpan,
		margin: opts.Margin, height: opts.Height,
	}
}

func (p projection) point(v triangulate.Vec2) (int, int) {
	x := int((v.X-p.xMin)*p.xScale) + p.margin
	y := p.height - (int((v.Y-p.yMin)*p.yScale) + p.margin)
	return x, y
}

// Render draws every existent triangle in tr as a filled polygon, every
// ghost triangle as a pair of dashed edges to a synthesized displaced
// vertex (see ghostVertexPosition), and every vertex, to w as SVG.
func Render(w io.Writer, tr *triangulate.Triangulation, opts Options) {
	canvas := svg.New(w)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:rgb(255,255,255)")

	proj := newProjection(tr.Vertices, opts)

	xs := make([]int, 0, 3)
	ys := make([]int, 0, 3)
	for _, tri := range tr.Triangles {
		if tri.Ghost() {
			a, b := tr.Vertices[tri.V[0]], tr.Vertices[tri.V[1]]
			ghost := ghostVertexPosition(a, b, opts.GhostDisplacement)
			ax, ay := proj.point(a)
			bx, by := proj.point(b)
			gx, gy := proj.point(ghost)
			canvas.Line(ax, ay, gx, gy, opts.GhostStyle)
			canvas.Line(gx, gy, bx, by, opts.GhostStyle)
			continue
		}
		xs, ys = xs[:0], ys[:0]
		for _, vi := range tri.V {
			x, y := proj.point(tr.Vertices[vi])
			xs = append(xs, x)
			ys = append(ys, y)
		}
		canvas.Polygon(xs, ys, opts.TriangleStyle)
	}

	for _, v := range tr.Vertices {
		x, y := proj.point(v)
		canvas.Circle(x, y, opts.VertexRadius, opts.VertexStyle)
	}

	canvas.End()
}
