// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package gen generates test and demo vertex sets for the triangulate
// package: random points within a region, axis-aligned samples, recursively
// subdivided regional distributions, duplicated vertices, and grid
// lattices.
package gen

import (
	"math/rand"

	"github.com/2dChan/geocore/triangulate"
)

// Generator produces pseudo-random point sets from its own private random
// source, so callers get reproducible output by fixing a seed without
// disturbing any other source of randomness in the process.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator seeded with seed.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// makeSquare returns the bounds adjusted so the described region is the
// largest square contained in, and centered on, the input rectangle.
func makeSquare(xMin, xMax, yMin, yMax float64) (float64, float64, float64, float64) {
	xWidth := xMax - xMin
	yHeight := yMax - yMin
	xCenter := (xMin + xMax) * 0.5
	yCenter := (yMin + yMax) * 0.5
	rMin := min(xWidth, yHeight) * 0.5
	return xCenter - rMin, xCenter + rMin, yCenter - rMin, yCenter + rMin
}

// InSquare returns n points chosen uniformly at random from the largest
// square centered on and contained in the given rectangle.
func (g *Generator) InSquare(n int, xMin, xMax, yMin, yMax float64) []triangulate.Vec2 {
	xMin, xMax, yMin, yMax = makeSquare(xMin, xMax, yMin, yMax)
	return g.InRect(n, xMin, xMax, yMin, yMax)
}

// InRect returns n points chosen uniformly at random from the given
// rectangle.
func (g *Generator) InRect(n int, xMin, xMax, yMin, yMax float64) []triangulate.Vec2 {
	result := make([]triangulate.Vec2, 0, n)
	for len(result) < n {
		result = append(result, triangulate.NewVec2(g.uniform(xMin, xMax), g.uniform(yMin, yMax)))
	}
	return result
}

// InCircle returns n points chosen uniformly at random from the largest
// circle centered on and contained in the given rectangle.
func (g *Generator) InCircle(n int, xMin, xMax, yMin, yMax float64) []triangulate.Vec2 {
	xMin, xMax, yMin, yMax = makeSquare(xMin, xMax, yMin, yMax)
	return g.InEllipse(n, xMin, xMax, yMin, yMax)
}

// InEllipse returns n points chosen uniformly at random from the ellipse
// inscribed in the given rectangle.
func (g *Generator) InEllipse(n int, xMin, xMax, yMin, yMax float64) []triangulate.Vec2 {
	result := make([]triangulate.Vec2, 0, n)
	rx := abs(xMax-xMin) * 0.5
	ry := abs(yMax-yMin) * 0.5
	xCenter := (xMin + xMax) * 0.5
	yCenter := (yMin + yMax) * 0.5
	for len(result) < n {
		v := triangulate.NewVec2(g.uniform(xMin, xMax), g.uniform(yMin, yMax))
		dx, dy := v.X-xCenter, v.Y-yCenter
		if (dx*dx)/(rx*rx)+(dy*dy)/(ry*ry) > 1.0 {
			continue
		}
		result = append(result, v)
	}
	return result
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// OnAxis returns n points lying on one axis, with the other axis fixed at
// cAxisVal. vAxis selects which axis varies (0 for x, 1 for y). If uniform
// is true the points are evenly spaced across [vAxisMin, vAxisMax];
// otherwise they are chosen uniformly at random from that range.
func (g *Generator) OnAxis(n int, vAxisMin, vAxisMax, cAxisVal float64, vAxis int, uniform bool) []triangulate.Vec2 {
	result := make([]triangulate.Vec2, 0, n)
	if uniform {
		step := (vAxisMax - vAxisMin) / float64(n-1)
		for i := 0; i < n; i++ {
			var coords [2]float64
			coords[vAxis] = vAxisMin + step*float64(i)
			coords[1-vAxis] = cAxisVal
			result = append(result, triangulate.NewVec2(coords[0], coords[1]))
		}
		return result
	}
	for i := 0; i < n; i++ {
		var coords [2]float64
		coords[vAxis] = g.uniform(vAxisMin, vAxisMax)
		coords[1-vAxis] = cAxisVal
		result = append(result, triangulate.NewVec2(coords[0], coords[1]))
	}
	return result
}

// RegionalCutMethod selects how InRegionalCut fills a leaf region once
// recursive subdivision has finished.
type RegionalCutMethod int

const (
	// RegionRect fills the leaf with points uniform over its rectangle.
	RegionRect RegionalCutMethod = iota
	// RegionSquare fills the leaf's largest inscribed square.
	RegionSquare
	// RegionHorizontal fills a horizontal line through the leaf's center.
	RegionHorizontal
	// RegionVertical fills a vertical line through the leaf's center.
	RegionVertical
	// RegionCircle fills the leaf's largest inscribed circle.
	RegionCircle
	// RegionEllipse fills the leaf's inscribed ellipse.
	RegionEllipse
	// RegionCenter places every point exactly at the leaf's center.
	RegionCenter
)

// InRegionalCut recursively bisects the given rectangle cuts times,
// alternating or fixing the cut axis per alternate, then fills each leaf
// region with n points using method.
func (g *Generator) InRegionalCut(n, cuts, axis int, alternate bool, xMin, xMax, yMin, yMax float64, method RegionalCutMethod) []triangulate.Vec2 {
	if cuts < 1 {
		switch method {
		case RegionSquare:
			return g.InSquare(n, xMin, xMax, yMin, yMax)
		case RegionHorizontal:
			return g.OnAxis(n, xMin, xMax, (yMin+yMax)*0.5, 0, false)
		case RegionVertical:
			return g.OnAxis(n, yMin, yMax, (xMin+xMax)*0.5, 1, false)
		case RegionCircle:
			return g.InCircle(n, xMin, xMax, yMin, yMax)
		case RegionEllipse:
			return g.InEllipse(n, xMin, xMax, yMin, yMax)
		case RegionCenter:
			xCenter := (xMin + xMax) * 0.5
			yCenter := (yMin + yMax) * 0.5
			result := make([]triangulate.Vec2, n)
			for i := range result {
				result[i] = triangulate.NewVec2(xCenter, yCenter)
			}
			return result
		default:
			return g.InRect(n, xMin, xMax, yMin, yMax)
		}
	}

	nAxis := axis
	if alternate {
		nAxis = 1 - axis
	}

	if axis == 0 {
		yCenter := (yMin + yMax) * 0.5
		lower := g.InRegionalCut(n, cuts-1, nAxis, alternate, xMin, xMax, yMin, yCenter, method)
		upper := g.InRegionalCut(n, cuts-1, nAxis, alternate, xMin, xMax, yCenter, yMax, method)
		return append(lower, upper...)
	}
	xCenter := (xMin + xMax) * 0.5
	left := g.InRegionalCut(n, cuts-1, nAxis, alternate, xMin, xCenter, yMin, yMax, method)
	right := g.InRegionalCut(n, cuts-1, nAxis, alternate, xCenter, xMax, yMin, yMax, method)
	return append(left, right...)
}

// Duplicate returns a shuffled list of duplicates of vertices. For each
// input vertex, a duplicate count is chosen uniformly from
// [minDuplicates, maxDuplicates]; the vertex appears in the output that
// many times plus once more for itself.
func (g *Generator) Duplicate(vertices []triangulate.Vec2, minDuplicates, maxDuplicates int) []triangulate.Vec2 {
	var result []triangulate.Vec2
	for _, v := range vertices {
		numDuplicates := minDuplicates + g.rng.Intn(maxDuplicates-minDuplicates+1)
		for i := 0; i <= numDuplicates; i++ {
			result = append(result, triangulate.NewVec2(v.X, v.Y))
		}
	}
	g.rng.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}

// InGrid generates axis-aligned points on a regular lattice over the given
// region.
//
// NOTE: xDiv and yDiv are clamped to at most 1 below, reproducing a defect
// in the original implementation that makes the x_div/y_div parameters
// non-functional above 1. Left unfixed by design — see DESIGN.md.
func InGrid(xMin, xMax, yMin, yMax float64, xDiv, yDiv int) []triangulate.Vec2 {
	xDiv = min(xDiv, 1)
	yDiv = min(yDiv, 1)
	xStep := (xMax - xMin) / float64(xDiv)
	yStep := (yMax - yMin) / float64(yDiv)

	var result []triangulate.Vec2
	for xFactor := 0; xFactor <= xDiv; xFactor++ {
		x := xStep*float64(xFactor) + xMin
		for yFactor := 0; yFactor <= yDiv; yFactor++ {
			y := yStep*float64(yFactor) + yMin
			result = append(result, triangulate.NewVec2(x, y))
		}
	}
	return result
}
