// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangulate

import (
	"fmt"
	"sort"
)

// MergeMethod selects the algorithm used to stitch two triangulated halves
// together during divide-and-conquer.
type MergeMethod int

const (
	// MergeArbitrary produces a valid triangulation with no guarantee of
	// the Delaunay property. Call EnforceDelaunay afterwards if that
	// property is required.
	MergeArbitrary MergeMethod = iota
	// MergeFlip is advertised by the data model but not implemented.
	MergeFlip
	// MergeDelaunay is advertised by the data model but not implemented.
	MergeDelaunay
)

func (m MergeMethod) String() string {
	switch m {
	case MergeArbitrary:
		return "arbitrary"
	case MergeFlip:
		return "flip"
	case MergeDelaunay:
		return "delaunay"
	default:
		return fmt.Sprintf("MergeMethod(%d)", int(m))
	}
}

// CutMethod selects how the vertex set is sorted and split before merging.
type CutMethod int

const (
	// CutVertical sorts vertices x-major, then y-major, and splits the
	// sorted sequence in half.
	CutVertical CutMethod = iota
	// CutHorizontal is advertised by the data model but not implemented.
	CutHorizontal
	// CutAlternating is advertised by the data model but not implemented.
	CutAlternating
)

func (c CutMethod) String() string {
	switch c {
	case CutVertical:
		return "vertical"
	case CutHorizontal:
		return "horizontal"
	case CutAlternating:
		return "alternating"
	default:
		return fmt.Sprintf("CutMethod(%d)", int(c))
	}
}

// Segment is a constraint edge between two of the vertices passed to New,
// identified by their original (pre-sort) indices.
type Segment struct {
	I, J int
}

type options struct {
	epsilon float64
}

// Option configures a Triangulation constructed by New.
type Option func(*options) error

// WithEpsilon overrides the distance tolerance used to dedupe coincident
// input vertices. eps must be positive.
func WithEpsilon(eps float64) Option {
	return func(o *options) error {
		if eps <= 0 {
			return fmt.Errorf("triangulate: epsilon must be positive, got %v", eps)
		}
		o.epsilon = eps
		return nil
	}
}

// Triangulation is a 2D Delaunay triangulation built by recursive
// divide-and-conquer over an index-addressed triangle mesh.
//
// Vertices, Indices, Segments, and Triangles are populated by Triangulate
// and are nil beforehand.
type Triangulation struct {
	// Vertices holds the sorted, deduplicated point set actually
	// triangulated.
	Vertices []Vec2
	// Indices maps each original input vertex (by position in the slice
	// passed to New) to its index in Vertices, after dedup.
	Indices []int
	// Segments holds the constraint edges passed to New, reindexed
	// against Vertices and canonicalized as (min, max).
	Segments []Segment
	// Triangles holds every triangle in the mesh, existent and ghost.
	Triangles []Triangle

	origVertices []Vec2
	origSegments []Segment
	epsilon      float64
}

// New builds a Triangulation over vertices, constrained by segments (whose
// endpoints index into vertices). Call Triangulate to actually build the
// mesh.
func New(vertices []Vec2, segments []Segment, opts ...Option) (*Triangulation, error) {
	o := options{epsilon: defaultVecEpsilon}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	origVertices := make([]Vec2, len(vertices))
	copy(origVertices, vertices)
	origSegments := make([]Segment, len(segments))
	copy(origSegments, segments)

	return &Triangulation{
		origVertices: origVertices,
		origSegments: origSegments,
		epsilon:      o.epsilon,
	}, nil
}

// Triangulate (re)builds the mesh from the vertices and segments passed to
// New, using the given merge and cut strategies. Only MergeArbitrary and
// CutVertical are implemented; any other combination returns
// ErrUnsupportedMode.
func (t *Triangulation) Triangulate(merge MergeMethod, cut CutMethod) error {
	if merge != MergeArbitrary {
		return fmt.Errorf("triangulate: merge method %s: %w", merge, ErrUnsupportedMode)
	}
	if cut != CutVertical {
		return fmt.Errorf("triangulate: cut method %s: %w", cut, ErrUnsupportedMode)
	}

	t.Triangles = nil
	t.sortAndDedup()
	if len(t.Vertices) < 2 {
		return nil
	}
	t.divideAndConquer(0, len(t.Vertices))
	return nil
}

// sortAndDedup sorts origVertices x-major/y-major, merges points within
// t.epsilon of the preceding sorted point (see Vec2.Equivalent), and
// rewrites Indices/Segments against the deduplicated, sorted result.
func (t *Triangulation) sortAndDedup() {
	n := len(t.origVertices)
	t.Indices = make([]int, n)
	if n == 0 {
		t.Vertices = nil
		t.Segments = nil
		return
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return t.origVertices[order[i]].Less(t.origVertices[order[j]])
	})

	vertices := make([]Vec2, 0, n)
	vertices = append(vertices, t.origVertices[order[0]])
	t.Indices[order[0]] = 0
	for _, origIdx := range order[1:] {
		v := t.origVertices[origIdx]
		last := vertices[len(vertices)-1]
		if last.Equivalent(v, t.epsilon) {
			t.Indices[origIdx] = len(vertices) - 1
			continue
		}
		t.Indices[origIdx] = len(vertices)
		vertices = append(vertices, v)
	}
	t.Vertices = vertices

	segments := make([]Segment, 0, len(t.origSegments))
	for _, s := range t.origSegments {
		a, b := t.Indices[s.I], t.Indices[s.J]
		if a > b {
			a, b = b, a
		}
		segments = append(segments, Segment{a, b})
	}
	t.Segments = segments
}

func (t *Triangulation) appendTriangle(tri Triangle) int {
	idx := len(t.Triangles)
	t.Triangles = append(t.Triangles, tri)
	return idx
}

func (t *Triangulation) side(a, b, c int) Orientation {
	return Side(t.Vertices[a], t.Vertices[b], t.Vertices[c])
}

// trivialTriangulation handles the base case of divide-and-conquer: two or
// three vertices. It returns the indices of the four ghost triangles
// conventionally named 2, 3, 6, and 7 in the merge step, which identify the
// upper-left, lower-left, lower-right, and upper-right hull edges of the
// sub-triangulation respectively.
func (t *Triangulation) trivialTriangulation(begin, end int) (tri2, tri3, tri6, tri7 int) {
	numT := len(t.Triangles)
	n := end - begin

	if n < 3 {
		t.appendTriangle(Triangle{V: [3]int{begin, begin + 1, NoVertex}, N: [3]int{numT + 1, numT + 1, numT + 1}})
		t.appendTriangle(Triangle{V: [3]int{begin + 1, begin, NoVertex}, N: [3]int{numT, numT, numT}})
		return numT, numT + 1, numT + 1, numT
	}

	orientation := t.side(begin, begin+1, begin+2)
	switch orientation {
	case Left:
		endV, leftV := begin+1, begin+2
		t.appendTriangle(Triangle{V: [3]int{begin, endV, leftV}, N: [3]int{numT + 1, numT + 2, numT + 3}})
		t.appendTriangle(Triangle{V: [3]int{endV, begin, NoVertex}, N: [3]int{numT, numT + 3, numT + 2}})
		t.appendTriangle(Triangle{V: [3]int{leftV, endV, NoVertex}, N: [3]int{numT, numT + 1, numT + 3}})
		t.appendTriangle(Triangle{V: [3]int{begin, leftV, NoVertex}, N: [3]int{numT, numT + 2, numT + 1}})
		return numT + 3, numT + 1, numT + 2, numT + 3
	case Right:
		endV, leftV := begin+2, begin+1
		t.appendTriangle(Triangle{V: [3]int{begin, endV, leftV}, N: [3]int{numT + 1, numT + 2, numT + 3}})
		t.appendTriangle(Triangle{V: [3]int{endV, begin, NoVertex}, N: [3]int{numT, numT + 3, numT + 2}})
		t.appendTriangle(Triangle{V: [3]int{leftV, endV, NoVertex}, N: [3]int{numT, numT + 1, numT + 3}})
		t.appendTriangle(Triangle{V: [3]int{begin, leftV, NoVertex}, N: [3]int{numT, numT + 2, numT + 1}})
		return numT + 3, numT + 1, numT + 1, numT + 2
	default: // Collinear
		t.appendTriangle(Triangle{V: [3]int{begin, begin + 1, NoVertex}, N: [3]int{numT + 1, numT + 2, numT + 1}})
		t.appendTriangle(Triangle{V: [3]int{begin + 1, begin, NoVertex}, N: [3]int{numT, numT, numT + 3}})
		t.appendTriangle(Triangle{V: [3]int{begin + 1, begin + 2, NoVertex}, N: [3]int{numT + 3, numT + 3, numT}})
		t.appendTriangle(Triangle{V: [3]int{begin + 2, begin + 1, NoVertex}, N: [3]int{numT + 2, numT + 1, numT + 2}})
		return numT, numT + 1, numT + 3, numT + 2
	}
}

// mergeArbitrary stitches the left sub-triangulation (whose lower-right and
// upper-right hull ghosts are triL6 and triL7) to the right sub-triangulation
// (whose upper-left and lower-left hull ghosts are triR2 and triR3),
// resurrecting one of those four ghosts into the initial cross-hull triangle
// and then walking upward and downward along the merge seam.
func (t *Triangulation) mergeArbitrary(triL6, triL7, triR2, triR3 int) {
	lrV := t.Triangles[triL6].V[0]
	lruV := t.Triangles[triL7].V[0]
	lrdV := t.Triangles[triL6].V[1]
	rlV := t.Triangles[triR2].V[0]
	rluV := t.Triangles[triR2].V[1]
	rldV := t.Triangles[triR3].V[0]

	var initialTri, initialV int
	var initialBasedLeft bool
	var initialOppositeTri, laterOppositeTri int

	switch {
	case t.side(lruV, lrV, rlV) == Left:
		initialTri, initialV, initialBasedLeft = triL7, rlV, true
		initialOppositeTri, laterOppositeTri = triR2, triR3
	case t.side(lrdV, lrV, rlV) == Right:
		initialTri, initialV, initialBasedLeft = triL6, rlV, true
		initialOppositeTri, laterOppositeTri = triR2, triR3
	case t.side(lrV, rlV, rluV) == Left:
		initialTri, initialV, initialBasedLeft = triR2, lrV, false
		initialOppositeTri, laterOppositeTri = triL7, triL6
	case t.side(lrV, rlV, rldV) == Right:
		initialTri, initialV, initialBasedLeft = triR3, lrV, false
		initialOppositeTri, laterOppositeTri = triL7, triL6
	default:
		numT := len(t.Triangles)
		t.Triangles[triL7].N[1] = numT
		t.Triangles[triR2].N[2] = numT
		t.Triangles[triL6].N[2] = numT + 1
		t.Triangles[triR3].N[1] = numT + 1
		t.appendTriangle(Triangle{V: [3]int{lrV, rlV, NoVertex}, N: [3]int{numT + 1, triR2, triL7}})
		t.appendTriangle(Triangle{V: [3]int{rlV, lrV, NoVertex}, N: [3]int{numT, triL6, triR3}})
		return
	}

	t.Triangles[initialTri].V[2] = initialV

	basedLeft := initialBasedLeft
	currentTri := initialTri
	oppositeTri := initialOppositeTri

upLoop:
	for {
		var lV, rV, lgTri, rgTri, luV, ruV, cTriNeighbor int
		if basedLeft {
			lV = t.Triangles[currentTri].V[0]
			rV = t.Triangles[currentTri].V[2]
			lgTri = t.Triangles[currentTri].N[2]
			rgTri = oppositeTri
			luV = t.Triangles[lgTri].V[0]
			ruV = t.Triangles[oppositeTri].V[1]
			cTriNeighbor = 2
		} else {
			lV = t.Triangles[currentTri].V[2]
			rV = t.Triangles[currentTri].V[1]
			lgTri = oppositeTri
			rgTri = t.Triangles[currentTri].N[1]
			luV = t.Triangles[oppositeTri].V[0]
			ruV = t.Triangles[rgTri].V[1]
			cTriNeighbor = 1
		}

		switch {
		case t.side(luV, lV, rV) == Left:
			t.Triangles[lgTri].V[2] = rV
			t.Triangles[lgTri].N[1] = currentTri
			t.Triangles[currentTri].N[cTriNeighbor] = lgTri
			if !basedLeft {
				oppositeTri = rgTri
			}
			basedLeft = true
			currentTri = lgTri
		case t.side(ruV, rV, lV) == Right:
			t.Triangles[rgTri].V[2] = lV
			t.Triangles[rgTri].N[2] = currentTri
			t.Triangles[currentTri].N[cTriNeighbor] = rgTri
			if basedLeft {
				oppositeTri = lgTri
			}
			basedLeft = false
			currentTri = rgTri
		default:
			numTri := len(t.Triangles)
			if basedLeft {
				rgTri = oppositeTri
				lgTri = t.Triangles[currentTri].N[2]
				t.Triangles[currentTri].N[2] = numTri
			} else {
				rgTri = t.Triangles[currentTri].N[1]
				lgTri = oppositeTri
				t.Triangles[currentTri].N[1] = numTri
			}
			t.Triangles[rgTri].N[2] = numTri
			t.Triangles[lgTri].N[1] = numTri
			t.appendTriangle(Triangle{V: [3]int{lV, rV, NoVertex}, N: [3]int{currentTri, rgTri, lgTri}})
			break upLoop
		}
	}

	basedLeft = initialBasedLeft
	currentTri = initialTri
	oppositeTri = laterOppositeTri

downLoop:
	for {
		var lV, rV, lgTri, rgTri, ldV, rdV, cTriNeighbor int
		if basedLeft {
			lV = t.Triangles[currentTri].V[1]
			rV = t.Triangles[currentTri].V[2]
			lgTri = t.Triangles[currentTri].N[1]
			rgTri = oppositeTri
			ldV = t.Triangles[lgTri].V[1]
			rdV = t.Triangles[oppositeTri].V[0]
			cTriNeighbor = 1
		} else {
			lV = t.Triangles[currentTri].V[2]
			rV = t.Triangles[currentTri].V[0]
			lgTri = oppositeTri
			rgTri = t.Triangles[currentTri].N[2]
			ldV = t.Triangles[oppositeTri].V[1]
			rdV = t.Triangles[rgTri].V[0]
			cTriNeighbor = 2
		}

		switch {
		case t.side(ldV, lV, rV) == Right:
			t.Triangles[lgTri].V[2] = rV
			t.Triangles[lgTri].N[2] = currentTri
			t.Triangles[currentTri].N[cTriNeighbor] = lgTri
			if !basedLeft {
				oppositeTri = rgTri
			}
			basedLeft = true
			currentTri = lgTri
		case t.side(rdV, rV, lV) == Left:
			t.Triangles[rgTri].V[2] = lV
			t.Triangles[rgTri].N[1] = currentTri
			t.Triangles[currentTri].N[cTriNeighbor] = rgTri
			if basedLeft {
				oppositeTri = lgTri
			}
			basedLeft = false
			currentTri = rgTri
		default:
			numTri := len(t.Triangles)
			if basedLeft {
				rgTri = t.Triangles[currentTri].N[1]
				lgTri = oppositeTri
				t.Triangles[currentTri].N[1] = numTri
			} else {
				rgTri = oppositeTri
				lgTri = t.Triangles[currentTri].N[2]
				t.Triangles[currentTri].N[2] = numTri
			}
			t.Triangles[rgTri].N[2] = numTri
			t.Triangles[lgTri].N[1] = numTri
			t.appendTriangle(Triangle{V: [3]int{rV, lV, NoVertex}, N: [3]int{currentTri, rgTri, lgTri}})
			break downLoop
		}
	}
}

// walkToGhost walks the ghost chain starting at tri (taking firstNeighbor
// on the first hop and restNeighbor on every subsequent hop) until it lands
// on a ghost triangle.
func (t *Triangulation) walkToGhost(tri, firstNeighbor, restNeighbor int) int {
	firstDone := false
	for t.Triangles[tri].Existent() {
		if firstDone {
			tri = t.Triangles[tri].N[restNeighbor]
		} else {
			tri = t.Triangles[tri].N[firstNeighbor]
			firstDone = true
		}
	}
	return tri
}

// findGhosts rediscovers the four hull ghosts (2, 3, 6, 7) of a just-merged
// sub-triangulation by walking outward from its pre-merge ghosts, which may
// have been resurrected into existent triangles during the merge.
func (t *Triangulation) findGhosts(triL2, triL3, triR6, triR7 int) (tri2, tri3, tri6, tri7 int) {
	tri2 = t.walkToGhost(triL2, 2, 1)
	tri3 = t.walkToGhost(triL3, 1, 2)
	tri6 = t.walkToGhost(triR6, 2, 1)
	tri7 = t.walkToGhost(triR7, 1, 2)
	return tri2, tri3, tri6, tri7
}

// divideAndConquer recursively triangulates Vertices[begin:end], already
// sorted, and returns the four hull ghosts (2, 3, 6, 7) of the result.
func (t *Triangulation) divideAndConquer(begin, end int) (int, int, int, int) {
	if end-begin < 4 {
		return t.trivialTriangulation(begin, end)
	}
	divider := (end-begin)>>1 + begin
	triL2, triL3, triL6, triL7 := t.divideAndConquer(begin, divider)
	triR2, triR3, triR6, triR7 := t.divideAndConquer(divider, end)
	t.mergeArbitrary(triL6, triL7, triR2, triR3)
	return t.findGhosts(triL2, triL3, triR6, triR7)
}

func canonicalEdge(a, b int) [2]int {
	if a > b {
		return [2]int{b, a}
	}
	return [2]int{a, b}
}

type edgeEntry struct {
	edge   [2]int
	tIndex int
	nIndex int
}

// EnforceDelaunay performs a FIFO edge-flip pass over Triangles, starting
// from every interior edge shared by two existent triangles, flipping any
// edge whose opposite vertex lies inside the circumcircle of its
// neighboring triangle, and re-queuing the edges newly exposed by each
// flip. It mutates Triangles in place and returns ErrInvariantViolation if
// the mesh is not topologically consistent.
func (t *Triangulation) EnforceDelaunay() error {
	seen := make(map[[2]int]bool)
	var queue []edgeEntry
	for ti, tri := range t.Triangles {
		if tri.Ghost() {
			continue
		}
		for ni := 0; ni < 3; ni++ {
			if t.Triangles[tri.N[ni]].Ghost() {
				continue
			}
			edge := canonicalEdge(tri.V[ni], tri.V[(ni+1)%3])
			if seen[edge] {
				continue
			}
			seen[edge] = true
			queue = append(queue, edgeEntry{edge, ti, ni})
		}
	}

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		triangleI := t.Triangles[e.tIndex]
		if triangleI.Ghost() {
			continue
		}
		if canonicalEdge(triangleI.V[e.nIndex], triangleI.V[(e.nIndex+1)%3]) != e.edge {
			continue
		}

		tIndexJ := triangleI.N[e.nIndex]
		triangleJ := t.Triangles[tIndexJ]
		nIndexJ := -1
		for j := 0; j < 3; j++ {
			if canonicalEdge(triangleJ.V[j], triangleJ.V[(j+1)%3]) == e.edge {
				nIndexJ = j
				break
			}
		}
		if nIndexJ == -1 {
			return ErrInvariantViolation
		}

		vIndexI := triangleI.V[(e.nIndex+2)%3]
		vIndexJ := triangleJ.V[(nIndexJ+2)%3]

		if InCircle(t.Vertices[triangleI.V[0]], t.Vertices[triangleI.V[1]], t.Vertices[triangleI.V[2]], t.Vertices[vIndexJ]) != Inside {
			continue
		}

		tIndexI1 := triangleI.N[(e.nIndex+1)%3]
		tIndexI2 := triangleI.N[(e.nIndex+2)%3]
		tIndexJ1 := triangleJ.N[(nIndexJ+1)%3]
		tIndexJ2 := triangleJ.N[(nIndexJ+2)%3]

		for i := range t.Triangles[tIndexI1].N {
			if t.Triangles[tIndexI1].N[i] == e.tIndex {
				t.Triangles[tIndexI1].N[i] = tIndexJ
				break
			}
		}
		for i := range t.Triangles[tIndexJ1].N {
			if t.Triangles[tIndexJ1].N[i] == tIndexJ {
				t.Triangles[tIndexJ1].N[i] = e.tIndex
				break
			}
		}

		var newTriI, newTriJ Triangle
		newTriI.N = [3]int{tIndexJ, tIndexI2, tIndexJ1}
		newTriJ.N = [3]int{e.tIndex, tIndexJ2, tIndexI1}
		if triangleI.V[e.nIndex] == e.edge[0] {
			newTriI.V = [3]int{vIndexJ, vIndexI, e.edge[0]}
			newTriJ.V = [3]int{vIndexI, vIndexJ, e.edge[1]}
		} else {
			newTriI.V = [3]int{vIndexJ, vIndexI, e.edge[1]}
			newTriJ.V = [3]int{vIndexI, vIndexJ, e.edge[0]}
		}

		triangleI1 := t.Triangles[tIndexI1]
		triangleI2 := t.Triangles[tIndexI2]
		triangleJ1 := t.Triangles[tIndexJ1]
		triangleJ2 := t.Triangles[tIndexJ2]

		t.Triangles[e.tIndex] = newTriI
		t.Triangles[tIndexJ] = newTriJ

		if triangleI2.Existent() {
			queue = append(queue, edgeEntry{canonicalEdge(newTriI.V[1], newTriI.V[2]), e.tIndex, 1})
		}
		if triangleJ1.Existent() {
			queue = append(queue, edgeEntry{canonicalEdge(newTriI.V[0], newTriI.V[2]), e.tIndex, 2})
		}
		if triangleJ2.Existent() {
			queue = append(queue, edgeEntry{canonicalEdge(newTriJ.V[1], newTriJ.V[2]), tIndexJ, 1})
		}
		if triangleI1.Existent() {
			queue = append(queue, edgeEntry{canonicalEdge(newTriJ.V[0], newTriJ.V[2]), tIndexJ, 2})
		}
	}
	return nil
}
