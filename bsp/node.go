// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package bsp

// Node is one node of a binary space partitioning tree: a splitting plane,
// the polygons lying in that plane, and the front/back subtrees holding
// everything else.
type Node struct {
	Plane    *Plane
	Front    *Node
	Back     *Node
	Polygons []Polygon
}

// NewNode returns a Node built from polygons. A nil or empty slice returns
// an empty node with no splitting plane.
func NewNode(polygons []Polygon) *Node {
	n := &Node{}
	if len(polygons) > 0 {
		n.Build(polygons)
	}
	return n
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	clone := &Node{}
	if n.Plane != nil {
		p := n.Plane.Clone()
		clone.Plane = &p
	}
	if n.Front != nil {
		clone.Front = n.Front.Clone()
	}
	if n.Back != nil {
		clone.Back = n.Back.Clone()
	}
	clone.Polygons = make([]Polygon, len(n.Polygons))
	for i, p := range n.Polygons {
		clone.Polygons[i] = p.Clone()
	}
	return clone
}

// Invert swaps the front and back half-spaces of the subtree rooted at n,
// turning solid space into empty space and vice versa.
func (n *Node) Invert() {
	for i, p := range n.Polygons {
		n.Polygons[i] = p.Flip()
	}
	if n.Plane != nil {
		flipped := n.Plane.Flip()
		n.Plane = &flipped
	}
	if n.Front != nil {
		n.Front.Invert()
	}
	if n.Back != nil {
		n.Back.Invert()
	}
	n.Front, n.Back = n.Back, n.Front
}

// ClipPolygons removes the portions of polygons that lie inside the solid
// space represented by the subtree rooted at n, returning what remains.
func (n *Node) ClipPolygons(polygons []Polygon) []Polygon {
	if n.Plane == nil {
		out := make([]Polygon, len(polygons))
		copy(out, polygons)
		return out
	}

	var front, back []Polygon
	for _, p := range polygons {
		n.Plane.SplitPolygon(p, &front, &back, &front, &back)
	}
	if n.Front != nil {
		front = n.Front.ClipPolygons(front)
	}
	if n.Back != nil {
		back = n.Back.ClipPolygons(back)
	} else {
		back = nil
	}
	return append(front, back...)
}

// ClipTo removes everything in n that lies inside the solid space of bsp.
func (n *Node) ClipTo(bsp *Node) {
	n.Polygons = bsp.ClipPolygons(n.Polygons)
	if n.Front != nil {
		n.Front.ClipTo(bsp)
	}
	if n.Back != nil {
		n.Back.ClipTo(bsp)
	}
}

// AllPolygons returns every polygon stored in the subtree rooted at n.
func (n *Node) AllPolygons() []Polygon {
	polygons := make([]Polygon, len(n.Polygons))
	copy(polygons, n.Polygons)
	if n.Front != nil {
		polygons = append(polygons, n.Front.AllPolygons()...)
	}
	if n.Back != nil {
		polygons = append(polygons, n.Back.AllPolygons()...)
	}
	return polygons
}

// Build inserts polygons into the subtree rooted at n. The first polygon is
// kept at n, and n's plane is taken from it if one is not already set; the
// rest are split against n's plane, coplanar ones staying at n and the
// others going to the front and back subtrees.
func (n *Node) Build(polygons []Polygon) {
	if len(polygons) < 1 {
		return
	}
	if n.Plane == nil {
		p := polygons[0].Plane.Clone()
		n.Plane = &p
	}
	n.Polygons = append(n.Polygons, polygons[0])

	var front, back []Polygon
	for _, p := range polygons[1:] {
		n.Plane.SplitPolygon(p, &n.Polygons, &n.Polygons, &front, &back)
	}
	if len(front) > 0 {
		if n.Front == nil {
			n.Front = &Node{}
		}
		n.Front.Build(front)
	}
	if len(back) > 0 {
		if n.Back == nil {
			n.Back = &Node{}
		}
		n.Back.Build(back)
	}
}
