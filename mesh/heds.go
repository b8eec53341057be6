// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package mesh holds passive, index-addressed mesh representations: a
// half-edge data structure (HEDS) and an indexed face set (IFS). Both are
// plain records with no methods; FromSolid fills an IFS from a bsp.Solid,
// and nothing in this module populates a HEDS.
package mesh

import "github.com/2dChan/geocore/bsp"

// HalfEdge is one half-edge of a HEDS mesh: it runs from Source to the
// source of the half-edge at Successor, bordering Face.
type HalfEdge struct {
	Source    int
	Face      int
	Successor int
}

// Vertex is a HEDS mesh vertex. InHalfEdge indexes an arbitrary half-edge
// whose destination is this vertex. Data is an optional index into
// caller-owned data associated with the vertex; -1 means none.
type Vertex struct {
	Position   bsp.Vec3
	InHalfEdge int
	Data       int
}

// Face is a HEDS mesh face. HalfEdge indexes an arbitrary half-edge on the
// face's outer boundary. Hole indexes the first of the face's holes in a
// HEDS's Holes slice, or -1 if the face has none. Data is an optional index
// into caller-owned data associated with the face; -1 means none.
type Face struct {
	HalfEdge int
	Hole     int
	Data     int
}

// Hole is one hole in a Face's boundary. HalfEdge indexes an arbitrary
// half-edge on the hole's boundary. Successor indexes the next hole in the
// same face's hole list, or -1 if this is the last one.
type Hole struct {
	HalfEdge  int
	Successor int
}

// HEDS is a half-edge mesh: a set of half-edges, vertices, faces, and
// holes, cross-referenced by index.
type HEDS struct {
	HalfEdges []HalfEdge
	Vertices  []Vertex
	Faces     []Face
	Holes     []Hole
}
