// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangulate

import "errors"

var (
	// ErrUnsupportedMode is returned by Triangulate when asked for a merge
	// or cut method that is advertised but not implemented (MergeFlip,
	// MergeDelaunay, CutHorizontal, CutAlternating).
	ErrUnsupportedMode = errors.New("triangulate: mode not implemented")

	// ErrInvariantViolation is returned by EnforceDelaunay if a neighbor
	// triangle does not carry the expected back-reference to the shared
	// edge. This indicates the triangulation passed in was not a complete,
	// topologically-consistent mesh.
	ErrInvariantViolation = errors.New("triangulate: neighbor triangle missing shared edge back-reference")
)
