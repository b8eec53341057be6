// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangulate

import "testing"

func TestSide(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c    Vec2
		wantOrient Orientation
	}{
		{"left", NewVec2(0, 0), NewVec2(1, 0), NewVec2(0, 1), Left},
		{"right", NewVec2(0, 0), NewVec2(1, 0), NewVec2(0, -1), Right},
		{"collinear", NewVec2(0, 0), NewVec2(1, 0), NewVec2(2, 0), Collinear},
		{"collinear-reversed", NewVec2(0, 0), NewVec2(2, 0), NewVec2(1, 0), Collinear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Side(tt.a, tt.b, tt.c); got != tt.wantOrient {
				t.Errorf("Side(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.c, got, tt.wantOrient)
			}
		})
	}
}

func TestInCircle(t *testing.T) {
	a := NewVec2(0, 0)
	b := NewVec2(1, 0)
	c := NewVec2(0, 1)

	tests := []struct {
		name string
		d    Vec2
		want Position
	}{
		{"center-is-inside", NewVec2(0.25, 0.25), Inside},
		{"far-away-is-outside", NewVec2(10, 10), Outside},
		{"fourth-corner-of-unit-square-is-on", NewVec2(1, 1), On},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InCircle(a, b, c, tt.d); got != tt.want {
				t.Errorf("InCircle(%v,%v,%v,%v) = %v, want %v", a, b, c, tt.d, got, tt.want)
			}
		})
	}
}
