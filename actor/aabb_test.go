package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// =============================================================================
// AABB Utility Function Tests
// =============================================================================

func TestAABBOverlaps_Separated(t *testing.T) {
	tests := []struct {
		name  string
		aabb1 AABB
		aabb2 AABB
	}{
		{
			name:  "Separated on X axis (positive)",
			aabb1: AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{1, 1}},
			aabb2: AABB{Min: mgl64.Vec2{2, 0}, Max: mgl64.Vec2{3, 1}},
		},
		{
			name:  "Separated on X axis (negative)",
			aabb1: AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{1, 1}},
			aabb2: AABB{Min: mgl64.Vec2{-2, 0}, Max: mgl64.Vec2{-1, 1}},
		},
		{
			name:  "Separated on Y axis (positive)",
			aabb1: AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{1, 1}},
			aabb2: AABB{Min: mgl64.Vec2{0, 2}, Max: mgl64.Vec2{1, 3}},
		},
		{
			name:  "Separated on Y axis (negative)",
			aabb1: AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{1, 1}},
			aabb2: AABB{Min: mgl64.Vec2{0, -2}, Max: mgl64.Vec2{1, -1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.aabb1.Overlaps(tt.aabb2) {
				t.Errorf("AABBs should not overlap")
			}
			// Test symmetry
			if tt.aabb2.Overlaps(tt.aabb1) {
				t.Errorf("AABBs should not overlap (symmetry test)")
			}
		})
	}
}

func TestAABBOverlaps_Touching(t *testing.T) {
	tests := []struct {
		name  string
		aabb1 AABB
		aabb2 AABB
	}{
		{
			name:  "Sharing an edge",
			aabb1: AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{1, 1}},
			aabb2: AABB{Min: mgl64.Vec2{1, 0}, Max: mgl64.Vec2{2, 1}},
		},
		{
			name:  "Sharing a corner",
			aabb1: AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{1, 1}},
			aabb2: AABB{Min: mgl64.Vec2{1, 1}, Max: mgl64.Vec2{2, 2}},
		},
		{
			name:  "Contained",
			aabb1: AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{10, 10}},
			aabb2: AABB{Min: mgl64.Vec2{2, 2}, Max: mgl64.Vec2{3, 3}},
		},
		{
			name:  "Degenerate line box crossing",
			aabb1: AABB{Min: mgl64.Vec2{0, 5}, Max: mgl64.Vec2{10, 5}},
			aabb2: AABB{Min: mgl64.Vec2{5, 0}, Max: mgl64.Vec2{5, 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.aabb1.Overlaps(tt.aabb2) || !tt.aabb2.Overlaps(tt.aabb1) {
				t.Errorf("AABBs should overlap")
			}
		})
	}
}

func TestAABBContainsPoint(t *testing.T) {
	box := AABB{Min: mgl64.Vec2{-1, -1}, Max: mgl64.Vec2{1, 1}}

	tests := []struct {
		name     string
		point    mgl64.Vec2
		expected bool
	}{
		{"center", mgl64.Vec2{0, 0}, true},
		{"on min corner", mgl64.Vec2{-1, -1}, true},
		{"on max edge", mgl64.Vec2{1, 0.5}, true},
		{"outside x", mgl64.Vec2{1.01, 0}, false},
		{"outside y", mgl64.Vec2{0, -1.01}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.ContainsPoint(tt.point); got != tt.expected {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestAABBExpand(t *testing.T) {
	box := AABB{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{2, 4}}.Expand(1.5)

	if box.Min != (mgl64.Vec2{-1.5, -1.5}) {
		t.Errorf("Min = %v, want [-1.5 -1.5]", box.Min)
	}
	if box.Max != (mgl64.Vec2{3.5, 5.5}) {
		t.Errorf("Max = %v, want [3.5 5.5]", box.Max)
	}
}
