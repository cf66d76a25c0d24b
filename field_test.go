package putt

import (
	"errors"
	"math"
	"testing"

	"github.com/akmonengine/putt/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// Test helper functions

// createField returns an empty 400x400 field of 20x20 tiles
func createField(t *testing.T) *Field {
	t.Helper()
	field, err := NewField(20, 20, 20, 20)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	return field
}

func insertSegment(t *testing.T, field *Field, p1, p2 mgl64.Vec2) *actor.Segment {
	t.Helper()
	segment, err := actor.NewSegment(p1, p2)
	if err != nil {
		t.Fatalf("NewSegment: %v", err)
	}
	if err := field.Insert(segment); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	return field.Segments()[len(field.Segments())-1]
}

func createBall(t *testing.T, position mgl64.Vec2, radius float64, velocity mgl64.Vec2) actor.Ball {
	t.Helper()
	ball, err := actor.NewBall(position, radius)
	if err != nil {
		t.Fatalf("NewBall: %v", err)
	}
	ball.SetVelocity(velocity)
	return *ball
}

func TestNewField_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		w, h       float64
	}{
		{"no columns", 0, 10, 20, 20},
		{"negative rows", 10, -1, 20, 20},
		{"zero tile width", 10, 10, 0, 20},
		{"negative tile height", 10, 10, 20, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewField(tt.cols, tt.rows, tt.w, tt.h)
			if !errors.Is(err, ErrInvalidField) {
				t.Errorf("expected ErrInvalidField, got %v", err)
			}
		})
	}
}

func TestWorldToCell(t *testing.T) {
	field := createField(t)

	tests := []struct {
		name     string
		position mgl64.Vec2
		expected CellKey
	}{
		{"origin", mgl64.Vec2{0, 0}, CellKey{0, 0}},
		{"inside", mgl64.Vec2{45, 81}, CellKey{2, 4}},
		{"on border", mgl64.Vec2{40, 60}, CellKey{2, 3}},
		{"negative", mgl64.Vec2{-0.5, -21}, CellKey{-1, -1}},
		{"beyond", mgl64.Vec2{410, 399.9}, CellKey{20, 19}},
		{"huge", mgl64.Vec2{1e22, -1e22}, CellKey{20, -1}},
		{"infinite", mgl64.Vec2{math.Inf(1), math.Inf(-1)}, CellKey{20, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := field.worldToCell(tt.position)
			if result != tt.expected {
				t.Errorf("worldToCell(%v) = %v, want %v", tt.position, result, tt.expected)
			}
		})
	}
}

func TestField_Insert(t *testing.T) {
	t.Run("segment on a tile border is referenced by both tiles", func(t *testing.T) {
		field := createField(t)
		insertSegment(t, field, mgl64.Vec2{120, 0}, mgl64.Vec2{120, 20})

		left := field.cells[field.cellIndex(CellKey{5, 0})].segmentIndices
		right := field.cells[field.cellIndex(CellKey{6, 0})].segmentIndices
		if len(left) != 1 || len(right) != 1 {
			t.Errorf("expected the segment in tiles (5,0) and (6,0), got %v and %v", left, right)
		}
	})

	t.Run("long segment spans every tile on its way", func(t *testing.T) {
		field := createField(t)
		insertSegment(t, field, mgl64.Vec2{10, 30}, mgl64.Vec2{90, 30})

		for x := 0; x <= 4; x++ {
			if n := len(field.cells[field.cellIndex(CellKey{x, 1})].segmentIndices); n != 1 {
				t.Errorf("tile (%d,1) holds %d segments, want 1", x, n)
			}
		}
		if n := len(field.cells[field.cellIndex(CellKey{5, 1})].segmentIndices); n != 0 {
			t.Errorf("tile (5,1) holds %d segments, want 0", n)
		}
	})

	t.Run("field border segments are accepted", func(t *testing.T) {
		field := createField(t)
		insertSegment(t, field, mgl64.Vec2{0, 0}, mgl64.Vec2{400, 0})
		insertSegment(t, field, mgl64.Vec2{400, 0}, mgl64.Vec2{400, 400})

		if len(field.Segments()) != 2 {
			t.Errorf("expected 2 segments, got %d", len(field.Segments()))
		}
	})

	t.Run("segment outside of the field is rejected", func(t *testing.T) {
		field := createField(t)
		segment, _ := actor.NewSegment(mgl64.Vec2{390, 10}, mgl64.Vec2{420, 10})

		if err := field.Insert(segment); !errors.Is(err, ErrOutOfField) {
			t.Errorf("expected ErrOutOfField, got %v", err)
		}
		if len(field.Segments()) != 0 {
			t.Errorf("rejected segment must not be stored")
		}
	})
}

func TestField_SegmentsNear(t *testing.T) {
	field := createField(t)
	shared := insertSegment(t, field, mgl64.Vec2{120, 0}, mgl64.Vec2{120, 40})
	far := insertSegment(t, field, mgl64.Vec2{300, 300}, mgl64.Vec2{340, 300})

	t.Run("deduplicates segments referenced by several tiles", func(t *testing.T) {
		region := actor.AABB{Min: mgl64.Vec2{100, 0}, Max: mgl64.Vec2{140, 40}}
		segments := field.SegmentsNear(region)

		if len(segments) != 1 || segments[0] != shared {
			t.Errorf("expected only the shared segment once, got %v", segments)
		}
	})

	t.Run("skips tiles not overlapping the region", func(t *testing.T) {
		region := actor.AABB{Min: mgl64.Vec2{280, 280}, Max: mgl64.Vec2{320, 320}}
		segments := field.SegmentsNear(region)

		if len(segments) != 1 || segments[0] != far {
			t.Errorf("expected only the far segment, got %v", segments)
		}
	})

	t.Run("region partly outside is clamped", func(t *testing.T) {
		region := actor.AABB{Min: mgl64.Vec2{-100, -100}, Max: mgl64.Vec2{125, 10}}
		segments := field.SegmentsNear(region)

		if len(segments) != 1 || segments[0] != shared {
			t.Errorf("expected the shared segment, got %v", segments)
		}
	})

	t.Run("region fully outside", func(t *testing.T) {
		region := actor.AABB{Min: mgl64.Vec2{500, 500}, Max: mgl64.Vec2{600, 600}}
		if segments := field.SegmentsNear(region); len(segments) != 0 {
			t.Errorf("expected no segment, got %v", segments)
		}
	})

	t.Run("whole field in insertion order", func(t *testing.T) {
		segments := field.SegmentsNear(field.Bounds())
		if len(segments) != 2 || segments[0] != shared || segments[1] != far {
			t.Errorf("expected both segments in order, got %v", segments)
		}
	})
}

func TestField_Start(t *testing.T) {
	field := createField(t)

	if err := field.SetStart(CellKey{1, 10}); err != nil {
		t.Fatalf("SetStart: %v", err)
	}
	if field.Start() != (CellKey{1, 10}) {
		t.Errorf("Start() = %v, want {1 10}", field.Start())
	}
	if field.StartPosition() != (mgl64.Vec2{30, 210}) {
		t.Errorf("StartPosition() = %v, want [30 210]", field.StartPosition())
	}
	if err := field.SetStart(CellKey{20, 0}); !errors.Is(err, ErrOutOfField) {
		t.Errorf("expected ErrOutOfField, got %v", err)
	}
}
