package putt

import (
	"errors"
	"fmt"
	"math"

	"github.com/akmonengine/putt/actor"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrInvalidField = errors.New("putt: invalid field dimensions")
	ErrOutOfField   = errors.New("putt: outside of the field")
)

// CellKey - coordinates of a tile in the field
type CellKey struct {
	X, Y int
}

// Cell - indices of the segments touching a tile
type Cell struct {
	segmentIndices []int
}

// Field is the static obstacle field: a grid of tiles, each one referencing the
// segments that touch it. It is filled once when the level is loaded and only
// read afterwards, so several simulations may share it.
type Field struct {
	tileWidth  float64
	tileHeight float64
	cols       int
	rows       int
	cells      []Cell
	segments   []*actor.Segment
	start      CellKey
}

// NewField creates an empty field of cols x rows tiles
func NewField(cols, rows int, tileWidth, tileHeight float64) (*Field, error) {
	if cols <= 0 || rows <= 0 || !(tileWidth > 0) || !(tileHeight > 0) {
		return nil, fmt.Errorf("%w: %dx%d tiles of %vx%v", ErrInvalidField, cols, rows, tileWidth, tileHeight)
	}

	return &Field{
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		cols:       cols,
		rows:       rows,
		cells:      make([]Cell, cols*rows),
	}, nil
}

// Insert stores the segment and references it from every tile it touches.
// A segment lying on the border of two tiles is referenced by both.
func (f *Field) Insert(segment actor.Segment) error {
	box := segment.AABB()
	bounds := f.Bounds().Expand(actor.EPSILON)
	if !bounds.ContainsPoint(box.Min) || !bounds.ContainsPoint(box.Max) {
		return fmt.Errorf("%w: segment %v-%v", ErrOutOfField, segment.P1(), segment.P2())
	}

	box = box.Expand(actor.EPSILON)
	minCell := f.clamp(f.worldToCell(box.Min))
	maxCell := f.clamp(f.worldToCell(box.Max))

	segmentIndex := len(f.segments)
	f.segments = append(f.segments, &segment)

	for y := minCell.Y; y <= maxCell.Y; y++ {
		for x := minCell.X; x <= maxCell.X; x++ {
			cellIdx := f.cellIndex(CellKey{x, y})
			f.cells[cellIdx].segmentIndices = append(f.cells[cellIdx].segmentIndices, segmentIndex)
		}
	}

	return nil
}

// SegmentsNear returns every segment referenced by the tiles overlapping region.
// Tiles outside of the field are skipped. Each segment appears once, in tile
// order (row by row), which keeps the result deterministic.
func (f *Field) SegmentsNear(region actor.AABB) []*actor.Segment {
	minCell := f.worldToCell(region.Min)
	maxCell := f.worldToCell(region.Max)
	if maxCell.X < 0 || maxCell.Y < 0 || minCell.X >= f.cols || minCell.Y >= f.rows {
		return nil
	}
	minCell = f.clamp(minCell)
	maxCell = f.clamp(maxCell)

	seen := make([]bool, len(f.segments))
	segments := make([]*actor.Segment, 0, 16)

	for y := minCell.Y; y <= maxCell.Y; y++ {
		for x := minCell.X; x <= maxCell.X; x++ {
			for _, segmentIdx := range f.cells[f.cellIndex(CellKey{x, y})].segmentIndices {
				// Avoid duplicates
				if seen[segmentIdx] {
					continue
				}
				seen[segmentIdx] = true
				segments = append(segments, f.segments[segmentIdx])
			}
		}
	}

	return segments
}

// Segments returns all the segments of the field, in insertion order
func (f *Field) Segments() []*actor.Segment {
	return f.segments
}

func (f *Field) Cols() int {
	return f.cols
}

func (f *Field) Rows() int {
	return f.rows
}

func (f *Field) TileSize() (float64, float64) {
	return f.tileWidth, f.tileHeight
}

// Bounds returns the area covered by the field
func (f *Field) Bounds() actor.AABB {
	return actor.AABB{
		Max: mgl64.Vec2{float64(f.cols) * f.tileWidth, float64(f.rows) * f.tileHeight},
	}
}

// SetStart sets the tile the ball is placed on when the level starts
func (f *Field) SetStart(key CellKey) error {
	if !f.inField(key) {
		return fmt.Errorf("%w: start tile %v", ErrOutOfField, key)
	}
	f.start = key

	return nil
}

func (f *Field) Start() CellKey {
	return f.start
}

// StartPosition returns the center of the start tile
func (f *Field) StartPosition() mgl64.Vec2 {
	return mgl64.Vec2{
		(float64(f.start.X) + 0.5) * f.tileWidth,
		(float64(f.start.Y) + 0.5) * f.tileHeight,
	}
}

// worldToCell - converts a field position to tile coordinates.
// Positions far outside of the field map to the row or column just beyond it,
// so huge coordinates never overflow the int conversion.
func (f *Field) worldToCell(pos mgl64.Vec2) CellKey {
	x := math.Floor(pos.X() / f.tileWidth)
	y := math.Floor(pos.Y() / f.tileHeight)

	return CellKey{
		X: int(min(max(x, -1), float64(f.cols))),
		Y: int(min(max(y, -1), float64(f.rows))),
	}
}

func (f *Field) clamp(key CellKey) CellKey {
	return CellKey{
		X: min(max(key.X, 0), f.cols-1),
		Y: min(max(key.Y, 0), f.rows-1),
	}
}

func (f *Field) inField(key CellKey) bool {
	return key.X >= 0 && key.Y >= 0 && key.X < f.cols && key.Y < f.rows
}

func (f *Field) cellIndex(key CellKey) int {
	return key.Y*f.cols + key.X
}
