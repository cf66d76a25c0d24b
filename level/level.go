// Package level turns a grid of tiles into the segment field the ball
// bounces in.
package level

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/akmonengine/putt"
	"github.com/akmonengine/putt/actor"
)

var (
	ErrInvalidGrid    = errors.New("level: invalid grid")
	ErrNoStart        = errors.New("level: no start tile")
	ErrMultipleStarts = errors.New("level: several start tiles")
)

// Build creates the field of the grid. Every solid tile contributes its
// outline, except the edges hidden against a neighbour covering the same side.
func Build(grid *Grid) (*putt.Field, error) {
	if grid == nil || len(grid.Tiles) != grid.Cols*grid.Rows {
		return nil, fmt.Errorf("%w: tiles do not match the dimensions", ErrInvalidGrid)
	}

	field, err := putt.NewField(grid.Cols, grid.Rows, grid.TileWidth, grid.TileHeight)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGrid, err)
	}

	starts := 0
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Cols; x++ {
			kind := grid.At(x, y)
			if kind == Start {
				starts++
				if starts > 1 {
					return nil, fmt.Errorf("%w: (%d, %d)", ErrMultipleStarts, x, y)
				}
				if err := field.SetStart(putt.CellKey{X: x, Y: y}); err != nil {
					return nil, err
				}
				continue
			}

			for _, e := range kind.outline(x, y, grid.TileWidth, grid.TileHeight) {
				if hidden(grid, x, y, e.side) {
					continue
				}

				segment, err := actor.NewSegment(e.p1, e.p2)
				if err != nil {
					return nil, fmt.Errorf("tile (%d, %d): %w", x, y, err)
				}
				if err := field.Insert(segment); err != nil {
					return nil, fmt.Errorf("tile (%d, %d): %w", x, y, err)
				}
			}
		}
	}

	if starts == 0 {
		return nil, ErrNoStart
	}

	return field, nil
}

// hidden reports whether the side s of tile (x, y) lies against a neighbour
// filling the other side of the same edge
func hidden(grid *Grid, x, y int, s side) bool {
	if s == inner {
		return false
	}
	dx, dy := s.offset()

	return grid.At(x+dx, y+dy).covers(s.opposite())
}

const (
	// Chance for an inner tile to be a square, then for each triangle
	SQUARE_FREQUENCY   = 0.06
	TRIANGLE_FREQUENCY = 0.015
	// Columns kept empty next to the start tile
	CLEAR_COLUMNS = 3
)

// Generate creates a random bordered grid, the start tile on the middle of the
// left side.
func Generate(rng *rand.Rand, cols, rows int, tileWidth, tileHeight float64) (*Grid, error) {
	if cols < CLEAR_COLUMNS+2 || rows < 3 {
		return nil, fmt.Errorf("%w: %dx%d tiles is too small", ErrInvalidGrid, cols, rows)
	}

	grid := Bordered(cols, rows, tileWidth, tileHeight)
	for y := 1; y < rows-1; y++ {
		for x := CLEAR_COLUMNS + 1; x < cols-1; x++ {
			r := rng.Float64()
			switch {
			case r < SQUARE_FREQUENCY:
				grid.Set(x, y, Square)
			case r < SQUARE_FREQUENCY+TRIANGLE_FREQUENCY:
				grid.Set(x, y, TriangleTL)
			case r < SQUARE_FREQUENCY+2*TRIANGLE_FREQUENCY:
				grid.Set(x, y, TriangleTR)
			case r < SQUARE_FREQUENCY+3*TRIANGLE_FREQUENCY:
				grid.Set(x, y, TriangleBL)
			case r < SQUARE_FREQUENCY+4*TRIANGLE_FREQUENCY:
				grid.Set(x, y, TriangleBR)
			}
		}
	}
	grid.Set(1, rows/2, Start)

	return grid, nil
}
