package level

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// TileKind is the content of a tile. Triangles are named after the corner
// holding their right angle.
type TileKind uint8

const (
	Empty TileKind = iota
	// Start is an empty tile the ball is placed on
	Start
	Square
	TriangleTL
	TriangleTR
	TriangleBL
	TriangleBR
)

func (k TileKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Start:
		return "start"
	case Square:
		return "square"
	case TriangleTL:
		return "triangle-tl"
	case TriangleTR:
		return "triangle-tr"
	case TriangleBL:
		return "triangle-bl"
	case TriangleBR:
		return "triangle-br"
	default:
		return fmt.Sprintf("TileKind(%d)", k)
	}
}

// Solid reports whether the ball bounces off the tile
func (k TileKind) Solid() bool {
	return k >= Square && k <= TriangleBR
}

type side uint8

const (
	top side = iota
	right
	bottom
	left
	// hypotenuse of a triangle, never shared with a neighbour
	inner
)

// opposite returns the side of the neighbour facing s
func (s side) opposite() side {
	switch s {
	case top:
		return bottom
	case bottom:
		return top
	case left:
		return right
	case right:
		return left
	default:
		return inner
	}
}

// offset returns the direction of the neighbour behind s
func (s side) offset() (int, int) {
	switch s {
	case top:
		return 0, -1
	case bottom:
		return 0, 1
	case left:
		return -1, 0
	case right:
		return 1, 0
	default:
		return 0, 0
	}
}

// covers reports whether the tile fills the whole side s
func (k TileKind) covers(s side) bool {
	switch k {
	case Square:
		return s != inner
	case TriangleTL:
		return s == top || s == left
	case TriangleTR:
		return s == top || s == right
	case TriangleBL:
		return s == bottom || s == left
	case TriangleBR:
		return s == bottom || s == right
	default:
		return false
	}
}

type edge struct {
	p1, p2 mgl64.Vec2
	side   side
}

// outline returns the edges of a solid tile, walking clockwise (y axis down)
func (k TileKind) outline(x, y int, w, h float64) []edge {
	l, t := float64(x)*w, float64(y)*h
	r, b := l+w, t+h
	tl, tr := mgl64.Vec2{l, t}, mgl64.Vec2{r, t}
	bl, br := mgl64.Vec2{l, b}, mgl64.Vec2{r, b}

	switch k {
	case Square:
		return []edge{{tl, tr, top}, {tr, br, right}, {br, bl, bottom}, {bl, tl, left}}
	case TriangleTL:
		return []edge{{tl, tr, top}, {tr, bl, inner}, {bl, tl, left}}
	case TriangleTR:
		return []edge{{tl, tr, top}, {tr, br, right}, {br, tl, inner}}
	case TriangleBL:
		return []edge{{tl, br, inner}, {br, bl, bottom}, {bl, tl, left}}
	case TriangleBR:
		return []edge{{tr, br, right}, {br, bl, bottom}, {bl, tr, inner}}
	default:
		return nil
	}
}

// Grid is a level description: Cols x Rows tiles, stored row by row from the
// top-left corner.
type Grid struct {
	Cols, Rows            int
	TileWidth, TileHeight float64
	Tiles                 []TileKind
}

// NewGrid creates a grid of empty tiles
func NewGrid(cols, rows int, tileWidth, tileHeight float64) *Grid {
	return &Grid{
		Cols:       cols,
		Rows:       rows,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Tiles:      make([]TileKind, max(cols, 0)*max(rows, 0)),
	}
}

// Bordered creates a grid closed by a ring of squares
func Bordered(cols, rows int, tileWidth, tileHeight float64) *Grid {
	g := NewGrid(cols, rows, tileWidth, tileHeight)
	for x := 0; x < cols; x++ {
		g.Set(x, 0, Square)
		g.Set(x, rows-1, Square)
	}
	for y := 0; y < rows; y++ {
		g.Set(0, y, Square)
		g.Set(cols-1, y, Square)
	}

	return g
}

func (g *Grid) inGrid(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Cols && y < g.Rows
}

// At returns the tile at (x, y), Empty outside of the grid
func (g *Grid) At(x, y int) TileKind {
	if !g.inGrid(x, y) {
		return Empty
	}
	return g.Tiles[y*g.Cols+x]
}

// Set changes the tile at (x, y). Coordinates outside of the grid are ignored.
func (g *Grid) Set(x, y int, kind TileKind) {
	if !g.inGrid(x, y) {
		return
	}
	g.Tiles[y*g.Cols+x] = kind
}
