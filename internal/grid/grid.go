package grid

import (
	"errors"
	"fmt"
)

const (
	// Default map dimensions, matching the battle map file format.
	DefaultWidth  = 78
	DefaultHeight = 19
)

// ErrSize is returned when tile data does not match the grid dimensions.
var ErrSize = errors.New("tile data does not match grid size")

// Position is a (row, column) cell address.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Up returns the position one row above p.
func (p Position) Up() Position { return Position{p.Row - 1, p.Col} }

// Down returns the position one row below p.
func (p Position) Down() Position { return Position{p.Row + 1, p.Col} }

// Left returns the position one column left of p.
func (p Position) Left() Position { return Position{p.Row, p.Col - 1} }

// Right returns the position one column right of p.
func (p Position) Right() Position { return Position{p.Row, p.Col + 1} }

// String formats the position as (row,col).
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is a fixed-size row-major array of tile codes.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// New creates a grid filled with floor.
func New(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
}

// FromBytes creates a grid from row-major tile codes.
// The data is copied.
func FromBytes(width, height int, data []byte) (*Grid, error) {
	if len(data) != width*height {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrSize, len(data), width*height)
	}
	g := New(width, height)
	for i, b := range data {
		g.tiles[i] = Tile(b)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.tiles) }

// InBounds returns true if p addresses a cell of the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// Index returns the row-major index of p. It does not check bounds.
func (g *Grid) Index(p Position) int {
	return p.Row*g.width + p.Col
}

// At returns the tile at p. Out of bounds reads return full cover.
func (g *Grid) At(p Position) Tile {
	if !g.InBounds(p) {
		return TileFullCover
	}
	return g.tiles[g.Index(p)]
}

// Set writes the tile at p. Out of bounds writes are ignored.
func (g *Grid) Set(p Position, t Tile) {
	if !g.InBounds(p) {
		return
	}
	g.tiles[g.Index(p)] = t
}

// Wrap folds a row and column into the grid, wrapping at the edges.
// Only the editor wraps; movement never does.
func (g *Grid) Wrap(row, col int) Position {
	row %= g.height
	if row < 0 {
		row += g.height
	}
	col %= g.width
	if col < 0 {
		col += g.width
	}
	return Position{Row: row, Col: col}
}

// Fill sets every cell to t.
func (g *Grid) Fill(t Tile) {
	for i := range g.tiles {
		g.tiles[i] = t
	}
}

// Bytes returns a copy of the row-major tile codes.
func (g *Grid) Bytes() []byte {
	out := make([]byte, len(g.tiles))
	for i, t := range g.tiles {
		out[i] = byte(t)
	}
	return out
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := New(g.width, g.height)
	copy(c.tiles, g.tiles)
	return c
}

// Count returns how many cells hold each tile code.
func (g *Grid) Count() map[Tile]int {
	counts := make(map[Tile]int)
	for _, t := range g.tiles {
		counts[t]++
	}
	return counts
}
