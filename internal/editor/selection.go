package editor

import "github.com/samdwyer/battletested/internal/grid"

// Selection is a rectangle of map cells anchored at its top-left corner.
// It wraps around the map edges, so a selection near the right edge
// continues on the left.
type Selection struct {
	X, Y          int // Top-left column and row
	Width, Height int // Size in cells
}

// Cells returns the wrapped cell positions covered by the selection, row by row.
func (s Selection) Cells(g *grid.Grid) []grid.Position {
	cells := make([]grid.Position, 0, s.Width*s.Height)
	for i := 0; i < s.Height; i++ {
		for j := 0; j < s.Width; j++ {
			cells = append(cells, g.Wrap(s.Y+i, s.X+j))
		}
	}
	return cells
}

// Contains returns true if p lies inside the selection, taking wrapping into
// account.
func (s Selection) Contains(g *grid.Grid, p grid.Position) bool {
	dRow := (p.Row - s.Y + g.Height()) % g.Height()
	dCol := (p.Col - s.X + g.Width()) % g.Width()
	return dRow < s.Height && dCol < s.Width
}
