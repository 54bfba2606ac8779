package mapgen

import "github.com/samdwyer/battletested/internal/grid"

// Room is a rectangular floor area carved out of the map.
type Room struct {
	Row, Col      int // Top-left corner
	Width, Height int
}

// Center returns the middle cell of the room.
func (r Room) Center() grid.Position {
	return grid.Pos(r.Row+r.Height/2, r.Col+r.Width/2)
}

// Contains reports whether p lies inside the room.
func (r Room) Contains(p grid.Position) bool {
	return p.Col >= r.Col && p.Col < r.Col+r.Width && p.Row >= r.Row && p.Row < r.Row+r.Height
}
