// Package entity provides the units placed on the battle map.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/battletested/internal/grid"
)

// Character is a unit standing on one map cell.
type Character struct {
	Row, Col int         // Current cell
	Glyph    rune        // Display symbol
	Color    tcell.Color // Foreground colour
}

// NewCharacter creates a character at the given cell.
func NewCharacter(pos grid.Position, glyph rune, color tcell.Color) *Character {
	return &Character{
		Row:   pos.Row,
		Col:   pos.Col,
		Glyph: glyph,
		Color: color,
	}
}

// Position returns the character's cell.
func (c *Character) Position() grid.Position {
	return grid.Pos(c.Row, c.Col)
}

// MoveTo places the character on p.
func (c *Character) MoveTo(p grid.Position) {
	c.Row, c.Col = p.Row, p.Col
}

// Step moves the character one cell by the given delta if the destination is
// in bounds and walkable. It returns true if the character moved.
func (c *Character) Step(g *grid.Grid, dRow, dCol int) bool {
	next := grid.Pos(c.Row+dRow, c.Col+dCol)
	if !g.InBounds(next) || g.At(next).IsObstacle() {
		return false
	}
	c.MoveTo(next)
	return true
}
