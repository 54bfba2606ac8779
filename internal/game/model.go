package game

import (
	"github.com/samdwyer/battletested/internal/entity"
	"github.com/samdwyer/battletested/internal/grid"
)

// Model is everything the battle page draws.
type Model struct {
	Map     *grid.Grid
	Player  *entity.Character
	MapPath string
}

// startPosition resolves the configured start cell. A negative or
// out-of-range coordinate falls back to the middle of the map.
func startPosition(g *grid.Grid, row, col int) grid.Position {
	if row < 0 || row >= g.Height() {
		row = g.Height() / 2
	}
	if col < 0 || col >= g.Width() {
		col = g.Width() / 2
	}
	return grid.Pos(row, col)
}
