package game

import (
	"github.com/samdwyer/battletested/internal/config"
	"github.com/samdwyer/battletested/internal/grid"
	"github.com/samdwyer/battletested/internal/theme"
)

// Options holds what a Game needs besides its screen.
type Options struct {
	// Config supplies the movement range and player settings. It is read on
	// every draw, so a watched store takes effect without a restart.
	Config *config.Store
	// Styles is the colour theme.
	Styles theme.Styles
	// Map is the initial map. A blank map is used when nil.
	Map *grid.Grid
	// MapPath is shown on the message line and used as the prompt default.
	MapPath string
}
