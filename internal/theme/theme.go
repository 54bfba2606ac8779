package theme

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/battletested/internal/grid"
)

// DefaultID is the theme used when none is configured.
const DefaultID = "classic"

// Colors lists a theme's hex colours by screen role.
type Colors struct {
	Text                string `json:"text"`
	Background          string `json:"background"`
	Border              string `json:"border"`
	Floor               string `json:"floor"`
	HalfCover           string `json:"halfCover"`
	FullCover           string `json:"fullCover"`
	Glyph               string `json:"glyph"` // raw glyph tiles
	Selection           string `json:"selection"`
	SelectionBackground string `json:"selectionBackground"`
	Move                string `json:"move"`
	MoveBackground      string `json:"moveBackground"`
	Player              string `json:"player"`
}

// Theme is one entry of themes.json.
type Theme struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Colors Colors `json:"colors"`
}

// ThemesFile represents the structure of themes.json.
type ThemesFile struct {
	Themes []Theme `json:"themes"`
}

// Styles are the tcell styles derived from a theme.
type Styles struct {
	Text      tcell.Style
	Border    tcell.Style
	Floor     tcell.Style
	HalfCover tcell.Style
	FullCover tcell.Style
	Glyph     tcell.Style
	Selection tcell.Style
	Move      tcell.Style
	Player    tcell.Color
}

// Styles converts the theme's colours. Unparseable colours fall back to the
// terminal default.
func (t *Theme) Styles() Styles {
	c := t.Colors
	bg := color(c.Background)
	fg := func(hex string) tcell.Style {
		return tcell.StyleDefault.Background(bg).Foreground(color(hex))
	}
	return Styles{
		Text:      fg(c.Text),
		Border:    fg(c.Border),
		Floor:     fg(c.Floor),
		HalfCover: fg(c.HalfCover),
		FullCover: fg(c.FullCover),
		Glyph:     fg(c.Glyph),
		Selection: tcell.StyleDefault.Background(color(c.SelectionBackground)).Foreground(color(c.Selection)),
		Move:      tcell.StyleDefault.Background(color(c.MoveBackground)).Foreground(color(c.Move)),
		Player:    color(c.Player),
	}
}

// Tile returns the style for a map tile.
func (s Styles) Tile(t grid.Tile) tcell.Style {
	switch t {
	case grid.TileFloor:
		return s.Floor
	case grid.TileHalfCover:
		return s.HalfCover
	case grid.TileFullCover:
		return s.FullCover
	default:
		return s.Glyph
	}
}

func color(hex string) tcell.Color {
	c, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorDefault
	}
	return c
}

// Registry holds the loaded themes.
type Registry struct {
	themes []Theme
}

// NewRegistry creates a registry from theme definitions.
func NewRegistry(themes []Theme) *Registry {
	return &Registry{themes: themes}
}

// LoadRegistry loads the embedded themes.json.
func LoadRegistry() (*Registry, error) {
	file, err := Load[ThemesFile]("themes.json")
	if err != nil {
		return nil, err
	}
	if len(file.Themes) == 0 {
		return nil, errors.New("no themes loaded from themes.json")
	}
	return NewRegistry(file.Themes), nil
}

// MustLoadRegistry loads the registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the theme with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *Theme {
	for i := range r.themes {
		if r.themes[i].ID == id {
			return &r.themes[i]
		}
	}
	return nil
}

// Resolve returns the theme with the given ID, or an error naming the
// available themes.
func (r *Registry) Resolve(id string) (*Theme, error) {
	if t := r.GetByID(id); t != nil {
		return t, nil
	}
	ids := make([]string, len(r.themes))
	for i := range r.themes {
		ids[i] = r.themes[i].ID
	}
	return nil, fmt.Errorf("unknown theme %q (have %v)", id, ids)
}

// All returns all themes.
func (r *Registry) All() []Theme {
	return r.themes
}

// Count returns the number of themes in the registry.
func (r *Registry) Count() int {
	return len(r.themes)
}

// Default returns the built-in default theme's styles.
func Default() Styles {
	return MustLoadRegistry().GetByID(DefaultID).Styles()
}
