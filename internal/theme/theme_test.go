package theme

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/battletested/internal/grid"
)

func TestLoadRegistry(t *testing.T) {
	registry, err := LoadRegistry()
	require.NoError(t, err)
	assert.Equal(t, 2, registry.Count())

	classic := registry.GetByID(DefaultID)
	require.NotNil(t, classic)
	assert.Equal(t, "Classic", classic.Name)
	assert.Nil(t, registry.GetByID("neon"))

	_, err = registry.Resolve("neon")
	assert.ErrorContains(t, err, "classic")

	// Every embedded colour must parse.
	for _, th := range registry.All() {
		c := th.Colors
		for _, hex := range []string{
			c.Text, c.Background, c.Border, c.Floor, c.HalfCover, c.FullCover,
			c.Glyph, c.Selection, c.SelectionBackground, c.Move, c.MoveBackground, c.Player,
		} {
			_, err := ParseHexColor(hex)
			assert.NoError(t, err, "theme %s", th.ID)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"invalid", false},
		{"#GG0000", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid {
			assert.NoError(t, err, tt.input)
		} else {
			assert.Error(t, err, tt.input)
		}
	}

	c := MustParseHexColor("#102030")
	r, g, b := c.RGB()
	assert.Equal(t, []int32{0x10, 0x20, 0x30}, []int32{r, g, b})
	assert.Panics(t, func() { MustParseHexColor("nope") })
}

func TestStyles(t *testing.T) {
	th := Theme{ID: "t", Colors: Colors{
		Background:          "#000000",
		Floor:               "#808080",
		Selection:           "#FFFFFF",
		SelectionBackground: "#FF0000",
		Player:              "#FFFF00",
		Glyph:               "bogus",
	}}
	s := th.Styles()

	fg, bg, _ := s.Tile(grid.TileFloor).Decompose()
	assert.Equal(t, tcell.NewHexColor(0x808080), fg)
	assert.Equal(t, tcell.NewHexColor(0x000000), bg)

	fg, bg, _ = s.Selection.Decompose()
	assert.Equal(t, tcell.NewHexColor(0xFFFFFF), fg)
	assert.Equal(t, tcell.NewHexColor(0xFF0000), bg)

	fg, _, _ = s.Tile(grid.Tile('#')).Decompose()
	assert.Equal(t, tcell.ColorDefault, fg)
	assert.Equal(t, tcell.NewHexColor(0xFFFF00), s.Player)
}
