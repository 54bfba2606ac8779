package editor

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/samdwyer/battletested/internal/grid"
)

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func keys(e *Editor, s string) Action {
	var last Action
	for _, r := range s {
		last = e.HandleKey(char(r))
	}
	return last
}

func TestMoveWraps(t *testing.T) {
	e := New(grid.New(grid.DefaultWidth, grid.DefaultHeight))

	assert.Equal(t, ActionRedraw, keys(e, "w"))
	assert.Equal(t, Selection{X: 0, Y: 18, Width: 1, Height: 1}, e.Selection())

	keys(e, "a")
	assert.Equal(t, 77, e.Selection().X)

	keys(e, "sd")
	assert.Equal(t, Selection{X: 0, Y: 0, Width: 1, Height: 1}, e.Selection())

	keys(e, "ddds")
	assert.Equal(t, Selection{X: 3, Y: 1, Width: 1, Height: 1}, e.Selection())
}

func TestResizeClamps(t *testing.T) {
	e := New(grid.New(4, 3))

	keys(e, "WA")
	assert.Equal(t, 1, e.Selection().Width)
	assert.Equal(t, 1, e.Selection().Height)

	keys(e, "SSSSSDDDDDDD")
	assert.Equal(t, 4, e.Selection().Width)
	assert.Equal(t, 3, e.Selection().Height)

	keys(e, "WA")
	assert.Equal(t, 3, e.Selection().Width)
	assert.Equal(t, 2, e.Selection().Height)
}

func TestBrushAndPaint(t *testing.T) {
	g := grid.New(5, 5)
	e := New(g)
	assert.Equal(t, grid.TileFloor, e.Brush())

	assert.Equal(t, ActionRedraw, e.HandleKey(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)))
	assert.Equal(t, grid.TileHalfCover, e.Brush())
	e.CycleBrush()
	e.CycleBrush()
	assert.Equal(t, grid.TileFloor, e.Brush())
	e.CycleBrush()
	e.CycleBrush()

	// 2x2 selection hanging off the bottom-right corner.
	e.Move(4, 4)
	keys(e, "SD")
	assert.Equal(t, ActionRedraw, keys(e, "e"))

	for _, p := range []grid.Position{grid.Pos(4, 4), grid.Pos(4, 0), grid.Pos(0, 4), grid.Pos(0, 0)} {
		assert.Equal(t, grid.TileFullCover, g.At(p), "cell %v", p)
	}
	assert.Equal(t, 4, g.Count()[grid.TileFullCover])
}

func TestRotate(t *testing.T) {
	g := grid.New(3, 1)
	g.Set(grid.Pos(0, 1), grid.TileFullCover)
	g.Set(grid.Pos(0, 2), grid.Tile('#'))
	e := New(g)

	keys(e, "DD ")
	assert.Equal(t, []byte{1, 0, 0}, g.Bytes())
	keys(e, " ")
	assert.Equal(t, []byte{2, 1, 1}, g.Bytes())
}

func TestQuitAndReservedKeys(t *testing.T) {
	e := New(grid.New(5, 5))

	for _, r := range "zyxcv?" {
		assert.Equal(t, ActionNone, e.HandleKey(char(r)), "key %q", r)
	}
	assert.Equal(t, ActionNone, e.HandleKey(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)))
	assert.Equal(t, ActionQuit, e.HandleKey(char('q')))
	assert.Equal(t, ActionSaveQuit, e.HandleKey(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)))
	assert.Equal(t, Selection{Width: 1, Height: 1}, e.Selection())
}

func TestSelectionContains(t *testing.T) {
	g := grid.New(10, 5)
	s := Selection{X: 8, Y: 4, Width: 3, Height: 2}

	assert.Len(t, s.Cells(g), 6)
	for _, p := range s.Cells(g) {
		assert.True(t, s.Contains(g, p), "cell %v", p)
	}
	assert.True(t, s.Contains(g, grid.Pos(0, 0)))
	assert.False(t, s.Contains(g, grid.Pos(1, 0)))
	assert.False(t, s.Contains(g, grid.Pos(4, 1)))
	assert.False(t, s.Contains(g, grid.Pos(3, 8)))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "save_quit", ActionSaveQuit.String())
	assert.Equal(t, "unknown", Action(42).String())
}
