package game

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/battletested/internal/config"
	"github.com/samdwyer/battletested/internal/grid"
	"github.com/samdwyer/battletested/internal/mapfile"
	"github.com/samdwyer/battletested/internal/theme"
	"github.com/samdwyer/battletested/internal/ui"
)

func newTestGame(t *testing.T, opts Options) (*Game, *ui.Screen) {
	t.Helper()
	screen, err := ui.NewScreenFrom(tcell.NewSimulationScreen("UTF-8"))
	require.NoError(t, err)
	t.Cleanup(screen.Close)
	opts.Styles = theme.Default()
	return New(screen, opts), screen
}

func press(g *Game, r rune) {
	g.HandleEvent(context.Background(), tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func pressKey(g *Game, k tcell.Key) {
	g.HandleEvent(context.Background(), tcell.NewEventKey(k, 0, tcell.ModNone))
}

func typeText(g *Game, s string) {
	for _, r := range s {
		press(g, r)
	}
}

func overlayCells(s *ui.Screen, m *grid.Grid) int {
	move := theme.Default().Move
	n := 0
	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			if _, style := s.GetContent(ui.CellOrigin(grid.Pos(row, col))); style == move {
				n++
			}
		}
	}
	return n
}

func TestStartPosition(t *testing.T) {
	g := grid.New(grid.DefaultWidth, grid.DefaultHeight)
	assert.Equal(t, grid.Pos(9, 39), startPosition(g, -1, -1))
	assert.Equal(t, grid.Pos(2, 39), startPosition(g, 2, -1))
	assert.Equal(t, grid.Pos(9, 3), startPosition(g, 40, 3))
	assert.Equal(t, grid.Pos(0, 0), startPosition(g, 0, 0))
}

func TestTitleThenBattle(t *testing.T) {
	g, s := newTestGame(t, Options{MapPath: "arena.bt"})
	ctx := context.Background()

	assert.Equal(t, StateTitle, g.State())
	g.Render(ctx)
	ch, _ := s.GetContent(bannerCol, bannerRow+1)
	assert.Equal(t, '|', ch)

	press(g, 'x')
	assert.Equal(t, StateBattle, g.State())

	g.Render(ctx)
	ch, _ = s.GetContent(ui.CellOrigin(grid.Pos(9, 39)))
	assert.Equal(t, '@', ch)
	ch, _ = s.GetContent(0, ui.MessageRow)
	assert.Equal(t, 'a', ch)

	// Default range 5 on an open map: a diamond of 61 cells, one under the player.
	assert.Equal(t, 60, overlayCells(s, g.Model().Map))
}

func TestOverlayFollowsConfig(t *testing.T) {
	store := config.Default()
	g, s := newTestGame(t, Options{Config: store})
	press(g, ' ')

	require.NoError(t, store.Set("reach.max_range", 1))
	g.Render(context.Background())
	assert.Equal(t, 4, overlayCells(s, g.Model().Map))
}

func TestOverlayIncludesZeroRemaining(t *testing.T) {
	store := config.Default()
	require.NoError(t, store.Set("reach.max_range", 2))
	m := grid.New(grid.DefaultWidth, grid.DefaultHeight)
	g, s := newTestGame(t, Options{Config: store, Map: m})
	press(g, ' ')
	g.Render(context.Background())

	// Cells two steps out are recorded with 0 but still highlighted.
	_, style := s.GetContent(ui.CellOrigin(grid.Pos(7, 39)))
	assert.Equal(t, theme.Default().Move, style)
	_, style = s.GetContent(ui.CellOrigin(grid.Pos(6, 39)))
	assert.NotEqual(t, theme.Default().Move, style)
}

func TestPlayerMovement(t *testing.T) {
	m := grid.New(grid.DefaultWidth, grid.DefaultHeight)
	m.Set(grid.Pos(8, 39), grid.TileHalfCover)
	g, _ := newTestGame(t, Options{Map: m})
	press(g, ' ')

	press(g, 'w')
	assert.Equal(t, grid.Pos(9, 39), g.Model().Player.Position(), "cover blocks")

	pressKey(g, tcell.KeyDown)
	press(g, 'd')
	pressKey(g, tcell.KeyRight)
	press(g, 'a')
	assert.Equal(t, grid.Pos(10, 40), g.Model().Player.Position())

	pressKey(g, tcell.KeyUp)
	pressKey(g, tcell.KeyLeft)
	assert.Equal(t, grid.Pos(9, 39), g.Model().Player.Position())
}

func TestOpenMapPrompt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cover.bt")
	loaded := grid.New(grid.DefaultWidth, grid.DefaultHeight)
	loaded.Set(grid.Pos(0, 0), grid.TileFullCover)
	require.NoError(t, mapfile.Save(context.Background(), path, loaded))

	g, s := newTestGame(t, Options{})
	press(g, ' ')
	press(g, 'o')
	require.Equal(t, StatePrompt, g.State())

	typeText(g, path)
	g.Render(context.Background())
	ch, _ := s.GetContent(0, ui.MessageRow)
	assert.Equal(t, 'O', ch)

	pressKey(g, tcell.KeyEnter)
	assert.Equal(t, StateBattle, g.State())
	assert.Equal(t, path, g.Model().MapPath)
	assert.Equal(t, grid.TileFullCover, g.Model().Map.At(grid.Pos(0, 0)))
}

func TestOpenMapFailureKeepsMap(t *testing.T) {
	g, _ := newTestGame(t, Options{MapPath: "first.bt"})
	before := g.Model().Map
	press(g, ' ')
	press(g, 'o')
	typeText(g, filepath.Join(t.TempDir(), "missing.bt"))
	pressKey(g, tcell.KeyEnter)

	assert.Equal(t, StateBattle, g.State())
	assert.Same(t, before, g.Model().Map)
	assert.Equal(t, "first.bt", g.Model().MapPath)
	assert.Contains(t, g.message, "Could not open")
}

func TestPromptCancel(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	press(g, ' ')
	press(g, 'o')
	press(g, 'x')
	pressKey(g, tcell.KeyEscape)
	assert.Equal(t, StateBattle, g.State())
	assert.True(t, g.Running(), "escape in the prompt does not quit")
}

func TestQuitKeys(t *testing.T) {
	for _, quit := range []func(*Game){
		func(g *Game) { press(g, 'q') },
		func(g *Game) { press(g, 'Q') },
		func(g *Game) { pressKey(g, tcell.KeyEscape) },
		func(g *Game) { pressKey(g, tcell.KeyCtrlC) },
	} {
		g, _ := newTestGame(t, Options{})
		press(g, ' ')
		require.True(t, g.Running())
		quit(g)
		assert.False(t, g.Running())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.NewScreenFrom(sim)
	require.NoError(t, err)
	g := New(screen, Options{Styles: theme.Default()})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()
	cancel()

	require.NoError(t, <-done)
	assert.False(t, g.Running())
}

func TestRunQuitKeyEndsContextWatch(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.NewScreenFrom(sim)
	require.NoError(t, err)
	g := New(screen, Options{Styles: theme.Default()})

	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, g.Run(ctx))
	assert.False(t, g.Running())
	assert.Equal(t, StateBattle, g.State())

	// The watch ended with Run, so this must not touch the closed screen.
	cancel()
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "title", StateTitle.String())
	assert.Equal(t, "battle", StateBattle.String())
	assert.Equal(t, "prompt", StatePrompt.String())
	assert.Equal(t, "unknown", State(9).String())
}
