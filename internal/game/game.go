package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/battletested/internal/config"
	"github.com/samdwyer/battletested/internal/entity"
	"github.com/samdwyer/battletested/internal/grid"
	"github.com/samdwyer/battletested/internal/mapfile"
	"github.com/samdwyer/battletested/internal/reach"
	"github.com/samdwyer/battletested/internal/telemetry"
	"github.com/samdwyer/battletested/internal/ui"
)

// Game holds the entire viewer state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	config   *config.Store
	model    Model
	prompt   *ui.Prompt
	message  string
	state    State
	running  bool
}

// New creates a viewer on the given screen.
func New(screen *ui.Screen, opts Options) *Game {
	store := opts.Config
	if store == nil {
		store = config.Default()
	}
	m := opts.Map
	if m == nil {
		m = grid.New(grid.DefaultWidth, grid.DefaultHeight)
	}

	cfg := store.Config()
	player := entity.NewCharacter(
		startPosition(m, cfg.Player.StartRow, cfg.Player.StartCol),
		[]rune(cfg.Player.Glyph)[0],
		opts.Styles.Player,
	)

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, opts.Styles),
		config:   store,
		model:    Model{Map: m, Player: player, MapPath: opts.MapPath},
		state:    StateTitle,
		running:  true,
	}
}

// Model returns the current map and player.
func (g *Game) Model() Model { return g.model }

// State returns the page being shown.
func (g *Game) State() State { return g.state }

// Running is false once the player has quit.
func (g *Game) Running() bool { return g.running }

// Run executes the main loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.String("map.path", g.model.MapPath),
		attribute.Int("player.row", g.model.Player.Row),
		attribute.Int("player.col", g.model.Player.Col),
		attribute.Int("reach.range", g.config.Config().Reach.MaxRange),
	)
	initSpan.End()

	stop := g.screen.WatchContext(ctx)
	for g.running {
		g.Render(ctx)
		g.HandleEvent(ctx, g.screen.PollEvent())
		if ctx.Err() != nil {
			g.running = false
		}
	}

	stop()
	g.screen.Close()
	return nil
}

// Render draws the current page.
func (g *Game) Render(ctx context.Context) {
	g.renderer.Clear()
	switch g.state {
	case StateTitle:
		drawTitle(g.renderer)
	case StateBattle:
		g.drawBattle(ctx)
		g.renderer.Message(g.message)
		g.screen.HideCursor()
	case StatePrompt:
		g.drawBattle(ctx)
		g.prompt.Draw(g.renderer)
	}
	g.renderer.Show()
}

func (g *Game) drawBattle(ctx context.Context) {
	m := g.model.Map
	g.renderer.DrawBorder(m.Width(), m.Height())
	g.renderer.DrawMap(m)

	maxRange := g.config.Config().Reach.MaxRange
	res, err := reach.Explore(ctx, m, maxRange, g.model.Player.Position())
	if err != nil {
		log.Warn().Err(err).Msg("movement range not drawn")
	} else {
		g.renderer.DrawMoveOverlay(m, res.Reached)
	}
	g.renderer.DrawPlayer(g.model.Player)
}

// HandleEvent processes a single input event.
func (g *Game) HandleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch g.state {
	case StateTitle:
		g.state = StateBattle
		g.message = g.model.MapPath
	case StateBattle:
		g.handleBattleKey(ev)
	case StatePrompt:
		g.handlePromptKey(ctx, ev)
	}
}

func (g *Game) handleBattleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
	case tcell.KeyUp:
		g.tryMove(-1, 0)
	case tcell.KeyDown:
		g.tryMove(1, 0)
	case tcell.KeyLeft:
		g.tryMove(0, -1)
	case tcell.KeyRight:
		g.tryMove(0, 1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'w':
			g.tryMove(-1, 0)
		case 's':
			g.tryMove(1, 0)
		case 'a':
			g.tryMove(0, -1)
		case 'd':
			g.tryMove(0, 1)
		case 'o':
			g.prompt = ui.NewPrompt(gotext.Get("Open: "))
			g.state = StatePrompt
		}
	}
}

func (g *Game) handlePromptKey(ctx context.Context, ev *tcell.EventKey) {
	switch g.prompt.HandleKey(ev) {
	case ui.PromptDone:
		g.state = StateBattle
		if path := g.prompt.Input(); path != "" {
			g.openMap(ctx, path)
		}
	case ui.PromptCancelled:
		g.state = StateBattle
	}
}

// openMap replaces the current map. The player keeps its cell.
func (g *Game) openMap(ctx context.Context, path string) {
	m := g.model.Map
	loaded, err := mapfile.Load(ctx, path, m.Width(), m.Height())
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("open map failed")
		g.message = gotext.Get("Could not open %s", path)
		return
	}
	log.Info().Str("path", path).Msg("map opened")
	g.model.Map = loaded
	g.model.MapPath = path
	g.message = path
}

// tryMove steps the player if the destination is floor.
func (g *Game) tryMove(dRow, dCol int) {
	g.model.Player.Step(g.model.Map, dRow, dCol)
}
