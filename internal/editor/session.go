package editor

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/battletested/internal/telemetry"
	"github.com/samdwyer/battletested/internal/ui"
)

// Session runs an Editor against a terminal screen.
type Session struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	editor   *Editor
}

// NewSession creates a session drawing with the given renderer.
func NewSession(screen *ui.Screen, renderer *ui.Renderer, e *Editor) *Session {
	return &Session{screen: screen, renderer: renderer, editor: e}
}

// Run draws the editor and handles keys until a quit action or until ctx
// is done, and returns that action (ActionQuit on cancellation). It closes
// the screen before returning.
func (s *Session) Run(ctx context.Context) Action {
	_, span := telemetry.Tracer("editor").Start(ctx, "editor.session")
	defer span.End()

	stop := s.screen.WatchContext(ctx)
	action, edits := s.loop(ctx)
	stop()
	s.screen.Close()

	span.SetAttributes(
		attribute.Int("editor.edits", edits),
		attribute.String("editor.exit", action.String()),
	)
	return action
}

func (s *Session) loop(ctx context.Context) (Action, int) {
	edits := 0
	s.Draw()
	for {
		if ctx.Err() != nil {
			return ActionQuit, edits
		}
		ev := s.screen.PollEvent()
		if ev == nil {
			return ActionQuit, edits
		}
		switch action := s.HandleEvent(ev); action {
		case ActionQuit, ActionSaveQuit:
			return action, edits
		case ActionRedraw:
			edits++
		}
	}
}

// HandleEvent processes one terminal event and redraws as needed.
func (s *Session) HandleEvent(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
		s.Draw()
	case *tcell.EventKey:
		s.renderer.Message(keyName(ev))
		action := s.editor.HandleKey(ev)
		if action == ActionRedraw {
			s.drawEditor()
		}
		s.renderer.Show()
		return action
	}
	return ActionNone
}

// Draw paints the full editor screen.
func (s *Session) Draw() {
	s.renderer.Clear()
	g := s.editor.Grid()
	s.renderer.DrawBorder(g.Width(), g.Height())
	s.drawEditor()
	s.renderer.Show()
}

func (s *Session) drawEditor() {
	g := s.editor.Grid()
	sel := s.editor.Selection()
	s.renderer.DrawMap(g)
	s.renderer.DrawInfo(g.Height(), sel.X, sel.Y, sel.Width, sel.Height, s.editor.Brush())
	s.renderer.DrawSelection(g, sel.Cells(g))
}

// keyName formats a key the way it is echoed on the message line.
func keyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		return string(ev.Rune())
	}
	return ev.Name()
}
