// Package editor implements the map editor's selection and painting commands.
package editor

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/battletested/internal/grid"
)

// Action tells the caller what to do after a key was handled.
type Action int

const (
	// ActionNone means the key was not a command; nothing changed.
	ActionNone Action = iota
	// ActionRedraw means the map or selection changed.
	ActionRedraw
	// ActionQuit exits without saving.
	ActionQuit
	// ActionSaveQuit exits and saves.
	ActionSaveQuit
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionRedraw:
		return "redraw"
	case ActionQuit:
		return "quit"
	case ActionSaveQuit:
		return "save_quit"
	default:
		return "unknown"
	}
}

// Editor holds the map being edited, the selection and the brush tile.
type Editor struct {
	grid      *grid.Grid
	selection Selection
	brush     grid.Tile
}

// New creates an editor with a 1x1 selection in the top-left corner and a
// floor brush.
func New(g *grid.Grid) *Editor {
	return &Editor{
		grid:      g,
		selection: Selection{Width: 1, Height: 1},
		brush:     grid.TileFloor,
	}
}

// Grid returns the map being edited.
func (e *Editor) Grid() *grid.Grid { return e.grid }

// Selection returns the current selection.
func (e *Editor) Selection() Selection { return e.selection }

// Brush returns the tile painted by Paint.
func (e *Editor) Brush() grid.Tile { return e.brush }

// HandleKey applies a key event and reports what the caller should do.
func (e *Editor) HandleKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyTab:
		e.CycleBrush()
		return ActionRedraw
	case tcell.KeyCtrlS:
		return ActionSaveQuit
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			if ev.Rune() == 's' || ev.Rune() == 'S' {
				return ActionSaveQuit
			}
			return ActionNone
		}
		return e.handleRune(ev.Rune())
	}
	return ActionNone
}

func (e *Editor) handleRune(r rune) Action {
	switch r {
	case 'w':
		e.Move(-1, 0)
	case 's':
		e.Move(1, 0)
	case 'a':
		e.Move(0, -1)
	case 'd':
		e.Move(0, 1)
	case 'W':
		e.Resize(-1, 0)
	case 'S':
		e.Resize(1, 0)
	case 'A':
		e.Resize(0, -1)
	case 'D':
		e.Resize(0, 1)
	case ' ':
		e.Rotate()
	case 'e':
		e.Paint()
	case 'q':
		return ActionQuit
	default:
		// Includes the reserved undo/redo/cut/copy/paste keys z y x c v.
		return ActionNone
	}
	return ActionRedraw
}

// Move shifts the selection origin, wrapping around the map edges.
func (e *Editor) Move(dRow, dCol int) {
	p := e.grid.Wrap(e.selection.Y+dRow, e.selection.X+dCol)
	e.selection.Y, e.selection.X = p.Row, p.Col
}

// Resize grows or shrinks the selection, keeping it between one cell and
// the full map.
func (e *Editor) Resize(dHeight, dWidth int) {
	e.selection.Height = clamp(e.selection.Height+dHeight, 1, e.grid.Height())
	e.selection.Width = clamp(e.selection.Width+dWidth, 1, e.grid.Width())
}

// CycleBrush steps the brush through floor, half cover, full cover.
func (e *Editor) CycleBrush() {
	e.brush = e.brush.Next()
}

// Paint sets every selected cell to the brush tile.
func (e *Editor) Paint() {
	for _, p := range e.selection.Cells(e.grid) {
		e.grid.Set(p, e.brush)
	}
}

// Rotate advances every selected cell to its next tile.
func (e *Editor) Rotate() {
	for _, p := range e.selection.Cells(e.grid) {
		e.grid.Set(p, e.grid.At(p).Next())
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
