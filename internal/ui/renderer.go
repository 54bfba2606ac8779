package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/battletested/internal/entity"
	"github.com/samdwyer/battletested/internal/grid"
	"github.com/samdwyer/battletested/internal/theme"
)

// Screen layout. The map sits inside a one-cell border that starts on the
// row below the message line.
const (
	MessageRow = 0
	BorderTop  = 1
	mapLeft    = 1
	mapTop     = BorderTop + 1
)

// CellOrigin returns the screen coordinates of map cell p.
func CellOrigin(p grid.Position) (x, y int) {
	return p.Col + mapLeft, p.Row + mapTop
}

// InfoRows returns the two status rows below a map of the given height.
func InfoRows(height int) (int, int) {
	bottom := mapTop + height
	return bottom + 1, bottom + 2
}

// Renderer handles drawing the map and its overlays to the screen.
type Renderer struct {
	screen *Screen
	styles theme.Styles
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, styles theme.Styles) *Renderer {
	return &Renderer{screen: screen, styles: styles}
}

// SetStyles swaps the theme used for subsequent draws.
func (r *Renderer) SetStyles(styles theme.Styles) {
	r.styles = styles
}

// TextStyle returns the style used for plain text.
func (r *Renderer) TextStyle() tcell.Style {
	return r.styles.Text
}

// Clear clears the whole screen.
func (r *Renderer) Clear() {
	r.screen.Clear()
}

// Show flushes pending draws.
func (r *Renderer) Show() {
	r.screen.Show()
}

// DrawBorder draws a box around a map of the given size.
func (r *Renderer) DrawBorder(width, height int) {
	style := r.styles.Border
	top, bottom := BorderTop, mapTop+height
	right := mapLeft + width

	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, style)
		r.screen.SetContent(right, y, tcell.RuneVLine, style)
	}
	for x := 1; x < right; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, style)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, style)
	}
	r.screen.SetContent(0, top, tcell.RuneULCorner, style)
	r.screen.SetContent(right, top, tcell.RuneURCorner, style)
	r.screen.SetContent(0, bottom, tcell.RuneLLCorner, style)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, style)
}

// DrawMap draws every tile of g.
func (r *Renderer) DrawMap(g *grid.Grid) {
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			p := grid.Pos(row, col)
			tile := g.At(p)
			r.drawCell(p, tile.Rune(), r.styles.Tile(tile))
		}
	}
}

// DrawSelection redraws the given cells with the selection highlight.
func (r *Renderer) DrawSelection(g *grid.Grid, cells []grid.Position) {
	for _, p := range cells {
		r.drawCell(p, g.At(p).Rune(), r.styles.Selection)
	}
}

// DrawMoveOverlay highlights every cell a unit can reach.
func (r *Renderer) DrawMoveOverlay(g *grid.Grid, reached mapset.Set[grid.Position]) {
	reached.Each(func(p grid.Position) {
		r.drawCell(p, g.At(p).Rune(), r.styles.Move)
	})
}

// DrawPlayer draws a character on top of the map.
func (r *Renderer) DrawPlayer(c *entity.Character) {
	_, bg, _ := r.styles.Move.Decompose()
	style := tcell.StyleDefault.Background(bg).Foreground(c.Color).Bold(true)
	r.drawCell(c.Position(), c.Glyph, style)
}

// DrawInfo prints the editor status lines under the map.
func (r *Renderer) DrawInfo(mapHeight, x, y, width, height int, tile grid.Tile) {
	row1, row2 := InfoRows(mapHeight)
	r.ClearLine(row1)
	r.ClearLine(row2)

	end := r.Text(0, row1, gotext.Get("Current X: %d, Current Y: %d, Current Tile: ", x, y), r.styles.Text)
	r.screen.SetContent(end, row1, tile.Rune(), r.styles.Tile(tile))
	r.Text(0, row2, gotext.Get("Current Width: %d, Current Height: %d", width, height), r.styles.Text)
}

// Message replaces the message line with the given text.
func (r *Renderer) Message(msg string) {
	r.ClearLine(MessageRow)
	r.Text(0, MessageRow, msg, r.styles.Text)
}

// ClearLine blanks a full screen row.
func (r *Renderer) ClearLine(y int) {
	width, _ := r.screen.Size()
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', r.styles.Text)
	}
}

// Text writes s starting at (x, y) and returns the column after it.
func (r *Renderer) Text(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
	return x
}

func (r *Renderer) drawCell(p grid.Position, ch rune, style tcell.Style) {
	x, y := CellOrigin(p)
	r.screen.SetContent(x, y, ch, style)
}
