package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gookit/color"

	"github.com/samdwyer/battletested/internal/grid"
	"github.com/samdwyer/battletested/internal/reach"
)

var (
	styleFloor     = color.Style{color.FgGray}
	styleHalfCover = color.Style{color.FgYellow}
	styleFullCover = color.Style{color.FgWhite, color.OpBold}
	styleGlyph     = color.Style{color.FgCyan}
	styleReach     = color.Style{color.FgGreen, color.OpBold}
	styleStart     = color.Style{color.FgRed, color.OpBold}
)

func tileStyle(t grid.Tile) color.Style {
	switch t {
	case grid.TileFloor:
		return styleFloor
	case grid.TileHalfCover:
		return styleHalfCover
	case grid.TileFullCover:
		return styleFullCover
	}
	return styleGlyph
}

// --- viz ---

// runViz prints the map, cropped to width columns.
func runViz(w io.Writer, m *grid.Grid, width int) {
	fmt.Fprintf(w, "map (%dx%d)\n", m.Width(), m.Height())

	cols := m.Width()
	if cols > width {
		cols = width
	}
	for r := 0; r < m.Height(); r++ {
		var sb strings.Builder
		for c := 0; c < cols; c++ {
			t := m.At(grid.Pos(r, c))
			sb.WriteString(tileStyle(t).Sprint(string(t.Rune())))
		}
		fmt.Fprintln(w, sb.String())
	}
	if cols < m.Width() {
		fmt.Fprintf(w, "(cropped to %d of %d columns)\n", cols, m.Width())
	}
}

// --- stats ---

func runStats(w io.Writer, m *grid.Grid) {
	total := m.Len()
	fmt.Fprintf(w, "map (%dx%d = %d tiles)\n\n", m.Width(), m.Height(), total)

	type entry struct {
		tile  grid.Tile
		count int
	}
	var sorted []entry
	for t, n := range m.Count() {
		sorted = append(sorted, entry{t, n})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].tile < sorted[j].tile
	})

	for _, e := range sorted {
		pct := float64(e.count) / float64(total) * 100
		bar := strings.Repeat("█", int(pct/2))
		fmt.Fprintf(w, "  %-12s %4d (%5.1f%%) %s\n", e.tile, e.count, pct, tileStyle(e.tile).Sprint(bar))
	}

	floor := m.Count()[grid.TileFloor]
	fmt.Fprintf(w, "\nFloor: %d/%d (%.1f%%)\n", floor, total, float64(floor)/float64(total)*100)
}

// --- reach ---

// fieldDigits encodes remaining distances as single characters.
const fieldDigits = "0123456789abcdefghijklmnopqrstuvwxyz"

func fieldRune(v int) rune {
	if v < len(fieldDigits) {
		return rune(fieldDigits[v])
	}
	return '+'
}

// runReach prints the distance field from start. Reached cells show their
// remaining distance, everything else shows its tile.
func runReach(ctx context.Context, w io.Writer, m *grid.Grid, start grid.Position, maxRange int) error {
	res, err := reach.Explore(ctx, m, maxRange, start)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "reach from %s, range %d\n", start, maxRange)
	for r := 0; r < m.Height(); r++ {
		var sb strings.Builder
		for c := 0; c < m.Width(); c++ {
			p := grid.Pos(r, c)
			switch {
			case p == start:
				sb.WriteString(styleStart.Sprint(string(fieldRune(res.Field.At(p)))))
			case res.Contains(p):
				sb.WriteString(styleReach.Sprint(string(fieldRune(res.Field.At(p)))))
			default:
				t := m.At(p)
				sb.WriteString(tileStyle(t).Sprint(string(t.Rune())))
			}
		}
		fmt.Fprintln(w, sb.String())
	}
	fmt.Fprintf(w, "\nReachable: %d cells, %d visits\n", res.Reached.Size(), res.Visits)
	return nil
}
