// Package reach computes movement ranges over a tile grid.
//
// The exploration is a depth-first flood bounded by a remaining range that
// drops by one per step. A neighbour is entered only when it is in bounds,
// is floor, and its recorded value is strictly lower than the current
// remaining range. Neighbours are tried up, down, left, right, and every
// entry overwrites the cell's value. The origin itself is never tile-checked,
// so a unit standing on cover still gets a range.
package reach

import (
	"errors"
	"fmt"

	"github.com/samdwyer/battletested/internal/grid"
)

// DefaultRange is the movement range used when none is configured.
const DefaultRange = 5

var (
	// ErrInvalidStart is returned when the start cell is outside the grid.
	ErrInvalidStart = errors.New("start position outside grid")
	// ErrInvalidRange is returned for a negative range.
	ErrInvalidRange = errors.New("range must not be negative")
	// ErrFieldShape is returned when the field and grid sizes differ.
	ErrFieldShape = errors.New("distance field does not match grid size")
)

// VisitFunc is called on every entry into a cell, in exploration order,
// with the remaining range recorded there.
type VisitFunc func(p grid.Position, remaining int)

// Compute explores from start and records remaining ranges into field.
// The caller zeroes the field beforehand; Compute never resets it.
func Compute(g *grid.Grid, field *Field, maxRange int, start grid.Position) error {
	return ComputeFunc(g, field, maxRange, start, nil)
}

// ComputeFunc is Compute with a visit callback.
func ComputeFunc(g *grid.Grid, field *Field, maxRange int, start grid.Position, visit VisitFunc) error {
	if !field.matches(g) {
		return fmt.Errorf("%w: field %dx%d, grid %dx%d",
			ErrFieldShape, field.width, field.height, g.Width(), g.Height())
	}
	if maxRange < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRange, maxRange)
	}
	if !g.InBounds(start) {
		return fmt.Errorf("%w: %v in %dx%d", ErrInvalidStart, start, g.Width(), g.Height())
	}

	e := explorer{grid: g, field: field, visit: visit}
	e.explore(maxRange, start)
	return nil
}

type explorer struct {
	grid  *grid.Grid
	field *Field
	visit VisitFunc
}

// explore records dist at p and recurses into eligible neighbours.
func (e *explorer) explore(dist int, p grid.Position) {
	e.field.values[e.grid.Index(p)] = dist
	if e.visit != nil {
		e.visit(p, dist)
	}
	if dist <= 0 {
		return
	}
	// Order matters: the field is live between calls.
	for _, n := range [4]grid.Position{p.Up(), p.Down(), p.Left(), p.Right()} {
		if e.enterable(dist, n) {
			e.explore(dist-1, n)
		}
	}
}

func (e *explorer) enterable(dist int, n grid.Position) bool {
	if !e.grid.InBounds(n) {
		return false
	}
	i := e.grid.Index(n)
	return dist > e.field.values[i] && e.grid.At(n) == grid.TileFloor
}
