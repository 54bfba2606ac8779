package reach

import "github.com/samdwyer/battletested/internal/grid"

// Field records, per cell, the remaining range at which an exploration last
// reached it. Zero means either unreached or reached with nothing left.
//
// A Field belongs to one computation at a time: the engine reads it for
// pruning while it writes.
type Field struct {
	width  int
	height int
	values []int
}

// NewField creates a zeroed field of the given size.
func NewField(width, height int) *Field {
	return &Field{
		width:  width,
		height: height,
		values: make([]int, width*height),
	}
}

// NewFieldFor creates a zeroed field matching the grid's shape.
func NewFieldFor(g *grid.Grid) *Field {
	return NewField(g.Width(), g.Height())
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.width }

// Height returns the number of rows.
func (f *Field) Height() int { return f.height }

// Reset zeroes every cell.
func (f *Field) Reset() {
	for i := range f.values {
		f.values[i] = 0
	}
}

// At returns the recorded value at p, or 0 outside the field.
func (f *Field) At(p grid.Position) int {
	if p.Row < 0 || p.Row >= f.height || p.Col < 0 || p.Col >= f.width {
		return 0
	}
	return f.values[p.Row*f.width+p.Col]
}

// Values returns a copy of the row-major values.
func (f *Field) Values() []int {
	out := make([]int, len(f.values))
	copy(out, f.values)
	return out
}

// Rows returns the values as a slice of rows.
func (f *Field) Rows() [][]int {
	rows := make([][]int, f.height)
	for y := range rows {
		rows[y] = make([]int, f.width)
		copy(rows[y], f.values[y*f.width:(y+1)*f.width])
	}
	return rows
}

func (f *Field) matches(g *grid.Grid) bool {
	return f.width == g.Width() && f.height == g.Height()
}
