package reach

import (
	"context"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/battletested/internal/grid"
	"github.com/samdwyer/battletested/internal/telemetry"
)

// Result is the outcome of one exploration on its own field.
type Result struct {
	Start   grid.Position
	Range   int
	Field   *Field
	Reached mapset.Set[grid.Position] // every cell entered, including ones left with 0
	Visits  int                       // recursive entries, revisits included
}

// Explore runs a traced computation on a fresh field.
func Explore(ctx context.Context, g *grid.Grid, maxRange int, start grid.Position) (*Result, error) {
	tracer := telemetry.Tracer("reach")
	_, span := tracer.Start(ctx, "reach.explore")
	defer span.End()

	span.SetAttributes(
		attribute.Int("reach.range", maxRange),
		attribute.Int("reach.start_row", start.Row),
		attribute.Int("reach.start_col", start.Col),
	)

	res := &Result{
		Start:   start,
		Range:   maxRange,
		Field:   NewFieldFor(g),
		Reached: mapset.New[grid.Position](),
	}
	err := ComputeFunc(g, res.Field, maxRange, start, func(p grid.Position, _ int) {
		res.Visits++
		res.Reached.Put(p)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("reach.visits", res.Visits),
		attribute.Int("reach.cells", res.Reached.Size()),
	)
	return res, nil
}

// Contains reports whether p was entered during the exploration.
func (r *Result) Contains(p grid.Position) bool {
	return r.Reached.Has(p)
}
