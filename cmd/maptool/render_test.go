package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/battletested/internal/grid"
	"github.com/samdwyer/battletested/internal/mapfile"
	"github.com/samdwyer/battletested/internal/reach"
)

func TestMain(m *testing.M) {
	color.Disable()
	os.Exit(m.Run())
}

func sampleMap() *grid.Grid {
	g := grid.New(5, 3)
	g.Set(grid.Pos(1, 1), grid.TileHalfCover)
	g.Set(grid.Pos(1, 3), grid.TileFullCover)
	return g
}

func TestRunViz(t *testing.T) {
	var buf bytes.Buffer
	runViz(&buf, sampleMap(), 80)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "map (5x3)", lines[0])
	assert.Equal(t, ".x.▒.", lines[2])
}

func TestRunVizCrops(t *testing.T) {
	var buf bytes.Buffer
	runViz(&buf, sampleMap(), 3)
	out := buf.String()
	assert.Contains(t, out, "\n.x.\n")
	assert.Contains(t, out, "(cropped to 3 of 5 columns)")
}

func TestRunStats(t *testing.T) {
	var buf bytes.Buffer
	runStats(&buf, sampleMap())
	out := buf.String()
	assert.Contains(t, out, "map (5x3 = 15 tiles)")
	assert.Contains(t, out, "floor")
	assert.Contains(t, out, "Floor: 13/15 (86.7%)")
	assert.Less(t, strings.Index(out, "floor"), strings.Index(out, "half-cover"))
}

func TestRunReach(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runReach(context.Background(), &buf, sampleMap(), grid.Pos(0, 0), 2))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "reach from (0,0), range 2", lines[0])
	assert.Equal(t, "210..", lines[1])
	assert.Equal(t, "1x.▒.", lines[2])
	assert.Equal(t, "0....", lines[3])
	assert.Contains(t, buf.String(), "Reachable: 5 cells")
}

func TestRunReachInvalidStart(t *testing.T) {
	var buf bytes.Buffer
	err := runReach(context.Background(), &buf, sampleMap(), grid.Pos(9, 9), 2)
	assert.ErrorIs(t, err, reach.ErrInvalidStart)
}

func TestParseReachArgs(t *testing.T) {
	p, r, err := parseReachArgs([]string{"3", "4"})
	require.NoError(t, err)
	assert.Equal(t, grid.Pos(3, 4), p)
	assert.Equal(t, reach.DefaultRange, r)

	_, r, err = parseReachArgs([]string{"3", "4", "7"})
	require.NoError(t, err)
	assert.Equal(t, 7, r)

	_, _, err = parseReachArgs([]string{"x", "4"})
	assert.Error(t, err)

	_, r, err = parseReachArgs([]string{"3", "4", "18"})
	require.NoError(t, err)
	assert.Equal(t, 18, r)

	_, _, err = parseReachArgs([]string{"3", "4", "19"})
	assert.ErrorContains(t, err, "exceeds the limit")
}

func TestRunGen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.map")
	require.NoError(t, runGen(context.Background(), []string{path, "42"}))

	m, err := mapfile.Load(context.Background(), path, grid.DefaultWidth, grid.DefaultHeight)
	require.NoError(t, err)
	assert.Positive(t, m.Count()[grid.TileFloor])

	assert.Error(t, runGen(context.Background(), []string{path, "nope"}))
}
