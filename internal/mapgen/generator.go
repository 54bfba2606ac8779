// Package mapgen builds random battle maps: rooms split by binary space
// partitioning, joined by corridors and dotted with cover.
package mapgen

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/battletested/internal/grid"
	"github.com/samdwyer/battletested/internal/telemetry"
)

const (
	minRoomSize = 4
	maxRoomSize = 12
	minLeafSize = 6

	// One cover tile per coverArea floor cells of a room.
	coverArea = 10
)

// Generator carves rooms into a map filled with full cover.
type Generator struct {
	rng   *rand.Rand
	grid  *grid.Grid
	Rooms []Room
}

// New creates a generator for a map of the given size. Equal seeds give
// equal maps.
func New(width, height int, seed int64) *Generator {
	g := grid.New(width, height)
	g.Fill(grid.TileFullCover)
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		grid: g,
	}
}

// Generate lays out the map and returns it.
func (gen *Generator) Generate(ctx context.Context) *grid.Grid {
	_, span := telemetry.Tracer("mapgen").Start(ctx, "mapgen.generate")
	defer span.End()

	startTime := time.Now()

	root := &bspNode{
		row:    1,
		col:    1,
		width:  gen.grid.Width() - 2,
		height: gen.grid.Height() - 2,
	}
	gen.splitNode(root)
	gen.createRooms(root)
	// Corridors go in after cover so room centres stay linked.
	gen.connectRooms(root)

	counts := gen.grid.Count()
	span.SetAttributes(
		attribute.Int("map.width", gen.grid.Width()),
		attribute.Int("map.height", gen.grid.Height()),
		attribute.Int("map.room_count", len(gen.Rooms)),
		attribute.Int("map.floor", counts[grid.TileFloor]),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return gen.grid
}

type bspNode struct {
	row, col      int
	width, height int
	left, right   *bspNode
	room          *Room
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (gen *Generator) splitNode(node *bspNode) {
	var horizontal bool
	switch {
	case node.width > node.height && node.width >= minLeafSize*2:
		horizontal = false
	case node.height >= minLeafSize*2:
		horizontal = true
	case node.width >= minLeafSize*2:
		horizontal = false
	default:
		return
	}

	size := node.width
	if horizontal {
		size = node.height
	}
	lo, hi := minLeafSize, size-minLeafSize
	if hi < lo {
		return
	}
	split := lo + gen.rng.Intn(hi-lo+1)

	if horizontal {
		node.left = &bspNode{row: node.row, col: node.col, width: node.width, height: split}
		node.right = &bspNode{row: node.row + split, col: node.col, width: node.width, height: node.height - split}
	} else {
		node.left = &bspNode{row: node.row, col: node.col, width: split, height: node.height}
		node.right = &bspNode{row: node.row, col: node.col + split, width: node.width - split, height: node.height}
	}
	gen.splitNode(node.left)
	gen.splitNode(node.right)
}

func (gen *Generator) createRooms(node *bspNode) {
	if node == nil {
		return
	}
	if !node.isLeaf() {
		gen.createRooms(node.left)
		gen.createRooms(node.right)
		return
	}

	if node.width-2 < minRoomSize || node.height-2 < minRoomSize {
		return
	}
	width := minRoomSize + gen.rng.Intn(min(maxRoomSize, node.width-2)-minRoomSize+1)
	height := minRoomSize + gen.rng.Intn(min(maxRoomSize, node.height-2)-minRoomSize+1)

	room := Room{
		Row:    node.row + 1 + gen.rng.Intn(node.height-height-1),
		Col:    node.col + 1 + gen.rng.Intn(node.width-width-1),
		Width:  width,
		Height: height,
	}
	node.room = &room
	gen.Rooms = append(gen.Rooms, room)

	gen.carveRoom(room)
	gen.scatterCover(room)
}

func (gen *Generator) carveRoom(room Room) {
	for r := room.Row; r < room.Row+room.Height; r++ {
		for c := room.Col; c < room.Col+room.Width; c++ {
			gen.carve(grid.Pos(r, c))
		}
	}
}

// scatterCover drops half cover, and the odd pillar of full cover, inside
// the room.
func (gen *Generator) scatterCover(room Room) {
	n := room.Width * room.Height / coverArea
	for i := 0; i < n; i++ {
		p := grid.Pos(room.Row+gen.rng.Intn(room.Height), room.Col+gen.rng.Intn(room.Width))
		t := grid.TileHalfCover
		if gen.rng.Intn(4) == 0 {
			t = grid.TileFullCover
		}
		gen.grid.Set(p, t)
	}
}

func (gen *Generator) connectRooms(node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}
	gen.connectRooms(node.left)
	gen.connectRooms(node.right)

	a, b := roomIn(node.left), roomIn(node.right)
	if a != nil && b != nil {
		gen.carveCorridor(a.Center(), b.Center())
	}
}

// roomIn returns any room in the subtree.
func roomIn(node *bspNode) *Room {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	if room := roomIn(node.left); room != nil {
		return room
	}
	return roomIn(node.right)
}

func (gen *Generator) carveCorridor(from, to grid.Position) {
	if gen.rng.Intn(2) == 0 {
		gen.carveRow(from.Row, from.Col, to.Col)
		gen.carveCol(to.Col, from.Row, to.Row)
	} else {
		gen.carveCol(from.Col, from.Row, to.Row)
		gen.carveRow(to.Row, from.Col, to.Col)
	}
}

func (gen *Generator) carveRow(row, c1, c2 int) {
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	for c := c1; c <= c2; c++ {
		gen.carve(grid.Pos(row, c))
	}
}

func (gen *Generator) carveCol(col, r1, r2 int) {
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	for r := r1; r <= r2; r++ {
		gen.carve(grid.Pos(r, col))
	}
}

// carve sets p to floor, leaving the outer ring of the map solid.
func (gen *Generator) carve(p grid.Position) {
	if p.Row > 0 && p.Row < gen.grid.Height()-1 && p.Col > 0 && p.Col < gen.grid.Width()-1 {
		gen.grid.Set(p, grid.TileFloor)
	}
}
