// Package grid provides the tile map shared by the editor, the viewer and the
// reachability engine.
package grid

// Tile is a single map cell code.
// Codes 0 to 2 have game meaning; anything higher is a raw display glyph.
type Tile uint8

const (
	// TileFloor is open ground that can be walked through.
	TileFloor Tile = 0
	// TileHalfCover blocks movement and gives partial cover.
	TileHalfCover Tile = 1
	// TileFullCover blocks movement and gives full cover.
	TileFullCover Tile = 2

	// semanticTiles is the number of codes with game meaning.
	semanticTiles = 3
)

// Display runes for the semantic tiles.
const (
	RuneFloor     = '.'
	RuneHalfCover = 'x'
	RuneFullCover = '▒'
)

// IsObstacle returns true if the tile blocks movement.
func (t Tile) IsObstacle() bool {
	return t != TileFloor
}

// IsGlyph returns true for raw display codes without game meaning.
func (t Tile) IsGlyph() bool {
	return t >= semanticTiles
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	switch t {
	case TileFloor:
		return RuneFloor
	case TileHalfCover:
		return RuneHalfCover
	case TileFullCover:
		return RuneFullCover
	default:
		return rune(t)
	}
}

// Next returns the tile that follows t in the floor, half cover, full cover
// rotation. Raw glyph codes fold back into the rotation.
func (t Tile) Next() Tile {
	return Tile((int(t) + 1) % semanticTiles)
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileHalfCover:
		return "half-cover"
	case TileFullCover:
		return "full-cover"
	default:
		return "glyph"
	}
}
