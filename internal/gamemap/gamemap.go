package gamemap

// Fixed grid dimensions. The whole simulation assumes one constant map size.
const (
	Width  = 50
	Height = 30
)

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// GameMap holds the tile grid, the accepted rooms, and the per-floor
// traversal feature positions.
type GameMap struct {
	Tiles [Height][Width]Tile
	Rooms []Rect

	// Feature positions. Stairs always exists; the rest are optional
	// outcomes of bounded placement.
	Stairs      Point
	Elevator    *Point
	Teleporters []Point // committed in pairs only
	LockedDoor  *Point
	KeyDrop     *Point
	SafeRoom    *Rect
}

// New creates a GameMap filled with walls.
func New() *GameMap {
	m := &GameMap{}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			m.Tiles[y][x] = Tile{Kind: TileWall}
		}
	}
	return m
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// SetKind replaces the tile kind at (x, y), preserving visibility state.
func (m *GameMap) SetKind(x, y int, k TileKind) {
	m.Tiles[y][x].Kind = k
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[y][x].Walkable()
}

// IsTransparent returns true when (x, y) is in bounds and transparent.
func (m *GameMap) IsTransparent(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[y][x].Transparent()
}

// TeleporterPartner returns the paired teleporter for the pad at p, or
// false when p is not a teleporter tile.
func (m *GameMap) TeleporterPartner(p Point) (Point, bool) {
	for i, t := range m.Teleporters {
		if t == p {
			return m.Teleporters[i^1], true
		}
	}
	return Point{}, false
}
