package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileStairs
	TileElevator
	TileTeleporter
	TileLockedDoor
	TileSafeRoom
	TileSecretWall
)

// Tile holds the kind and visibility state for one map cell. Kinds mutate
// in place: locked doors and secret walls convert to floor when opened,
// and safe-room conversion is one-way.
type Tile struct {
	Kind     TileKind
	Visible  bool
	Explored bool
}

// Walkable reports whether an entity can stand on the tile. Locked doors
// and secret walls block until they are converted to floor.
func (t Tile) Walkable() bool {
	switch t.Kind {
	case TileWall, TileLockedDoor, TileSecretWall:
		return false
	}
	return true
}

// Transparent reports whether sight rays pass through the tile.
func (t Tile) Transparent() bool {
	return t.Walkable()
}

func (k TileKind) String() string {
	switch k {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileStairs:
		return "stairs"
	case TileElevator:
		return "elevator"
	case TileTeleporter:
		return "teleporter"
	case TileLockedDoor:
		return "locked door"
	case TileSafeRoom:
		return "safe room"
	default:
		return "secret wall"
	}
}
