package generate

import (
	"math/rand"

	"gloomdelve/internal/component"
	"gloomdelve/internal/gamemap"
)

// placeFeatures adds the optional traversal features. Each one is gated by
// its own probability and bounded by its own attempt budget; a feature that
// cannot find a valid placement is omitted without complaint.
func placeFeatures(res *Result, cfg *Config) {
	placeElevator(res, cfg)
	placeTeleporters(res, cfg)
	placeLockedDoor(res, cfg)
	placeSafeRoom(res, cfg)
	placeSecretPassage(res, cfg)
}

// placeElevator converts one plain floor tile on floors 2+, 50% of the time.
func placeElevator(res *Result, cfg *Config) {
	if cfg.FloorNumber < 2 || cfg.Rand.Intn(100) >= 50 {
		return
	}
	m := res.Map
	for try := 0; try < spawnAttempts; try++ {
		room := m.Rooms[cfg.Rand.Intn(len(m.Rooms))]
		x := room.X1 + cfg.Rand.Intn(room.Width())
		y := room.Y1 + cfg.Rand.Intn(room.Height())
		if m.At(x, y).Kind != gamemap.TileFloor {
			continue
		}
		if x == res.PlayerStart.X && y == res.PlayerStart.Y {
			continue
		}
		m.SetKind(x, y, gamemap.TileElevator)
		m.Elevator = &gamemap.Point{X: x, Y: y}
		return
	}
}

// placeTeleporters places a linked pad pair, 40% of the time. The pair is
// committed only when both sides found a tile; a half-placed pair is thrown
// away untouched.
func placeTeleporters(res *Result, cfg *Config) {
	if cfg.Rand.Intn(100) >= 40 {
		return
	}
	m := res.Map
	n := len(m.Rooms)
	a := cfg.Rand.Intn(n)
	b := a
	if n > 1 {
		b = (a + 1 + cfg.Rand.Intn(n-1)) % n
	}

	p1, ok1 := freeFloorTile(res, cfg.Rand, m.Rooms[a])
	p2, ok2 := freeFloorTile(res, cfg.Rand, m.Rooms[b])
	if !ok1 || !ok2 || p1 == p2 {
		return
	}
	m.SetKind(p1.X, p1.Y, gamemap.TileTeleporter)
	m.SetKind(p2.X, p2.Y, gamemap.TileTeleporter)
	m.Teleporters = append(m.Teleporters, p1, p2)
}

// placeLockedDoor converts an edge cell of a back-half room into a locked
// door and drops the key in a front-half room, on floors 2+ with 60%
// probability. If no key tile can be found the door is rolled back: a key
// exists only with a door, and a door never exists without its key.
func placeLockedDoor(res *Result, cfg *Config) {
	if cfg.FloorNumber < 2 || cfg.Rand.Intn(100) >= 60 {
		return
	}
	m := res.Map
	n := len(m.Rooms)
	if n < 2 {
		return
	}

	var door gamemap.Point
	placed := false
	for try := 0; try < spawnAttempts && !placed; try++ {
		room := m.Rooms[n/2+cfg.Rand.Intn(n-n/2)]
		x := room.X1 + cfg.Rand.Intn(room.Width())
		y := room.Y1 + cfg.Rand.Intn(room.Height())
		onEdge := x == room.X1 || x == room.X2 || y == room.Y1 || y == room.Y2
		if !onEdge || m.At(x, y).Kind != gamemap.TileFloor {
			continue
		}
		door = gamemap.Point{X: x, Y: y}
		placed = true
	}
	if !placed {
		return
	}

	for try := 0; try < spawnAttempts; try++ {
		room := m.Rooms[cfg.Rand.Intn(n/2)]
		x := room.X1 + cfg.Rand.Intn(room.Width())
		y := room.Y1 + cfg.Rand.Intn(room.Height())
		if m.At(x, y).Kind != gamemap.TileFloor {
			continue
		}
		if x == res.PlayerStart.X && y == res.PlayerStart.Y {
			continue
		}
		if itemOccupies(res, x, y) {
			continue
		}
		m.SetKind(door.X, door.Y, gamemap.TileLockedDoor)
		m.LockedDoor = &door
		m.KeyDrop = &gamemap.Point{X: x, Y: y}
		res.Items = append(res.Items, ItemSpawn{Kind: component.ItemKey, X: x, Y: y})
		return
	}
}

// placeSafeRoom converts one small interior room (≤5×5, never the first or
// last) into a safe room and evicts enemies spawned inside it. Chance grows
// with depth: 30% + 5% per floor.
func placeSafeRoom(res *Result, cfg *Config) {
	if cfg.Rand.Intn(100) >= 30+5*cfg.FloorNumber {
		return
	}
	m := res.Map
	var candidates []gamemap.Rect
	for i, room := range m.Rooms {
		if i == 0 || i == len(m.Rooms)-1 {
			continue
		}
		if room.Width() <= 5 && room.Height() <= 5 {
			candidates = append(candidates, room)
		}
	}
	if len(candidates) == 0 {
		return
	}
	room := candidates[cfg.Rand.Intn(len(candidates))]

	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			if m.At(x, y).Kind == gamemap.TileFloor {
				m.SetKind(x, y, gamemap.TileSafeRoom)
			}
		}
	}
	m.SafeRoom = &room

	kept := res.Enemies[:0]
	for _, e := range res.Enemies {
		if !room.Contains(e.X, e.Y) {
			kept = append(kept, e)
		}
	}
	res.Enemies = kept
}

// placeSecretPassage scans random wall cells for one flanked by floor on
// both horizontal or both vertical neighbors, 25% of the time.
func placeSecretPassage(res *Result, cfg *Config) {
	if cfg.Rand.Intn(100) >= 25 {
		return
	}
	m := res.Map
	for try := 0; try < secretAttempts; try++ {
		x := cfg.Rand.Intn(gamemap.Width)
		y := cfg.Rand.Intn(gamemap.Height)
		if m.At(x, y).Kind != gamemap.TileWall {
			continue
		}
		horiz := m.InBounds(x-1, y) && m.InBounds(x+1, y) &&
			m.At(x-1, y).Kind == gamemap.TileFloor && m.At(x+1, y).Kind == gamemap.TileFloor
		vert := m.InBounds(x, y-1) && m.InBounds(x, y+1) &&
			m.At(x, y-1).Kind == gamemap.TileFloor && m.At(x, y+1).Kind == gamemap.TileFloor
		if horiz || vert {
			m.SetKind(x, y, gamemap.TileSecretWall)
			return
		}
	}
}

func freeFloorTile(res *Result, rng *rand.Rand, room gamemap.Rect) (gamemap.Point, bool) {
	m := res.Map
	for try := 0; try < spawnAttempts; try++ {
		x := room.X1 + rng.Intn(room.Width())
		y := room.Y1 + rng.Intn(room.Height())
		if m.At(x, y).Kind != gamemap.TileFloor {
			continue
		}
		if x == res.PlayerStart.X && y == res.PlayerStart.Y {
			continue
		}
		return gamemap.Point{X: x, Y: y}, true
	}
	return gamemap.Point{}, false
}

func itemOccupies(res *Result, x, y int) bool {
	for _, it := range res.Items {
		if it.X == x && it.Y == y {
			return true
		}
	}
	return false
}
