package generate

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"gloomdelve/assets"
	"gloomdelve/internal/component"
	"gloomdelve/internal/gamemap"
	"gloomdelve/internal/logging"
)

// Placement attempt budgets. Exhausting a budget silently omits that one
// placement; the floor stays playable.
const (
	roomBudget     = 12
	minRoomSize    = 4
	maxRoomSize    = 10
	spawnAttempts  = 50
	secretAttempts = 100
)

// Config drives procedural generation for one floor.
type Config struct {
	FloorNumber int
	Rand        *rand.Rand
}

// EnemySpawn describes one enemy to create.
type EnemySpawn struct {
	Entry assets.EnemyEntry
	X, Y  int
}

// ItemSpawn describes one ground item to create. Weapon items carry the
// concrete weapon rolled at generation time; gold amounts and armor pieces
// are rolled at pickup.
type ItemSpawn struct {
	Kind   component.ItemKind
	Weapon *assets.WeaponEntry
	X, Y   int
}

// TrapSpawn describes one trap to create.
type TrapSpawn struct {
	Entry assets.TrapEntry
	X, Y  int
}

// Result is a fully generated floor: the map plus everything to spawn on it.
type Result struct {
	Map         *gamemap.GameMap
	PlayerStart gamemap.Point
	Enemies     []EnemySpawn
	Items       []ItemSpawn
	Traps       []TrapSpawn
}

// Generate builds one floor. Deterministic given the state of cfg.Rand.
func Generate(cfg *Config) *Result {
	m := gamemap.New()
	rng := cfg.Rand

	placeRooms(m, rng)
	connectRooms(m, rng)

	res := &Result{Map: m}
	px, py := m.Rooms[0].Center()
	res.PlayerStart = gamemap.Point{X: px, Y: py}

	sx, sy := m.Rooms[len(m.Rooms)-1].Center()
	m.SetKind(sx, sy, gamemap.TileStairs)
	m.Stairs = gamemap.Point{X: sx, Y: sy}

	populate(res, cfg)
	placeFeatures(res, cfg)

	logging.Log.WithFields(logrus.Fields{
		"floor":   cfg.FloorNumber,
		"rooms":   len(m.Rooms),
		"enemies": len(res.Enemies),
		"items":   len(res.Items),
		"traps":   len(res.Traps),
	}).Debug("floor generated")

	return res
}

// placeRooms attempts the full room budget of random rectangles, accepting
// only those that clear the buffered intersection test, and carves accepted
// rooms immediately. At least one room always survives in practice: the
// first attempt has nothing to collide with.
func placeRooms(m *gamemap.GameMap, rng *rand.Rand) {
	for i := 0; i < roomBudget; i++ {
		w := minRoomSize + rng.Intn(maxRoomSize-minRoomSize+1)
		h := minRoomSize + rng.Intn(maxRoomSize-minRoomSize+1)
		x := 1 + rng.Intn(gamemap.Width-w-1)
		y := 1 + rng.Intn(gamemap.Height-h-1)
		room := gamemap.NewRect(x, y, w, h)

		rejected := false
		for _, other := range m.Rooms {
			if room.Intersects(other) {
				rejected = true
				break
			}
		}
		if rejected {
			continue
		}

		for ty := room.Y1; ty <= room.Y2; ty++ {
			for tx := room.X1; tx <= room.X2; tx++ {
				m.SetKind(tx, ty, gamemap.TileFloor)
			}
		}
		m.Rooms = append(m.Rooms, room)
	}
}

// connectRooms joins consecutively accepted rooms with L-shaped corridors.
// A coin flip picks whether the horizontal leg runs first (at the earlier
// room's row) or the vertical leg does.
func connectRooms(m *gamemap.GameMap, rng *rand.Rand) {
	for i := 1; i < len(m.Rooms); i++ {
		x1, y1 := m.Rooms[i-1].Center()
		x2, y2 := m.Rooms[i].Center()
		if rng.Intn(2) == 0 {
			carveH(m, x1, x2, y1)
			carveV(m, y1, y2, x2)
		} else {
			carveV(m, y1, y2, x1)
			carveH(m, x1, x2, y2)
		}
	}
}

func carveH(m *gamemap.GameMap, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if m.InBounds(x, y) {
			m.SetKind(x, y, gamemap.TileFloor)
		}
	}
}

func carveV(m *gamemap.GameMap, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if m.InBounds(x, y) {
			m.SetKind(x, y, gamemap.TileFloor)
		}
	}
}
