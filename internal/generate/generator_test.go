package generate

import (
	"math/rand"
	"testing"

	"gloomdelve/internal/component"
	"gloomdelve/internal/gamemap"
)

// genFloors runs the generator across a spread of seeds and floors so the
// invariant checks see many layouts, not one lucky one.
func genFloors(t *testing.T, check func(t *testing.T, floor int, res *Result)) {
	t.Helper()
	for seed := int64(1); seed <= 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for floor := 1; floor <= 5; floor++ {
			res := Generate(&Config{FloorNumber: floor, Rand: rng})
			check(t, floor, res)
			if t.Failed() {
				t.Fatalf("failed at seed=%d floor=%d", seed, floor)
			}
		}
	}
}

func TestRoomsDoNotOverlap(t *testing.T) {
	genFloors(t, func(t *testing.T, floor int, res *Result) {
		rooms := res.Map.Rooms
		if len(rooms) < 2 {
			t.Errorf("expected at least 2 rooms, got %d", len(rooms))
			return
		}
		for i := 0; i < len(rooms); i++ {
			for j := i + 1; j < len(rooms); j++ {
				if rooms[i].Intersects(rooms[j]) {
					t.Errorf("rooms %d and %d overlap: %+v %+v", i, j, rooms[i], rooms[j])
				}
			}
		}
	})
}

func TestPlayerStartAndStairs(t *testing.T) {
	genFloors(t, func(t *testing.T, floor int, res *Result) {
		m := res.Map
		ps := res.PlayerStart
		if !m.Rooms[0].Contains(ps.X, ps.Y) {
			t.Errorf("player start %v outside first room %+v", ps, m.Rooms[0])
		}
		if !m.IsWalkable(ps.X, ps.Y) {
			t.Errorf("player start %v not walkable", ps)
		}
		last := m.Rooms[len(m.Rooms)-1]
		if !last.Contains(m.Stairs.X, m.Stairs.Y) {
			t.Errorf("stairs %v outside last room %+v", m.Stairs, last)
		}
		if m.At(m.Stairs.X, m.Stairs.Y).Kind != gamemap.TileStairs {
			t.Errorf("stairs tile has kind %v", m.At(m.Stairs.X, m.Stairs.Y).Kind)
		}
	})
}

// passable treats locked doors and secret walls as open: both convert to
// floor during play, so they must not be allowed to wall off the stairs.
func passable(k gamemap.TileKind) bool {
	switch k {
	case gamemap.TileWall:
		return false
	default:
		return true
	}
}

func TestStairsAlwaysReachable(t *testing.T) {
	genFloors(t, func(t *testing.T, floor int, res *Result) {
		m := res.Map
		var seen [gamemap.Height][gamemap.Width]bool
		queue := []gamemap.Point{res.PlayerStart}
		seen[res.PlayerStart.Y][res.PlayerStart.X] = true

		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				nx, ny := p.X+d[0], p.Y+d[1]
				if !m.InBounds(nx, ny) || seen[ny][nx] || !passable(m.At(nx, ny).Kind) {
					continue
				}
				seen[ny][nx] = true
				queue = append(queue, gamemap.Point{X: nx, Y: ny})
			}
		}

		if !seen[m.Stairs.Y][m.Stairs.X] {
			t.Error("stairs unreachable from player start")
		}
	})
}

func TestTeleportersComeInPairs(t *testing.T) {
	genFloors(t, func(t *testing.T, floor int, res *Result) {
		m := res.Map
		if n := len(m.Teleporters); n != 0 && n != 2 {
			t.Errorf("expected 0 or 2 teleporter pads, got %d", n)
			return
		}
		for _, p := range m.Teleporters {
			if m.At(p.X, p.Y).Kind != gamemap.TileTeleporter {
				t.Errorf("pad at %v has kind %v", p, m.At(p.X, p.Y).Kind)
			}
		}
	})
}

func TestLockedDoorAlwaysHasKey(t *testing.T) {
	genFloors(t, func(t *testing.T, floor int, res *Result) {
		m := res.Map
		if m.LockedDoor == nil {
			if m.KeyDrop != nil {
				t.Error("key dropped without a door")
			}
			return
		}
		if m.KeyDrop == nil {
			t.Error("door placed without a key")
			return
		}
		found := false
		for _, it := range res.Items {
			if it.Kind == component.ItemKey && it.X == m.KeyDrop.X && it.Y == m.KeyDrop.Y {
				found = true
			}
		}
		if !found {
			t.Errorf("no key item spawn at %v", *m.KeyDrop)
		}
		if m.At(m.LockedDoor.X, m.LockedDoor.Y).Kind != gamemap.TileLockedDoor {
			t.Error("door position does not hold a locked-door tile")
		}
	})
}

func TestSafeRoomHoldsNoEnemies(t *testing.T) {
	genFloors(t, func(t *testing.T, floor int, res *Result) {
		room := res.Map.SafeRoom
		if room == nil {
			return
		}
		for _, e := range res.Enemies {
			if room.Contains(e.X, e.Y) {
				t.Errorf("enemy spawned inside the safe room at (%d,%d)", e.X, e.Y)
			}
		}
	})
}

func TestSpawnBudgetsScaleWithDepth(t *testing.T) {
	genFloors(t, func(t *testing.T, floor int, res *Result) {
		if want := 3 + 2*floor; len(res.Enemies) > want {
			t.Errorf("floor %d: %d enemies exceeds budget %d", floor, len(res.Enemies), want)
		}
		if len(res.Enemies) == 0 {
			t.Errorf("floor %d: no enemies at all", floor)
		}
		if len(res.Traps) > floor {
			t.Errorf("floor %d: %d traps exceeds budget %d", floor, len(res.Traps), floor)
		}
		for _, e := range res.Enemies {
			if !res.Map.IsWalkable(e.X, e.Y) {
				t.Errorf("enemy spawn on unwalkable tile (%d,%d)", e.X, e.Y)
			}
		}
		for _, it := range res.Items {
			if !res.Map.IsWalkable(it.X, it.Y) {
				t.Errorf("item spawn on unwalkable tile (%d,%d)", it.X, it.Y)
			}
		}
	})
}
