package generate

import (
	"math/rand"

	"gloomdelve/assets"
	"gloomdelve/internal/component"
	"gloomdelve/internal/gamemap"
)

// populate spawns enemies, items, and traps. Each single spawn gets up to
// spawnAttempts random (room, tile) draws; exhausting them skips that spawn.
func populate(res *Result, cfg *Config) {
	rng := cfg.Rand
	floor := cfg.FloorNumber

	// No two same-category entities share a tile.
	type pt = [2]int
	enemyAt := make(map[pt]bool)
	itemAt := make(map[pt]bool)
	trapAt := make(map[pt]bool)

	enemyCount := 3 + 2*floor
	for i := 0; i < enemyCount; i++ {
		if x, y, ok := pickSpawnTile(res, rng, enemyAt); ok {
			enemyAt[pt{x, y}] = true
			res.Enemies = append(res.Enemies, EnemySpawn{
				Entry: assets.RandomEnemy(rng, floor), X: x, Y: y,
			})
		}
	}

	itemCount := 2 + rng.Intn(4)
	for i := 0; i < itemCount; i++ {
		if x, y, ok := pickSpawnTile(res, rng, itemAt); ok {
			itemAt[pt{x, y}] = true
			res.Items = append(res.Items, rollItem(rng, x, y))
		}
	}

	for i := 0; i < floor; i++ {
		if x, y, ok := pickSpawnTile(res, rng, trapAt); ok {
			trapAt[pt{x, y}] = true
			res.Traps = append(res.Traps, TrapSpawn{
				Entry: assets.RandomTrap(rng, floor), X: x, Y: y,
			})
		}
	}
}

// pickSpawnTile draws random (room, tile) pairs until it finds a plain
// floor tile that is not the player start and not already taken in the
// caller's category. Stairs and feature tiles fail the floor-kind check.
func pickSpawnTile(res *Result, rng *rand.Rand, taken map[[2]int]bool) (int, int, bool) {
	m := res.Map
	for try := 0; try < spawnAttempts; try++ {
		room := m.Rooms[rng.Intn(len(m.Rooms))]
		x := room.X1 + rng.Intn(room.Width())
		y := room.Y1 + rng.Intn(room.Height())
		if m.At(x, y).Kind != gamemap.TileFloor {
			continue
		}
		if x == res.PlayerStart.X && y == res.PlayerStart.Y {
			continue
		}
		if taken[[2]int{x, y}] {
			continue
		}
		return x, y, true
	}
	return 0, 0, false
}

// rollItem picks an item kind and, for weapons, the concrete template.
// Keys are never rolled here: they exist only behind a placed locked door.
func rollItem(rng *rand.Rand, x, y int) ItemSpawn {
	switch rng.Intn(10) {
	case 0, 1, 2:
		return ItemSpawn{Kind: component.ItemGold, X: x, Y: y}
	case 3, 4, 5:
		return ItemSpawn{Kind: component.ItemHealthPotion, X: x, Y: y}
	case 6, 7:
		w := assets.RandomWeapon(rng)
		return ItemSpawn{Kind: component.ItemWeapon, Weapon: &w, X: x, Y: y}
	default:
		return ItemSpawn{Kind: component.ItemArmor, X: x, Y: y}
	}
}
