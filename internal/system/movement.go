package system

import (
	"gloomdelve/internal/component"
	"gloomdelve/internal/ecs"
	"gloomdelve/internal/gamemap"
)

// MoveResult describes the outcome of a player move attempt.
type MoveResult uint8

const (
	MoveOK             MoveResult = iota // position updated
	MoveOutOfBounds                      // silent no-op
	MoveBlocked                          // wall
	MoveDoorLocked                       // locked door, no key held
	MoveDoorOpened                       // key consumed, door converted, moved in
	MoveSecretRevealed                   // secret wall converted, moved in
	MoveAttack                           // bumped an enemy; no relocation
)

// TryMove resolves one step of the player by (dx, dy). Resolution order:
// bounds, wall, locked door (auto-unlock with the key), secret wall
// (auto-reveal), enemy bump, relocation. Unlocking converts the door tile
// to floor, clears the door state, and removes exactly one key from the
// pack. The conversion is irreversible.
func TryMove(w *ecs.World, m *gamemap.GameMap, id ecs.EntityID, dx, dy int) (MoveResult, ecs.EntityID) {
	posComp := w.Get(id, component.CPosition)
	if posComp == nil {
		return MoveOutOfBounds, ecs.NilEntity
	}
	pos := posComp.(component.Position)
	nx, ny := pos.X+dx, pos.Y+dy

	if !m.InBounds(nx, ny) {
		return MoveOutOfBounds, ecs.NilEntity
	}

	opened := MoveOK
	switch m.At(nx, ny).Kind {
	case gamemap.TileWall:
		return MoveBlocked, ecs.NilEntity

	case gamemap.TileLockedDoor:
		packComp := w.Get(id, component.CPack)
		if packComp == nil {
			return MoveDoorLocked, ecs.NilEntity
		}
		pack := packComp.(component.Pack)
		if !pack.HasKey {
			return MoveDoorLocked, ecs.NilEntity
		}
		pack.HasKey = false
		if i := pack.Find(component.ItemKey); i >= 0 {
			pack.Slots[i].Qty--
			if pack.Slots[i].Qty <= 0 {
				pack.Slots = append(pack.Slots[:i], pack.Slots[i+1:]...)
			}
		}
		w.Add(id, pack)
		m.SetKind(nx, ny, gamemap.TileFloor)
		m.LockedDoor = nil
		opened = MoveDoorOpened

	case gamemap.TileSecretWall:
		m.SetKind(nx, ny, gamemap.TileFloor)
		opened = MoveSecretRevealed
	}

	if enemy := EnemyAt(w, nx, ny); enemy != ecs.NilEntity {
		return MoveAttack, enemy
	}

	w.Add(id, component.Position{X: nx, Y: ny})
	return opened, ecs.NilEntity
}

// EnemyAt returns the enemy standing on (x, y), or NilEntity.
func EnemyAt(w *ecs.World, x, y int) ecs.EntityID {
	for _, id := range w.Query(component.CTagEnemy, component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		if pos.X == x && pos.Y == y {
			return id
		}
	}
	return ecs.NilEntity
}
