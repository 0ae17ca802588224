package system

import (
	"testing"

	"gloomdelve/internal/component"
	"gloomdelve/internal/ecs"
	"gloomdelve/internal/gamemap"
)

func openMap() *gamemap.GameMap {
	m := gamemap.New()
	carve(m, 1, 1, 20, 20)
	return m
}

func TestTryMoveBasics(t *testing.T) {
	w := ecs.NewWorld()
	m := openMap()
	p := testPlayer(w) // at (5,5)

	res, _ := TryMove(w, m, p, 1, 0)
	if res != MoveOK {
		t.Fatalf("expected MoveOK, got %v", res)
	}
	pos := w.Get(p, component.CPosition).(component.Position)
	if pos.X != 6 || pos.Y != 5 {
		t.Fatalf("expected (6,5), got (%d,%d)", pos.X, pos.Y)
	}

	m.SetKind(7, 5, gamemap.TileWall)
	res, _ = TryMove(w, m, p, 1, 0)
	if res != MoveBlocked {
		t.Fatalf("expected MoveBlocked, got %v", res)
	}
	pos = w.Get(p, component.CPosition).(component.Position)
	if pos.X != 6 {
		t.Fatal("blocked move must not relocate")
	}
}

func TestTryMoveOutOfBounds(t *testing.T) {
	w := ecs.NewWorld()
	m := openMap()
	p := w.CreateEntity()
	w.Add(p, component.Position{X: 0, Y: 0})
	w.Add(p, component.Pack{})
	w.Add(p, component.TagPlayer{})

	if res, _ := TryMove(w, m, p, -1, 0); res != MoveOutOfBounds {
		t.Fatalf("expected MoveOutOfBounds, got %v", res)
	}
}

func TestLockedDoorNeedsKey(t *testing.T) {
	w := ecs.NewWorld()
	m := openMap()
	p := testPlayer(w)
	m.SetKind(6, 5, gamemap.TileLockedDoor)
	door := gamemap.Point{X: 6, Y: 5}
	m.LockedDoor = &door

	res, _ := TryMove(w, m, p, 1, 0)
	if res != MoveDoorLocked {
		t.Fatalf("expected MoveDoorLocked, got %v", res)
	}
	if m.At(6, 5).Kind != gamemap.TileLockedDoor {
		t.Fatal("door must survive a keyless bump")
	}

	pack := w.Get(p, component.CPack).(component.Pack)
	pack.HasKey = true
	pack.Slots = append(pack.Slots, component.PackSlot{Kind: component.ItemKey, Name: "Iron Key", Qty: 1})
	w.Add(p, pack)

	res, _ = TryMove(w, m, p, 1, 0)
	if res != MoveDoorOpened {
		t.Fatalf("expected MoveDoorOpened, got %v", res)
	}
	if m.At(6, 5).Kind != gamemap.TileFloor {
		t.Fatal("opened door should become floor for good")
	}
	if m.LockedDoor != nil {
		t.Fatal("door state should be cleared")
	}

	pack = w.Get(p, component.CPack).(component.Pack)
	if pack.HasKey || pack.Find(component.ItemKey) >= 0 {
		t.Fatal("the key is consumed by the lock")
	}
	pos := w.Get(p, component.CPosition).(component.Position)
	if pos.X != 6 || pos.Y != 5 {
		t.Fatal("opening the door should carry the player through")
	}
}

func TestSecretWallRevealsOnBump(t *testing.T) {
	w := ecs.NewWorld()
	m := openMap()
	p := testPlayer(w)
	m.SetKind(5, 4, gamemap.TileSecretWall)

	res, _ := TryMove(w, m, p, 0, -1)
	if res != MoveSecretRevealed {
		t.Fatalf("expected MoveSecretRevealed, got %v", res)
	}
	if m.At(5, 4).Kind != gamemap.TileFloor {
		t.Fatal("revealed passage should become floor")
	}
	pos := w.Get(p, component.CPosition).(component.Position)
	if pos.X != 5 || pos.Y != 4 {
		t.Fatal("revealing should carry the player through")
	}
}

func TestBumpingEnemyIsAnAttack(t *testing.T) {
	w := ecs.NewWorld()
	m := openMap()
	p := testPlayer(w)
	e := testEnemy(w, 6, 5, 10, 10)

	res, target := TryMove(w, m, p, 1, 0)
	if res != MoveAttack {
		t.Fatalf("expected MoveAttack, got %v", res)
	}
	if target != e {
		t.Fatal("attack target should be the bumped enemy")
	}
	pos := w.Get(p, component.CPosition).(component.Position)
	if pos.X != 5 {
		t.Fatal("bumping must not move the player onto the enemy")
	}
}
