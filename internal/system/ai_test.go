package system

import (
	"math/rand"
	"testing"

	"gloomdelve/internal/component"
	"gloomdelve/internal/ecs"
	"gloomdelve/internal/gamemap"
)

func TestAdjacentEnemyAttacks(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	w := ecs.NewWorld()
	m := openMap()
	p := testPlayer(w)
	testEnemy(w, 6, 6, 10, 10) // diagonal counts as adjacent

	events := EnemyPhase(w, m, rng, p, 1)
	if len(events) != 1 || events[0].Kind != EventAttack {
		t.Fatalf("expected one attack event, got %+v", events)
	}
	if events[0].Phrase == "" {
		t.Fatal("attack events carry a flavor phrase")
	}
	hp := w.Get(p, component.CHealth).(component.Health)
	if hp.Current >= 50 {
		t.Fatal("attack should have damaged the player")
	}
}

func TestDistantEnemyClosesIn(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	w := ecs.NewWorld()
	m := openMap()
	p := testPlayer(w) // (5,5)
	e := testEnemy(w, 10, 9, 10, 10)

	events := EnemyPhase(w, m, rng, p, 1)
	if len(events) != 0 {
		t.Fatalf("expected a silent approach, got %+v", events)
	}
	pos := w.Get(e, component.CPosition).(component.Position)
	if pos.X != 9 || pos.Y != 8 {
		t.Fatalf("expected diagonal step to (9,8), got (%d,%d)", pos.X, pos.Y)
	}
}

func TestBlockedDiagonalFallsBackToAxis(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	w := ecs.NewWorld()
	m := openMap()
	p := testPlayer(w) // (5,5)
	e := testEnemy(w, 10, 9, 10, 10)
	m.SetKind(9, 8, gamemap.TileWall)

	EnemyPhase(w, m, rng, p, 1)
	pos := w.Get(e, component.CPosition).(component.Position)
	if pos.X != 9 || pos.Y != 9 {
		t.Fatalf("expected x-axis fallback to (9,9), got (%d,%d)", pos.X, pos.Y)
	}
}

func TestStunnedEnemyLosesItsTurn(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	w := ecs.NewWorld()
	m := openMap()
	p := testPlayer(w)
	e := testEnemy(w, 6, 5, 10, 10)
	st := w.Get(e, component.CStatus).(component.Status)
	st.StunTurns = 1
	w.Add(e, st)

	events := EnemyPhase(w, m, rng, p, 1)
	if len(events) != 0 {
		t.Fatalf("stunned enemy should do nothing, got %+v", events)
	}
	hp := w.Get(p, component.CHealth).(component.Health)
	if hp.Current != 50 {
		t.Fatal("player should be untouched")
	}

	// The stun is spent; next phase it attacks.
	events = EnemyPhase(w, m, rng, p, 1)
	if len(events) != 1 || events[0].Kind != EventAttack {
		t.Fatalf("expected an attack after the stun wears off, got %+v", events)
	}
}

func TestBleedingEnemyDiesBeforeActing(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	w := ecs.NewWorld()
	m := openMap()
	p := testPlayer(w)
	e := testEnemy(w, 6, 5, 3, 25)
	st := w.Get(e, component.CStatus).(component.Status)
	st.BleedDamage = 5
	st.BleedTurns = 2
	w.Add(e, st)

	events := EnemyPhase(w, m, rng, p, 1)
	if len(events) != 1 || events[0].Kind != EventBleedDeath {
		t.Fatalf("expected a bleed death, got %+v", events)
	}
	if events[0].XPGained != 25 {
		t.Fatalf("bleed kills still pay XP, got %d", events[0].XPGained)
	}
	if w.Alive(e) {
		t.Fatal("bled-out enemy should be gone")
	}
	hp := w.Get(p, component.CHealth).(component.Health)
	if hp.Current != 50 {
		t.Fatal("a dead enemy cannot also attack")
	}
}

func TestEnemiesRespectSafeRooms(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	w := ecs.NewWorld()
	m := openMap()

	// Player inside a safe pocket; the enemy's every approach tile is safe
	// ground it may not enter.
	for y := 4; y <= 6; y++ {
		for x := 4; x <= 6; x++ {
			m.SetKind(x, y, gamemap.TileSafeRoom)
		}
	}
	p := testPlayer(w) // (5,5), center of the pocket
	e := testEnemy(w, 8, 5, 10, 10)

	EnemyPhase(w, m, rng, p, 1)
	pos := w.Get(e, component.CPosition).(component.Position)
	if pos.X != 7 || pos.Y != 5 {
		t.Fatalf("expected approach to the boundary at (7,5), got (%d,%d)", pos.X, pos.Y)
	}

	EnemyPhase(w, m, rng, p, 1)
	pos = w.Get(e, component.CPosition).(component.Position)
	if m.At(pos.X, pos.Y).Kind == gamemap.TileSafeRoom {
		t.Fatalf("enemy stepped onto safe ground at (%d,%d)", pos.X, pos.Y)
	}
}
