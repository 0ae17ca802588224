package system

import (
	"testing"

	"gloomdelve/internal/component"
	"gloomdelve/internal/ecs"
)

func TestConsumeStunBurnsExactTurns(t *testing.T) {
	w := ecs.NewWorld()
	e := testEnemy(w, 3, 3, 10, 10)
	st := w.Get(e, component.CStatus).(component.Status)
	st.StunTurns = 2
	w.Add(e, st)

	if !ConsumeStun(w, e) {
		t.Fatal("first phase should be lost to stun")
	}
	if !ConsumeStun(w, e) {
		t.Fatal("second phase should be lost to stun")
	}
	if ConsumeStun(w, e) {
		t.Fatal("stun should be spent after two phases")
	}
}

func TestApplyBleedTicksAndExpires(t *testing.T) {
	w := ecs.NewWorld()
	e := testEnemy(w, 3, 3, 30, 10)
	st := w.Get(e, component.CStatus).(component.Status)
	st.BleedDamage = 4
	st.BleedTurns = 3
	w.Add(e, st)

	total := 0
	for i := 0; i < 3; i++ {
		dmg, dead := ApplyBleed(w, e)
		if dmg != 4 || dead {
			t.Fatalf("tick %d: got dmg=%d dead=%v", i, dmg, dead)
		}
		total += dmg
	}
	if dmg, _ := ApplyBleed(w, e); dmg != 0 {
		t.Fatalf("expired bleed still dealt %d", dmg)
	}
	if total != 12 {
		t.Fatalf("expected 12 total bleed damage, got %d", total)
	}

	hp := w.Get(e, component.CHealth).(component.Health)
	if hp.Current != 18 {
		t.Fatalf("expected 18 HP remaining, got %d", hp.Current)
	}
}

func TestApplyBleedReportsDeath(t *testing.T) {
	w := ecs.NewWorld()
	e := testEnemy(w, 3, 3, 3, 10)
	st := w.Get(e, component.CStatus).(component.Status)
	st.BleedDamage = 5
	st.BleedTurns = 2
	w.Add(e, st)

	dmg, dead := ApplyBleed(w, e)
	if dmg != 5 || !dead {
		t.Fatalf("expected lethal tick, got dmg=%d dead=%v", dmg, dead)
	}
	// Removal belongs to the caller; the entity is still present here.
	if !w.Alive(e) {
		t.Fatal("bleed system must not remove the enemy itself")
	}
}

func TestTickWeaponCooldown(t *testing.T) {
	w := ecs.NewWorld()
	p := testPlayer(w)

	// No weapon: nothing to do.
	TickWeaponCooldown(w, p)

	w.Add(p, component.Weapon{Name: "Worn Shortsword", Cooldown: 2, MaxCooldown: 5})
	TickWeaponCooldown(w, p)
	TickWeaponCooldown(w, p)
	TickWeaponCooldown(w, p)

	wp := w.Get(p, component.CWeapon).(component.Weapon)
	if wp.Cooldown != 0 {
		t.Fatalf("cooldown should bottom out at 0, got %d", wp.Cooldown)
	}
}
