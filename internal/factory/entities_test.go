package factory

import (
	"testing"

	"gloomdelve/assets"
	"gloomdelve/internal/component"
	"gloomdelve/internal/ecs"
	"gloomdelve/internal/generate"
)

func TestNewPlayerComponents(t *testing.T) {
	w := ecs.NewWorld()
	id := NewPlayer(w, 7, 9)

	pos := w.Get(id, component.CPosition).(component.Position)
	if pos.X != 7 || pos.Y != 9 {
		t.Fatalf("unexpected position (%d,%d)", pos.X, pos.Y)
	}
	hp := w.Get(id, component.CHealth).(component.Health)
	if hp.Current != 50 || hp.Max != 50 {
		t.Fatalf("unexpected starting HP %d/%d", hp.Current, hp.Max)
	}
	if f := w.Get(id, component.CFacing).(component.Facing); f.Dir != component.North {
		t.Fatalf("player should start facing north, got %v", f.Dir)
	}
	if !w.Has(id, component.CTagPlayer) {
		t.Fatal("missing player tag")
	}
	if w.Has(id, component.CWeapon) {
		t.Fatal("the player starts bare-handed")
	}
}

func TestNewItemWeaponCarriesTemplate(t *testing.T) {
	w := ecs.NewWorld()
	entry := assets.WeaponTable[component.AbilityStun][0]
	id := NewItem(w, generate.ItemSpawn{
		Kind: component.ItemWeapon, Weapon: &entry, X: 3, Y: 3,
	})

	wc := w.Get(id, component.CWeapon)
	if wc == nil {
		t.Fatal("weapon item should carry its weapon component")
	}
	if wc.(component.Weapon).Name != entry.Name {
		t.Fatalf("wrong weapon: %s", wc.(component.Weapon).Name)
	}
}

func TestNewTrapIsInvisible(t *testing.T) {
	w := ecs.NewWorld()
	id := NewTrap(w, generate.TrapSpawn{Entry: assets.TrapTable[component.TrapSpikes], X: 2, Y: 2})

	if w.Has(id, component.CRenderable) {
		t.Fatal("an unsprung trap must not be drawable")
	}
	trap := w.Get(id, component.CTrap).(component.Trap)
	if trap.Triggered {
		t.Fatal("traps start armed")
	}
}
