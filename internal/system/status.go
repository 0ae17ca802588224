package system

import (
	"gloomdelve/internal/component"
	"gloomdelve/internal/ecs"
)

// TickWeaponCooldown advances the equipped weapon's cooldown by one enemy
// phase. No-op without a weapon or at zero.
func TickWeaponCooldown(w *ecs.World, playerID ecs.EntityID) {
	wc := w.Get(playerID, component.CWeapon)
	if wc == nil {
		return
	}
	wp := wc.(component.Weapon)
	if wp.Cooldown > 0 {
		wp.Cooldown--
		w.Add(playerID, wp)
	}
}

// ApplyBleed processes one bleed tick on an enemy: damage lands, then the
// counter decrements. Returns the damage dealt and whether the enemy's HP
// reached zero. The caller owns removal and rewards, so a bleed death pays
// out exactly once even if something else would have killed the enemy in
// the same phase.
func ApplyBleed(w *ecs.World, id ecs.EntityID) (int, bool) {
	sc := w.Get(id, component.CStatus)
	if sc == nil {
		return 0, false
	}
	st := sc.(component.Status)
	if st.BleedTurns <= 0 {
		return 0, false
	}

	dmg := st.BleedDamage
	st.BleedTurns--
	if st.BleedTurns == 0 {
		st.BleedDamage = 0
	}
	w.Add(id, st)

	hpComp := w.Get(id, component.CHealth)
	if hpComp == nil {
		return 0, false
	}
	hp := hpComp.(component.Health)
	hp.Current -= dmg
	w.Add(id, hp.Clamp())
	return dmg, hp.Current <= 0
}

// ConsumeStun burns one stun turn if any remain, reporting whether the
// enemy loses its entire action this phase.
func ConsumeStun(w *ecs.World, id ecs.EntityID) bool {
	sc := w.Get(id, component.CStatus)
	if sc == nil {
		return false
	}
	st := sc.(component.Status)
	if st.StunTurns <= 0 {
		return false
	}
	st.StunTurns--
	w.Add(id, st)
	return true
}
