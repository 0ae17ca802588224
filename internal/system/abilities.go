package system

import (
	"math/rand"

	"gloomdelve/internal/component"
	"gloomdelve/internal/ecs"
	"gloomdelve/internal/gamemap"
)

// SpecialHit records one enemy affected by a weapon special.
type SpecialHit struct {
	EnemyName    string
	Damage       int
	Stunned      int
	Bleeding     int
	PushedTiles  int
	Killed       bool
	XPGained     int
	GoldGained   int
	LevelsGained int
}

// SpecialResult is the outcome of invoking the equipped weapon's special.
type SpecialResult struct {
	WeaponName string
	Ability    component.Ability
	Hits       []SpecialHit
	Healed     int
	NoTarget   bool
}

// UseSpecial executes the equipped weapon's ability. The caller has already
// verified a weapon is equipped with its cooldown at zero; the cooldown is
// reset to the configured maximum here whether or not a target was found.
//
// Targeting is the tile directly ahead of the player's facing, except area
// damage, which hits every visible enemy within Chebyshev distance 2.
func UseSpecial(w *ecs.World, m *gamemap.GameMap, rng *rand.Rand, playerID ecs.EntityID, floor int) SpecialResult {
	wp := w.Get(playerID, component.CWeapon).(component.Weapon)
	wp.Cooldown = wp.MaxCooldown
	w.Add(playerID, wp)

	res := SpecialResult{WeaponName: wp.Name, Ability: wp.Ability}

	pos := w.Get(playerID, component.CPosition).(component.Position)
	facing := w.Get(playerID, component.CFacing).(component.Facing)

	if wp.Ability == component.AbilityAreaDamage {
		for _, id := range w.Query(component.CTagEnemy, component.CPosition) {
			if !w.Alive(id) {
				continue
			}
			ep := w.Get(id, component.CPosition).(component.Position)
			if chebyshev(ep.X-pos.X, ep.Y-pos.Y) > 2 || !m.At(ep.X, ep.Y).Visible {
				continue
			}
			res.Hits = append(res.Hits, hitEnemy(w, rng, playerID, id, wp.Power, floor))
		}
		res.NoTarget = len(res.Hits) == 0
		return res
	}

	dx, dy := facing.Dir.Delta()
	target := EnemyAt(w, pos.X+dx, pos.Y+dy)
	if target == ecs.NilEntity {
		res.NoTarget = true
		return res
	}

	atk := w.Get(playerID, component.CCombat).(component.Combat).Attack
	def := w.Get(target, component.CCombat).(component.Combat).Defense

	switch wp.Ability {
	case component.AbilityDoubleDamage:
		dmg := atk*wp.Power - def
		if dmg < wp.Power {
			dmg = wp.Power
		}
		res.Hits = append(res.Hits, hitEnemy(w, rng, playerID, target, dmg, floor))

	case component.AbilityLifesteal:
		dmg := atk - def + rng.Intn(5) - 2
		if dmg < 1 {
			dmg = 1
		}
		res.Hits = append(res.Hits, hitEnemy(w, rng, playerID, target, dmg+wp.Power, floor))
		hp := w.Get(playerID, component.CHealth).(component.Health)
		before := hp.Current
		hp.Current += wp.Power
		hp = hp.Clamp()
		w.Add(playerID, hp)
		res.Healed = hp.Current - before

	case component.AbilityStun:
		st := w.Get(target, component.CStatus).(component.Status)
		st.StunTurns = wp.Power
		w.Add(target, st)
		info := w.Get(target, component.CEnemyInfo).(component.EnemyInfo)
		res.Hits = append(res.Hits, SpecialHit{EnemyName: info.Name, Stunned: wp.Power})

	case component.AbilityBleed:
		st := w.Get(target, component.CStatus).(component.Status)
		st.BleedDamage = wp.Power
		st.BleedTurns = wp.Power
		w.Add(target, st)
		info := w.Get(target, component.CEnemyInfo).(component.EnemyInfo)
		res.Hits = append(res.Hits, SpecialHit{EnemyName: info.Name, Bleeding: wp.Power})

	case component.AbilityKnockback:
		dmg := atk - def + rng.Intn(5) - 2
		if dmg < 1 {
			dmg = 1
		}
		hit := hitEnemy(w, rng, playerID, target, dmg, floor)
		if !hit.Killed {
			hit.PushedTiles = pushEnemy(w, m, target, dx, dy, wp.Power)
		}
		res.Hits = append(res.Hits, hit)

	default:
		// Plain weapons have no special; the cooldown still resets.
		res.NoTarget = true
	}
	return res
}

// hitEnemy applies flat damage and routes a kill through the shared reward
// path.
func hitEnemy(w *ecs.World, rng *rand.Rand, playerID, id ecs.EntityID, dmg, floor int) SpecialHit {
	info := w.Get(id, component.CEnemyInfo).(component.EnemyInfo)
	hp := w.Get(id, component.CHealth).(component.Health)
	hp.Current -= dmg
	w.Add(id, hp.Clamp())

	hit := SpecialHit{EnemyName: info.Name, Damage: dmg}
	if hp.Current <= 0 {
		hit.Killed = true
		hit.XPGained, hit.GoldGained, hit.LevelsGained = KillEnemy(w, rng, playerID, id, floor)
	}
	return hit
}

// pushEnemy slides the target along the attack direction, up to limit
// tiles, stopping at the first cell it cannot occupy. Returns tiles moved.
func pushEnemy(w *ecs.World, m *gamemap.GameMap, id ecs.EntityID, dx, dy, limit int) int {
	pos := w.Get(id, component.CPosition).(component.Position)
	moved := 0
	for i := 0; i < limit; i++ {
		nx, ny := pos.X+dx, pos.Y+dy
		if !enemyCanStand(w, m, nx, ny) {
			break
		}
		pos.X, pos.Y = nx, ny
		moved++
	}
	if moved > 0 {
		w.Add(id, pos)
	}
	return moved
}
