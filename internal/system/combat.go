package system

import (
	"math/rand"

	"gloomdelve/internal/component"
	"gloomdelve/internal/ecs"
)

// XP needed to go from the current level to the next, per level.
const xpPerLevel = 100

// AttackResult holds the outcome of one attack.
type AttackResult struct {
	Damage       int
	Killed       bool
	XPGained     int
	GoldGained   int
	LevelsGained int
}

// Attack resolves one melee attack from attacker against defender.
// Damage = max(1, atk − def + uniform(−2, +2)); the floor of 1 means no
// attack is ever a true no-op. A defender reduced to 0 HP is killed: enemy
// defenders are removed and award XP and gold, the player entity is left
// for the engine's terminal-state check.
func Attack(w *ecs.World, rng *rand.Rand, attacker, defender ecs.EntityID, floor int) AttackResult {
	atkComp := w.Get(attacker, component.CCombat)
	defComp := w.Get(defender, component.CCombat)
	hpComp := w.Get(defender, component.CHealth)
	if atkComp == nil || defComp == nil || hpComp == nil {
		return AttackResult{}
	}

	atk := atkComp.(component.Combat).Attack
	def := defComp.(component.Combat).Defense
	dmg := atk - def + rng.Intn(5) - 2
	if dmg < 1 {
		dmg = 1
	}

	hp := hpComp.(component.Health)
	hp.Current -= dmg
	w.Add(defender, hp.Clamp())

	res := AttackResult{Damage: dmg}
	if hp.Current <= 0 {
		res.Killed = true
		res.XPGained, res.GoldGained, res.LevelsGained = KillEnemy(w, rng, attacker, defender, floor)
	}
	return res
}

// KillEnemy removes a dead enemy from the world and grants the attacker its
// XP value plus uniform(1,9)×floor gold, then runs the level-up loop. Every
// kill path (melee, specials, bleed) funnels through here so rewards fire
// exactly once. A defender without EnemyInfo (the player) is not removed
// and grants nothing.
func KillEnemy(w *ecs.World, rng *rand.Rand, attacker, defender ecs.EntityID, floor int) (xp, gold, levels int) {
	infoComp := w.Get(defender, component.CEnemyInfo)
	if infoComp == nil {
		return 0, 0, 0
	}
	info := infoComp.(component.EnemyInfo)
	w.DestroyEntity(defender)

	progComp := w.Get(attacker, component.CProgress)
	if progComp == nil {
		return 0, 0, 0
	}
	prog := progComp.(component.Progress)

	xp = info.XPValue
	gold = (1 + rng.Intn(9)) * floor
	prog.XP += xp
	prog.Gold += gold
	levels = levelUp(w, attacker, &prog)
	w.Add(attacker, prog)
	return xp, gold, levels
}

// levelUp drains the XP pool across as many thresholds as it covers: each
// level grants +10 max HP with a full heal, +2 attack, +1 defense. The
// threshold is fixed at the level held when the award lands, so one 250 XP
// award to a level-1 player clears two 100-point thresholds and banks 50.
func levelUp(w *ecs.World, id ecs.EntityID, prog *component.Progress) int {
	levels := 0
	threshold := prog.Level * xpPerLevel
	for prog.XP >= threshold {
		prog.XP -= threshold
		prog.Level++
		levels++

		if hpComp := w.Get(id, component.CHealth); hpComp != nil {
			hp := hpComp.(component.Health)
			hp.Max += 10
			hp.Current = hp.Max
			w.Add(id, hp)
		}
		if cComp := w.Get(id, component.CCombat); cComp != nil {
			c := cComp.(component.Combat)
			c.Attack += 2
			c.Defense++
			w.Add(id, c)
		}
	}
	return levels
}
