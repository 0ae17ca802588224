package system

import (
	"math/rand"

	"gloomdelve/internal/component"
	"gloomdelve/internal/ecs"
	"gloomdelve/internal/gamemap"
)

// PhaseEventKind classifies one entry in the enemy-phase report.
type PhaseEventKind uint8

const (
	EventBleed PhaseEventKind = iota
	EventBleedDeath
	EventAttack
)

// PhaseEvent records one thing an enemy did (or suffered) during the phase.
type PhaseEvent struct {
	Kind         PhaseEventKind
	EnemyName    string
	Phrase       string
	Damage       int
	XPGained     int
	GoldGained   int
	LevelsGained int
}

// EnemyPhase runs the sub-step that follows a turn-consuming player action.
// For each enemy, in creation order: bleed lands first and may kill the
// enemy before it acts; a stunned enemy skips its whole action; otherwise
// it attacks when Chebyshev-adjacent to the player, or steps toward the
// player using the sign of both deltas, with a single-axis fallback when
// the diagonal is blocked, or holds position.
//
// Iteration walks a query snapshot while the live store mutates, with an
// Alive guard, so the container being traversed is never modified in place.
func EnemyPhase(w *ecs.World, m *gamemap.GameMap, rng *rand.Rand, playerID ecs.EntityID, floor int) []PhaseEvent {
	playerPos := w.Get(playerID, component.CPosition)
	if playerPos == nil {
		return nil
	}
	pp := playerPos.(component.Position)

	var events []PhaseEvent
	for _, id := range w.Query(component.CTagEnemy, component.CPosition) {
		if !w.Alive(id) {
			continue
		}
		info := w.Get(id, component.CEnemyInfo).(component.EnemyInfo)

		if dmg, dead := ApplyBleed(w, id); dmg > 0 {
			if dead {
				xp, gold, levels := KillEnemy(w, rng, playerID, id, floor)
				events = append(events, PhaseEvent{
					Kind: EventBleedDeath, EnemyName: info.Name, Damage: dmg,
					XPGained: xp, GoldGained: gold, LevelsGained: levels,
				})
				continue
			}
			events = append(events, PhaseEvent{Kind: EventBleed, EnemyName: info.Name, Damage: dmg})
		}

		if ConsumeStun(w, id) {
			continue
		}

		pos := w.Get(id, component.CPosition).(component.Position)
		dx, dy := pp.X-pos.X, pp.Y-pos.Y
		if chebyshev(dx, dy) <= 1 {
			res := Attack(w, rng, id, playerID, floor)
			events = append(events, PhaseEvent{
				Kind:      EventAttack,
				EnemyName: info.Name,
				Phrase:    info.Phrases[rng.Intn(len(info.Phrases))],
				Damage:    res.Damage,
			})
			continue
		}

		stepToward(w, m, id, pos, sign(dx), sign(dy))
	}
	return events
}

// stepToward moves one tile using both delta signs at once, falling back to
// a single axis when the diagonal is blocked, or standing still.
func stepToward(w *ecs.World, m *gamemap.GameMap, id ecs.EntityID, pos component.Position, sx, sy int) {
	candidates := [3][2]int{{sx, sy}, {sx, 0}, {0, sy}}
	for _, c := range candidates {
		if c[0] == 0 && c[1] == 0 {
			continue
		}
		nx, ny := pos.X+c[0], pos.Y+c[1]
		if !enemyCanStand(w, m, nx, ny) {
			continue
		}
		w.Add(id, component.Position{X: nx, Y: ny})
		return
	}
}

// enemyCanStand reports whether an enemy may occupy (x, y). Safe-room tiles
// are off limits to enemies, as is any tile already holding an enemy or
// the player.
func enemyCanStand(w *ecs.World, m *gamemap.GameMap, x, y int) bool {
	if !m.IsWalkable(x, y) {
		return false
	}
	if m.At(x, y).Kind == gamemap.TileSafeRoom {
		return false
	}
	if EnemyAt(w, x, y) != ecs.NilEntity {
		return false
	}
	for _, pid := range w.Query(component.CTagPlayer, component.CPosition) {
		pos := w.Get(pid, component.CPosition).(component.Position)
		if pos.X == x && pos.Y == y {
			return false
		}
	}
	return true
}

func chebyshev(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
