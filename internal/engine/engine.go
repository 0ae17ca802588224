// Package engine is the turn-synchronous simulation core. It accepts one
// command at a time, resolves it fully or rejects it as a messaged no-op,
// and exposes a read-only snapshot for the presentation layer. Nothing in
// here blocks, errors, or touches a screen.
package engine

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"gloomdelve/internal/component"
	"gloomdelve/internal/ecs"
	"gloomdelve/internal/gamemap"
	"gloomdelve/internal/logging"
	"gloomdelve/internal/system"
	"gloomdelve/internal/telemetry"
)

// MaxFloors is the deepest level; descending past it wins the run.
const MaxFloors = 5

// messageCap bounds the retained log; the oldest lines fall off silently.
const messageCap = 50

// State tracks the engine's top-level state machine. GameOver and Victory
// are absorbing: only CmdRestart is accepted there.
type State uint8

const (
	StatePlaying State = iota
	StateGameOver
	StateVictory
)

// RunStats aggregates one run for the HUD and post-game screen.
type RunStats struct {
	TurnsPlayed   int
	EnemiesKilled int
	DamageDealt   int
	DamageTaken   int
	FloorsReached int
}

// Engine owns the whole simulation: world, map, player, rng, and log.
type Engine struct {
	world    *ecs.World
	gmap     *gamemap.GameMap
	playerID ecs.EntityID
	rng      *rand.Rand
	floor    int
	state    State
	messages []string // oldest first; snapshot reverses
	pending  []string // lines emitted by the Apply call in progress
	stats    RunStats
	tracer   trace.Tracer
}

// New creates an engine running on the given random source and generates
// floor 1. The rng is the only stochastic input: the same seed replays the
// same run for the same command sequence.
func New(rng *rand.Rand) *Engine {
	e := &Engine{
		rng:    rng,
		tracer: telemetry.Tracer("engine"),
	}
	e.startRun()
	return e
}

// NewSeeded is a convenience constructor for a fixed seed.
func NewSeeded(seed int64) *Engine {
	return New(rand.New(rand.NewSource(seed)))
}

// Apply resolves one command. It never errors: unmet preconditions resolve
// as a no-op plus a message. If the command consumed a turn, one enemy
// phase runs, visibility is recomputed, and terminal state is evaluated.
func (e *Engine) Apply(cmd Command) Outcome {
	e.pending = nil

	if e.state != StatePlaying && cmd.Kind != CmdRestart {
		e.say("The run is over. Restart to delve again.")
		return e.outcome(false)
	}

	turnUsed := false
	switch cmd.Kind {
	case CmdTurnLeft:
		e.turnPlayer(func(d component.Direction) component.Direction { return d.Left() })
	case CmdTurnRight:
		e.turnPlayer(func(d component.Direction) component.Direction { return d.Right() })

	case CmdMoveForward:
		turnUsed = e.movePlayer(e.facing().Delta())
	case CmdMoveBackward:
		dx, dy := e.facing().Opposite().Delta()
		turnUsed = e.movePlayer(dx, dy)

	case CmdMoveNorth:
		turnUsed = e.moveCompass(component.North)
	case CmdMoveSouth:
		turnUsed = e.moveCompass(component.South)
	case CmdMoveEast:
		turnUsed = e.moveCompass(component.East)
	case CmdMoveWest:
		turnUsed = e.moveCompass(component.West)

	case CmdWait:
		e.rest()
		turnUsed = true

	case CmdInteract:
		turnUsed = e.interact()

	case CmdUseElevator:
		turnUsed = e.useTransit(gamemap.TileElevator)
	case CmdUseTeleporter:
		turnUsed = e.useTransit(gamemap.TileTeleporter)

	case CmdUseSlot:
		turnUsed = e.useSlot(cmd.Slot)

	case CmdWeaponSpecial:
		turnUsed = e.weaponSpecial()

	case CmdRestart:
		// Reseed from the old stream: a restart is a new run, not a
		// replay of the original seed, yet still deterministic from it.
		e.rng = rand.New(rand.NewSource(e.rng.Int63()))
		e.startRun()
		return e.outcome(false)
	}

	if turnUsed && e.state == StatePlaying {
		e.endTurn()
	}
	return e.outcome(turnUsed)
}

// endTurn runs the enemy phase that follows every turn-consuming action,
// then refreshes visibility and checks for player death.
func (e *Engine) endTurn() {
	e.stats.TurnsPlayed++
	system.TickWeaponCooldown(e.world, e.playerID)

	events := system.EnemyPhase(e.world, e.gmap, e.rng, e.playerID, e.floor)
	for _, ev := range events {
		switch ev.Kind {
		case system.EventBleed:
			e.say("The %s bleeds. (%d damage)", ev.EnemyName, ev.Damage)
		case system.EventBleedDeath:
			e.say("The %s bleeds out!", ev.EnemyName)
			e.reward(ev.XPGained, ev.GoldGained, ev.LevelsGained)
		case system.EventAttack:
			e.say("The %s %s! (%d damage)", ev.EnemyName, ev.Phrase, ev.Damage)
			e.stats.DamageTaken += ev.Damage
		}
	}

	pp := e.playerPos()
	system.UpdateFOV(e.gmap, pp.X, pp.Y)

	if e.playerHP().Current <= 0 {
		e.state = StateGameOver
		e.say("You fall. The dark keeps what it takes.")
		logging.Log.WithFields(logrus.Fields{
			"floor": e.floor,
			"turns": e.stats.TurnsPlayed,
		}).Info("run ended in defeat")
	}
}

// turnPlayer rotates facing; a pure facing change never costs a turn.
func (e *Engine) turnPlayer(rotate func(component.Direction) component.Direction) {
	f := e.world.Get(e.playerID, component.CFacing).(component.Facing)
	f.Dir = rotate(f.Dir)
	e.world.Add(e.playerID, f)
	e.say("You face %s.", f.Dir)
}

// moveCompass sets facing to the move direction, then steps.
func (e *Engine) moveCompass(dir component.Direction) bool {
	f := e.world.Get(e.playerID, component.CFacing).(component.Facing)
	f.Dir = dir
	e.world.Add(e.playerID, f)
	return e.movePlayer(dir.Delta())
}

// movePlayer resolves one step and everything that happens on arrival.
// Returns whether the command consumed a turn.
func (e *Engine) movePlayer(dx, dy int) bool {
	res, target := system.TryMove(e.world, e.gmap, e.playerID, dx, dy)
	switch res {
	case system.MoveOutOfBounds, system.MoveBlocked:
		return false

	case system.MoveDoorLocked:
		e.say("The door is locked. It wants a key.")
		return false

	case system.MoveDoorOpened:
		e.say("The key turns and crumbles. The door grinds open.")
		e.arrive()
		return true

	case system.MoveSecretRevealed:
		e.say("The wall gives way. A hidden passage!")
		e.arrive()
		return true

	case system.MoveAttack:
		info := e.world.Get(target, component.CEnemyInfo).(component.EnemyInfo)
		ar := system.Attack(e.world, e.rng, e.playerID, target, e.floor)
		e.stats.DamageDealt += ar.Damage
		if ar.Killed {
			e.stats.EnemiesKilled++
			e.say("You slay the %s!", info.Name)
			e.reward(ar.XPGained, ar.GoldGained, ar.LevelsGained)
		} else {
			e.say("You hit the %s for %d damage.", info.Name, ar.Damage)
		}
		return true

	default: // MoveOK
		e.arrive()
		return true
	}
}

// arrive handles the tile the player just stepped onto: auto-pickup, trap
// trigger, then flavor for notable tiles.
func (e *Engine) arrive() {
	pp := e.playerPos()
	e.pickupAt(pp.X, pp.Y)
	e.triggerTrapAt(pp.X, pp.Y)
	if e.state != StatePlaying {
		return
	}

	switch e.gmap.At(pp.X, pp.Y).Kind {
	case gamemap.TileStairs:
		e.say("Stairs lead down into the dark.")
	case gamemap.TileElevator:
		e.say("A rattling elevator cage waits here.")
	case gamemap.TileTeleporter:
		e.say("The pad hums under your boots.")
	case gamemap.TileSafeRoom:
		e.say("A hush falls. Nothing hunts you here.")
	}
}

// rest consumes the turn doing nothing but a slow recovery; safe rooms
// triple it.
func (e *Engine) rest() {
	heal := 1
	pp := e.playerPos()
	if e.gmap.At(pp.X, pp.Y).Kind == gamemap.TileSafeRoom {
		heal = 3
	}
	hp := e.playerHP()
	if hp.Current < hp.Max {
		hp.Current += heal
		e.world.Add(e.playerID, hp.Clamp())
		e.say("You catch your breath. (+%d HP)", heal)
	} else {
		e.say("You wait, listening.")
	}
}

// weaponSpecial invokes the equipped weapon's ability. Missing weapon or an
// active cooldown is a messaged no-op; a valid invocation always consumes
// the turn and resets the cooldown, hit or miss.
func (e *Engine) weaponSpecial() bool {
	wc := e.world.Get(e.playerID, component.CWeapon)
	if wc == nil {
		e.say("You have no weapon to unleash.")
		return false
	}
	wp := wc.(component.Weapon)
	if wp.Cooldown > 0 {
		e.say("The %s needs %d more turns.", wp.Name, wp.Cooldown)
		return false
	}

	res := system.UseSpecial(e.world, e.gmap, e.rng, e.playerID, e.floor)
	if res.NoTarget {
		e.say("The %s finds nothing to bite.", res.WeaponName)
		return true
	}
	for _, hit := range res.Hits {
		switch {
		case hit.Stunned > 0:
			e.say("The %s reels, stunned for %d turns!", hit.EnemyName, hit.Stunned)
		case hit.Bleeding > 0:
			e.say("The %s is cut deep and starts bleeding!", hit.EnemyName)
		default:
			e.stats.DamageDealt += hit.Damage
			if hit.PushedTiles > 0 {
				e.say("The %s is hurled back %d tiles! (%d damage)", hit.EnemyName, hit.PushedTiles, hit.Damage)
			} else {
				e.say("The %s takes %d damage from the %s!", hit.EnemyName, hit.Damage, res.WeaponName)
			}
			if hit.Killed {
				e.stats.EnemiesKilled++
				e.say("The %s is destroyed!", hit.EnemyName)
				e.reward(hit.XPGained, hit.GoldGained, hit.LevelsGained)
			}
		}
	}
	if res.Healed > 0 {
		e.say("Stolen vitality knits your wounds. (+%d HP)", res.Healed)
	}
	return true
}

// reward narrates XP, gold, and any level-ups from a kill.
func (e *Engine) reward(xp, gold, levels int) {
	if xp > 0 || gold > 0 {
		e.say("You gain %d XP and %d gold.", xp, gold)
	}
	if levels > 0 {
		prog := e.world.Get(e.playerID, component.CProgress).(component.Progress)
		e.say("You feel stronger! Welcome to level %d.", prog.Level)
	}
}

// say appends a formatted line to the capped message log and the current
// call's outcome.
func (e *Engine) say(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	e.pending = append(e.pending, line)
	e.messages = append(e.messages, line)
	if len(e.messages) > messageCap {
		e.messages = e.messages[len(e.messages)-messageCap:]
	}
}

func (e *Engine) outcome(turnUsed bool) Outcome {
	msgs := make([]string, len(e.pending))
	copy(msgs, e.pending)
	return Outcome{
		Messages: msgs,
		TurnUsed: turnUsed,
		GameOver: e.state == StateGameOver,
		Victory:  e.state == StateVictory,
	}
}

func (e *Engine) facing() component.Direction {
	return e.world.Get(e.playerID, component.CFacing).(component.Facing).Dir
}

func (e *Engine) playerPos() component.Position {
	return e.world.Get(e.playerID, component.CPosition).(component.Position)
}

func (e *Engine) playerHP() component.Health {
	return e.world.Get(e.playerID, component.CHealth).(component.Health)
}
