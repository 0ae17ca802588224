package engine

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"gloomdelve/assets"
	"gloomdelve/internal/component"
	"gloomdelve/internal/ecs"
	"gloomdelve/internal/factory"
	"gloomdelve/internal/generate"
	"gloomdelve/internal/logging"
	"gloomdelve/internal/system"
)

// startRun resets everything and generates a fresh floor 1. Used by both
// the constructor and the restart command; restart reseeds the rng before
// calling this.
func (e *Engine) startRun() {
	e.state = StatePlaying
	e.messages = nil
	e.stats = RunStats{}
	e.world = nil
	e.playerID = ecs.NilEntity
	e.loadFloor(1)
	e.say("You step off the last stair that daylight reaches.")
	e.announceFloor()
}

// loadFloor discards the current floor wholesale and builds the given one.
// Player stats, inventory, and the equipped weapon persist across the
// transition; position resets to the new start room, and the door key stays
// behind on the floor it was cut for.
func (e *Engine) loadFloor(floor int) {
	var (
		hp     component.Health
		combat component.Combat
		prog   component.Progress
		pack   component.Pack
		weapon *component.Weapon
	)
	fresh := e.world == nil || e.playerID == ecs.NilEntity
	if !fresh {
		hp = e.playerHP()
		combat = e.world.Get(e.playerID, component.CCombat).(component.Combat)
		prog = e.world.Get(e.playerID, component.CProgress).(component.Progress)
		pack = e.world.Get(e.playerID, component.CPack).(component.Pack)
		if wc := e.world.Get(e.playerID, component.CWeapon); wc != nil {
			wp := wc.(component.Weapon)
			weapon = &wp
		}
		pack.HasKey = false
		if i := pack.Find(component.ItemKey); i >= 0 {
			pack.Slots = append(pack.Slots[:i], pack.Slots[i+1:]...)
		}
	}

	_, span := e.tracer.Start(context.Background(), "generate_floor")
	span.SetAttributes(attribute.Int("floor", floor))
	res := generate.Generate(&generate.Config{FloorNumber: floor, Rand: e.rng})
	span.End()

	e.floor = floor
	if floor > e.stats.FloorsReached {
		e.stats.FloorsReached = floor
	}
	e.gmap = res.Map
	e.world = ecs.NewWorld()
	e.playerID = factory.NewPlayer(e.world, res.PlayerStart.X, res.PlayerStart.Y)
	for _, s := range res.Enemies {
		factory.NewEnemy(e.world, s)
	}
	for _, s := range res.Items {
		factory.NewItem(e.world, s)
	}
	for _, s := range res.Traps {
		factory.NewTrap(e.world, s)
	}

	if !fresh {
		e.world.Add(e.playerID, hp)
		e.world.Add(e.playerID, combat)
		e.world.Add(e.playerID, prog)
		e.world.Add(e.playerID, pack)
		if weapon != nil {
			e.world.Add(e.playerID, *weapon)
		}
	}

	system.UpdateFOV(e.gmap, res.PlayerStart.X, res.PlayerStart.Y)

	logging.Log.WithFields(logrus.Fields{
		"floor":   floor,
		"enemies": len(res.Enemies),
	}).Debug("floor loaded")
}

// descend moves to the next floor down, or wins the run past the deepest.
func (e *Engine) descend() {
	if e.floor+1 > MaxFloors {
		e.win()
		return
	}
	e.loadFloor(e.floor + 1)
	e.announceFloor()
}

// rideElevator travels 1 to 3 floors in a random direction. It can never
// rise above floor 1; overshooting the deepest floor downward wins the run.
func (e *Engine) rideElevator() {
	delta := 1 + e.rng.Intn(3)
	down := e.rng.Intn(2) == 0
	if e.floor-delta < 1 {
		down = true
	}
	if !down {
		e.say("The cage hauls you up %d floors.", delta)
		e.loadFloor(e.floor - delta)
		e.announceFloor()
		return
	}
	dest := e.floor + delta
	if dest > MaxFloors {
		e.say("The cage plunges past the last marked depth...")
		e.win()
		return
	}
	e.say("The cage rattles down %d floors.", delta)
	e.loadFloor(dest)
	e.announceFloor()
}

func (e *Engine) announceFloor() {
	e.say("Floor %d: %s.", e.floor, assets.FloorNames[e.floor])
	if lore := assets.FloorLore[e.floor]; len(lore) > 0 {
		e.say("%s", lore[e.rng.Intn(len(lore))])
	}
}

func (e *Engine) win() {
	e.state = StateVictory
	e.say("Light. Real light. You have passed through %s and out the far side.", assets.FloorNames[MaxFloors])
	logging.Log.WithFields(logrus.Fields{
		"turns": e.stats.TurnsPlayed,
		"kills": e.stats.EnemiesKilled,
	}).Info("run ended in victory")
}
