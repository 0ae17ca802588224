package engine

import (
	"gloomdelve/internal/component"
	"gloomdelve/internal/gamemap"
)

// interact acts on the tile the player is standing on. Transit features
// (stairs, elevator, teleporter) consume the turn; everything else is a
// free look, including probing the tile ahead.
func (e *Engine) interact() bool {
	pp := e.playerPos()
	switch e.gmap.At(pp.X, pp.Y).Kind {
	case gamemap.TileStairs:
		e.say("You take the stairs down.")
		e.descend()
		return true

	case gamemap.TileElevator, gamemap.TileTeleporter:
		return e.useTransit(e.gmap.At(pp.X, pp.Y).Kind)
	}

	// Nothing underfoot; act on whatever the player is facing.
	dx, dy := e.facing().Delta()
	fx, fy := pp.X+dx, pp.Y+dy
	if e.gmap.InBounds(fx, fy) {
		switch e.gmap.At(fx, fy).Kind {
		case gamemap.TileLockedDoor:
			e.unlockDoor(fx, fy)
			return false
		case gamemap.TileSecretWall:
			e.say("The stonework ahead sounds hollow.")
			return false
		}
	}
	e.say("There is nothing here to use.")
	return false
}

// useTransit rides the named transit feature under the player. Standing on
// the wrong tile is a messaged no-op.
func (e *Engine) useTransit(kind gamemap.TileKind) bool {
	pp := e.playerPos()
	if e.gmap.At(pp.X, pp.Y).Kind != kind {
		if kind == gamemap.TileElevator {
			e.say("There is no elevator under you.")
		} else {
			e.say("There is no teleporter under you.")
		}
		return false
	}
	if kind == gamemap.TileElevator {
		e.rideElevator()
		return true
	}
	return e.teleport(pp)
}

// unlockDoor opens the faced door in place if the key is held. Unlike
// walking into the door, this does not step through.
func (e *Engine) unlockDoor(x, y int) {
	pack := e.world.Get(e.playerID, component.CPack).(component.Pack)
	if !pack.HasKey {
		e.say("The door is locked. It wants a key.")
		return
	}
	pack.HasKey = false
	if i := pack.Find(component.ItemKey); i >= 0 {
		pack.Slots[i].Qty--
		if pack.Slots[i].Qty <= 0 {
			pack.Slots = append(pack.Slots[:i], pack.Slots[i+1:]...)
		}
	}
	e.world.Add(e.playerID, pack)
	e.gmap.SetKind(x, y, gamemap.TileFloor)
	e.gmap.LockedDoor = nil
	e.say("The key turns and crumbles. The door grinds open.")
}

// teleport jumps to the paired pad. Arrival sometimes costs a little blood,
// but disorientation alone never kills.
func (e *Engine) teleport(pp component.Position) bool {
	partner, ok := e.gmap.TeleporterPartner(gamemap.Point{X: pp.X, Y: pp.Y})
	if !ok {
		e.say("The pad is cold and dead.")
		return false
	}
	e.world.Add(e.playerID, component.Position{X: partner.X, Y: partner.Y})
	e.say("The world folds. You are somewhere else.")

	if e.rng.Intn(100) < 25 {
		hp := e.playerHP()
		hp.Current -= 2
		if hp.Current < 1 {
			hp.Current = 1
		}
		e.world.Add(e.playerID, hp)
		e.say("Your stomach arrives a moment late. (2 damage)")
	}
	return true
}
