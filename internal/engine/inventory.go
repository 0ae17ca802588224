package engine

import (
	"github.com/sirupsen/logrus"

	"gloomdelve/assets"
	"gloomdelve/internal/component"
	"gloomdelve/internal/ecs"
	"gloomdelve/internal/logging"
)

// pickupAt collects any ground item on (x, y). Pickup is automatic and
// free: stepping onto the tile is the turn's cost.
func (e *Engine) pickupAt(x, y int) {
	id := e.itemAt(x, y)
	if id == ecs.NilEntity {
		return
	}
	item := e.world.Get(id, component.CItem).(component.Item)
	pack := e.world.Get(e.playerID, component.CPack).(component.Pack)

	switch item.Kind {
	case component.ItemGold:
		amount := (1 + e.rng.Intn(9)) * e.floor
		prog := e.world.Get(e.playerID, component.CProgress).(component.Progress)
		prog.Gold += amount
		e.world.Add(e.playerID, prog)
		e.say("You scoop up %d gold.", amount)

	case component.ItemHealthPotion:
		if i := pack.Find(component.ItemHealthPotion); i >= 0 {
			pack.Slots[i].Qty++
		} else {
			pack.Slots = append(pack.Slots, component.PackSlot{
				Glyph: assets.GlyphPotion,
				Name:  "Health Potion",
				Kind:  component.ItemHealthPotion,
				Qty:   1,
			})
		}
		e.world.Add(e.playerID, pack)
		e.say("You pocket a health potion.")

	case component.ItemWeapon:
		wp := e.world.Get(id, component.CWeapon).(component.Weapon)
		e.equipWeapon(wp)

	case component.ItemArmor:
		entry := assets.RandomArmor(e.rng)
		combat := e.world.Get(e.playerID, component.CCombat).(component.Combat)
		combat.Defense += entry.Defense
		e.world.Add(e.playerID, combat)
		e.say("You strap on the %s. (+%d defense)", entry.Name, entry.Defense)

	case component.ItemKey:
		pack.HasKey = true
		if pack.Find(component.ItemKey) < 0 {
			pack.Slots = append(pack.Slots, component.PackSlot{
				Glyph: assets.GlyphKey,
				Name:  "Iron Key",
				Kind:  component.ItemKey,
				Qty:   1,
			})
		}
		e.world.Add(e.playerID, pack)
		e.say("You pick up a heavy iron key.")
	}

	e.world.DestroyEntity(id)
}

// equipWeapon swaps the equipped weapon. The flat attack bonus lives inside
// Combat.Attack, so the old bonus comes off before the new one goes on.
func (e *Engine) equipWeapon(wp component.Weapon) {
	combat := e.world.Get(e.playerID, component.CCombat).(component.Combat)
	if old := e.world.Get(e.playerID, component.CWeapon); old != nil {
		ow := old.(component.Weapon)
		combat.Attack -= ow.Bonus
		e.say("You discard the %s.", ow.Name)
	}
	combat.Attack += wp.Bonus
	e.world.Add(e.playerID, combat)
	wp.Cooldown = 0
	e.world.Add(e.playerID, wp)
	e.say("You take up the %s. (+%d attack, %s)", wp.Name, wp.Bonus, wp.Ability)
}

// triggerTrapAt fires any untriggered trap on (x, y). A trap fires exactly
// once; afterwards it stays visible and inert.
func (e *Engine) triggerTrapAt(x, y int) {
	for _, id := range e.world.Query(component.CTrap, component.CPosition) {
		pos := e.world.Get(id, component.CPosition).(component.Position)
		if pos.X != x || pos.Y != y {
			continue
		}
		trap := e.world.Get(id, component.CTrap).(component.Trap)
		if trap.Triggered {
			return
		}
		trap.Triggered = true
		e.world.Add(id, trap)
		e.world.Add(id, component.Renderable{Glyph: "^", RenderOrder: 1})

		hp := e.playerHP()
		hp.Current -= trap.Damage
		e.world.Add(e.playerID, hp.Clamp())
		e.stats.DamageTaken += trap.Damage
		e.say("A %s springs! (%d damage)", trap.Name, trap.Damage)

		if hp.Current <= 0 {
			e.state = StateGameOver
			e.say("You fall. The dark keeps what it takes.")
			logging.Log.WithFields(logrus.Fields{
				"floor": e.floor,
				"trap":  trap.Name,
			}).Info("run ended in defeat")
		}
		return
	}
}

// useSlot consumes from the 1-based inventory slot n. Only misuse is free;
// anything actually consumed costs the turn.
func (e *Engine) useSlot(n int) bool {
	pack := e.world.Get(e.playerID, component.CPack).(component.Pack)
	if n < 1 || n > len(pack.Slots) {
		e.say("Nothing in that slot.")
		return false
	}
	slot := pack.Slots[n-1]

	switch slot.Kind {
	case component.ItemHealthPotion:
		hp := e.playerHP()
		if hp.Current >= hp.Max {
			e.say("You are already whole.")
			return false
		}
		prog := e.world.Get(e.playerID, component.CProgress).(component.Progress)
		heal := 30 + prog.Level*5
		hp.Current += heal
		e.world.Add(e.playerID, hp.Clamp())
		e.consumeSlot(pack, n-1)
		e.say("You drink the potion. (+%d HP)", heal)
		return true

	case component.ItemKey:
		e.say("The key only fits one lock. Find the door.")
		return false

	default:
		e.say("You cannot use that.")
		return false
	}
}

// consumeSlot decrements a slot's quantity, dropping it at zero.
func (e *Engine) consumeSlot(pack component.Pack, i int) {
	pack.Slots[i].Qty--
	if pack.Slots[i].Qty <= 0 {
		pack.Slots = append(pack.Slots[:i], pack.Slots[i+1:]...)
	}
	e.world.Add(e.playerID, pack)
}

// itemAt returns the ground item entity on (x, y), or NilEntity.
func (e *Engine) itemAt(x, y int) ecs.EntityID {
	for _, id := range e.world.Query(component.CItem, component.CPosition) {
		pos := e.world.Get(id, component.CPosition).(component.Position)
		if pos.X == x && pos.Y == y {
			return id
		}
	}
	return ecs.NilEntity
}
