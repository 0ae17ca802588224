package component

import "gloomdelve/internal/ecs"

const CCombat ecs.ComponentType = 4

// Combat holds the effective attack and defense stats. For the player,
// Attack already includes the equipped weapon's flat bonus; equip/unequip
// bookkeeping adjusts it in place.
type Combat struct {
	Attack  int
	Defense int
}

func (Combat) Type() ecs.ComponentType { return CCombat }
