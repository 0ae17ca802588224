package component

import "gloomdelve/internal/ecs"

const CWeapon ecs.ComponentType = 7

// Ability identifies a weapon's special attack.
type Ability uint8

const (
	AbilityNone Ability = iota
	AbilityBleed
	AbilityStun
	AbilityLifesteal
	AbilityAreaDamage
	AbilityKnockback
	AbilityDoubleDamage
)

func (a Ability) String() string {
	switch a {
	case AbilityBleed:
		return "bleed"
	case AbilityStun:
		return "stun"
	case AbilityLifesteal:
		return "lifesteal"
	case AbilityAreaDamage:
		return "area damage"
	case AbilityKnockback:
		return "knockback"
	case AbilityDoubleDamage:
		return "double damage"
	default:
		return "none"
	}
}

// Weapon is attached to the player while equipped, and to a ground item
// entity while waiting to be picked up. Power is the ability magnitude,
// independent of the flat attack Bonus.
type Weapon struct {
	Name        string
	Glyph       string
	Bonus       int
	Ability     Ability
	Power       int
	Cooldown    int
	MaxCooldown int
	Desc        string
}

func (Weapon) Type() ecs.ComponentType { return CWeapon }
