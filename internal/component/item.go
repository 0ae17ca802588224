package component

import "gloomdelve/internal/ecs"

const CItem ecs.ComponentType = 8

// ItemKind classifies a pickup on the dungeon floor.
type ItemKind uint8

const (
	ItemGold ItemKind = iota
	ItemHealthPotion
	ItemWeapon
	ItemArmor
	ItemKey
)

func (k ItemKind) String() string {
	switch k {
	case ItemGold:
		return "gold"
	case ItemHealthPotion:
		return "health potion"
	case ItemWeapon:
		return "weapon"
	case ItemArmor:
		return "armor"
	default:
		return "key"
	}
}

// Item marks a ground pickup. Weapon items additionally carry a Weapon
// component with the concrete weapon rolled at spawn time.
type Item struct {
	Kind ItemKind
}

func (Item) Type() ecs.ComponentType { return CItem }
