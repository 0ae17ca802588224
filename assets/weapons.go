package assets

import (
	"math/rand"

	"gloomdelve/internal/component"
)

// WeaponEntry is the static template for one weapon. Power is the special
// ability magnitude, independent of the flat attack Bonus.
type WeaponEntry struct {
	Name        string
	Glyph       string
	Bonus       int
	Ability     component.Ability
	Power       int
	MaxCooldown int
	Desc        string
}

// WeaponTable holds every weapon template, keyed by ability so content
// additions stay data-only.
var WeaponTable = map[component.Ability][]WeaponEntry{
	component.AbilityNone: {
		{Name: "Worn Shortsword", Glyph: ")", Bonus: 3,
			Desc: "A plain blade. It has seen worse owners."},
	},
	component.AbilityBleed: {
		{Name: "Serrated Cleaver", Glyph: ")", Bonus: 5, Power: 3, MaxCooldown: 5,
			Desc: "Leaves wounds that keep bleeding."},
	},
	component.AbilityStun: {
		{Name: "Tomb Maul", Glyph: ")", Bonus: 6, Power: 2, MaxCooldown: 6,
			Desc: "A blow to ring skulls like bells."},
	},
	component.AbilityLifesteal: {
		{Name: "Leech Dagger", Glyph: ")", Bonus: 4, Power: 4, MaxCooldown: 5,
			Desc: "Drinks what it cuts."},
	},
	component.AbilityAreaDamage: {
		{Name: "Thunder Flail", Glyph: ")", Bonus: 5, Power: 6, MaxCooldown: 7,
			Desc: "Strikes everything close enough to hear it."},
	},
	component.AbilityKnockback: {
		{Name: "Wardens Greathammer", Glyph: ")", Bonus: 7, Power: 3, MaxCooldown: 6,
			Desc: "Sends whatever it hits somewhere else."},
	},
	component.AbilityDoubleDamage: {
		{Name: "Executioners Edge", Glyph: ")", Bonus: 6, Power: 2, MaxCooldown: 8,
			Desc: "One swing, twice the weight behind it."},
	},
}

// flat view of WeaponTable for uniform random draws, built once.
var weaponPool = func() []WeaponEntry {
	abilities := []component.Ability{
		component.AbilityNone,
		component.AbilityBleed,
		component.AbilityStun,
		component.AbilityLifesteal,
		component.AbilityAreaDamage,
		component.AbilityKnockback,
		component.AbilityDoubleDamage,
	}
	var pool []WeaponEntry
	for _, a := range abilities {
		pool = append(pool, WeaponTable[a]...)
	}
	return pool
}()

// RandomWeapon draws one weapon template.
func RandomWeapon(rng *rand.Rand) WeaponEntry {
	return weaponPool[rng.Intn(len(weaponPool))]
}

// Component builds the runtime weapon from the template, ready to use.
func (e WeaponEntry) Component() component.Weapon {
	return component.Weapon{
		Name:        e.Name,
		Glyph:       e.Glyph,
		Bonus:       e.Bonus,
		Ability:     e.Ability,
		Power:       e.Power,
		Cooldown:    0,
		MaxCooldown: e.MaxCooldown,
		Desc:        e.Desc,
	}
}
