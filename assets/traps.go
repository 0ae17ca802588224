package assets

import (
	"math/rand"

	"gloomdelve/internal/component"
)

// TrapEntry is the static template for one trap kind.
type TrapEntry struct {
	Kind   component.TrapKind
	Name   string
	Damage int
}

// TrapTable holds every trap template keyed by kind.
var TrapTable = map[component.TrapKind]TrapEntry{
	component.TrapSpikes:   {Kind: component.TrapSpikes, Name: "spike pit", Damage: 6},
	component.TrapDarts:    {Kind: component.TrapDarts, Name: "dart launcher", Damage: 4},
	component.TrapFlame:    {Kind: component.TrapFlame, Name: "flame jet", Damage: 8},
	component.TrapFrost:    {Kind: component.TrapFrost, Name: "frost rune", Damage: 5},
	component.TrapCollapse: {Kind: component.TrapCollapse, Name: "collapsing floor", Damage: 10},
}

var trapKinds = []component.TrapKind{
	component.TrapSpikes,
	component.TrapDarts,
	component.TrapFlame,
	component.TrapFrost,
	component.TrapCollapse,
}

// RandomTrap draws one trap template, scaling damage with depth.
func RandomTrap(rng *rand.Rand, floor int) TrapEntry {
	e := TrapTable[trapKinds[rng.Intn(len(trapKinds))]]
	e.Damage += (floor - 1) * 2
	return e
}
