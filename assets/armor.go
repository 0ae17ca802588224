package assets

import "math/rand"

// ArmorEntry is the static template for one armor find. Armor has no slot:
// its defense bonus is applied immediately and permanently on pickup.
type ArmorEntry struct {
	Name    string
	Defense int
}

var armorTemplates = []ArmorEntry{
	{Name: "Boiled Leather", Defense: 1},
	{Name: "Chain Hauberk", Defense: 2},
	{Name: "Warden Plate", Defense: 3},
}

// RandomArmor draws one armor template.
func RandomArmor(rng *rand.Rand) ArmorEntry {
	return armorTemplates[rng.Intn(len(armorTemplates))]
}
