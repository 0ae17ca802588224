package assets

import "math/rand"

// EnemyEntry is the static template for one enemy type.
type EnemyEntry struct {
	Name    string
	Glyph   string
	Tier    int
	MaxHP   int
	Attack  int
	Defense int
	XPValue int
	Phrases []string
}

// enemyTemplates defines all 15 enemy types: 5 depth tiers of 3 types each.
var enemyTemplates = []EnemyEntry{
	// Tier 1: the shallows
	{Name: "Gloom Rat", Glyph: "r", Tier: 1, MaxHP: 8, Attack: 3, Defense: 0, XPValue: 10,
		Phrases: []string{"gnaws at your ankle", "skitters in and bites", "lunges with yellow teeth"}},
	{Name: "Cave Bat", Glyph: "b", Tier: 1, MaxHP: 6, Attack: 4, Defense: 0, XPValue: 12,
		Phrases: []string{"shrieks and rakes you", "dives at your face", "tangles in your hair"}},
	{Name: "Mold Crawler", Glyph: "m", Tier: 1, MaxHP: 12, Attack: 2, Defense: 1, XPValue: 14,
		Phrases: []string{"oozes over your boot", "sprays stinging spores", "clings and burns"}},
	// Tier 2: the warrens
	{Name: "Bone Picker", Glyph: "p", Tier: 2, MaxHP: 14, Attack: 5, Defense: 1, XPValue: 20,
		Phrases: []string{"jabs with a sharpened femur", "cackles and stabs", "claws at your eyes"}},
	{Name: "Tunnel Hound", Glyph: "h", Tier: 2, MaxHP: 18, Attack: 6, Defense: 1, XPValue: 24,
		Phrases: []string{"snaps its jaws shut", "bowls into you", "tears at your arm"}},
	{Name: "Rust Beetle", Glyph: "B", Tier: 2, MaxHP: 22, Attack: 4, Defense: 3, XPValue: 26,
		Phrases: []string{"clamps down with iron mandibles", "rams you with its shell", "hisses corrosive spittle"}},
	// Tier 3: the deep halls
	{Name: "Hollow Sentinel", Glyph: "S", Tier: 3, MaxHP: 26, Attack: 8, Defense: 3, XPValue: 38,
		Phrases: []string{"swings a rusted halberd", "strikes with mechanical precision", "backhands you across the hall"}},
	{Name: "Web Matron", Glyph: "W", Tier: 3, MaxHP: 22, Attack: 9, Defense: 2, XPValue: 40,
		Phrases: []string{"sinks venomed fangs into you", "drops from the ceiling onto you", "lashes you with silk-wrapped claws"}},
	{Name: "Grave Shade", Glyph: "G", Tier: 3, MaxHP: 20, Attack: 10, Defense: 1, XPValue: 42,
		Phrases: []string{"passes a cold hand through you", "whispers your name and strikes", "drains the warmth from your skin"}},
	// Tier 4: the flooded dark
	{Name: "Drowned Thing", Glyph: "D", Tier: 4, MaxHP: 34, Attack: 11, Defense: 4, XPValue: 60,
		Phrases: []string{"grasps with waterlogged hands", "vomits black brine at you", "pulls you toward the dark water"}},
	{Name: "Lantern Eater", Glyph: "L", Tier: 4, MaxHP: 30, Attack: 13, Defense: 3, XPValue: 64,
		Phrases: []string{"snuffs the light and strikes", "bites down where your light was", "swallows the air around you"}},
	{Name: "Chitin Horror", Glyph: "C", Tier: 4, MaxHP: 40, Attack: 10, Defense: 6, XPValue: 68,
		Phrases: []string{"impales you on a barbed limb", "scythes both claws at once", "crushes you against the wall"}},
	// Tier 5: the abyss
	{Name: "Abyss Warden", Glyph: "A", Tier: 5, MaxHP: 50, Attack: 15, Defense: 6, XPValue: 100,
		Phrases: []string{"brings its warhammer down", "roars and charges", "shatters the stone beneath you"}},
	{Name: "Pale King's Hand", Glyph: "K", Tier: 5, MaxHP: 44, Attack: 17, Defense: 5, XPValue: 110,
		Phrases: []string{"carves a pale arc toward you", "moves faster than sight", "strikes from three directions at once"}},
	{Name: "The Unlit", Glyph: "U", Tier: 5, MaxHP: 60, Attack: 14, Defense: 8, XPValue: 120,
		Phrases: []string{"unfolds out of the darkness", "presses the dark itself against you", "silences you mid-breath"}},
}

// TierForFloor maps a floor number to its enemy tier. Depths past the last
// tier stay at the deepest one.
func TierForFloor(floor int) int {
	if floor < 1 {
		return 1
	}
	if floor > 5 {
		return 5
	}
	return floor
}

// EnemiesForTier returns the three templates of the given tier.
func EnemiesForTier(tier int) []EnemyEntry {
	var out []EnemyEntry
	for _, e := range enemyTemplates {
		if e.Tier == tier {
			out = append(out, e)
		}
	}
	return out
}

// RandomEnemy picks one template for the given floor's tier.
func RandomEnemy(rng *rand.Rand, floor int) EnemyEntry {
	pool := EnemiesForTier(TierForFloor(floor))
	return pool[rng.Intn(len(pool))]
}
