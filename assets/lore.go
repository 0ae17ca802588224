package assets

// FloorNames gives each depth a name (index 0 unused).
var FloorNames = [6]string{
	"",
	"the Shallows",
	"the Warrens",
	"the Deep Halls",
	"the Flooded Dark",
	"the Abyss",
}

// FloorLore holds atmospheric snippets per floor (index 0 unused). One is
// picked at random on entry.
var FloorLore = [6][]string{
	{},
	{
		"Rootlets push through the mortar. Something has been chewing on them.",
		"Old torch brackets line the walls. The torches left with their owners.",
		"A chalk arrow on the floor points back the way you came. It is worn from many boots.",
	},
	{
		"The tunnels here were dug from the inside out.",
		"Bones are sorted into neat piles. Someone tidies.",
		"Scratches on the wall count to forty, then stop mid-stroke.",
	},
	{
		"The ceiling rises beyond your light. Your footsteps return a beat late.",
		"Statues flank the hall. Their faces have been carefully removed.",
		"A rusted portcullis lies torn from its track. The bars bend outward.",
	},
	{
		"Black water sheets the floor. It is an inch deep and hides a mile.",
		"The air tastes of silt and old salt.",
		"Things float past in the gutter current. You decide not to look closely.",
	},
	{
		"The dark here has texture. It leans on your lantern.",
		"The stairs behind you feel much further away than they were.",
		"Nothing lives this deep. Several things persist anyway.",
	},
}

// Glyphs used by ground pickups.
const (
	GlyphGold   = "$"
	GlyphPotion = "!"
	GlyphArmor  = "["
	GlyphKey    = "k"
	GlyphWeapon = ")"
)
