package component

import "gloomdelve/internal/ecs"

const CPack ecs.ComponentType = 10

// PackSlot is one stacking inventory entry.
type PackSlot struct {
	Glyph string
	Name  string
	Kind  ItemKind
	Qty   int
}

// Pack is the player's carried inventory: stacking consumables plus the
// singleton key entry. The equipped weapon lives in its own component.
type Pack struct {
	Slots  []PackSlot
	HasKey bool
}

// Find returns the index of the slot holding kind, or -1.
func (p Pack) Find(kind ItemKind) int {
	for i, s := range p.Slots {
		if s.Kind == kind {
			return i
		}
	}
	return -1
}

func (Pack) Type() ecs.ComponentType { return CPack }
