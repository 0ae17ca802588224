package component

import "gloomdelve/internal/ecs"

const CTrap ecs.ComponentType = 9

// TrapKind classifies a floor trap.
type TrapKind uint8

const (
	TrapSpikes TrapKind = iota
	TrapDarts
	TrapFlame
	TrapFrost
	TrapCollapse
)

// Trap fires once: Triggered flips on the first step and the trap is inert
// afterwards.
type Trap struct {
	Kind      TrapKind
	Name      string
	Damage    int
	Triggered bool
}

func (Trap) Type() ecs.ComponentType { return CTrap }
