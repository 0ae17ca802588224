package component

import "gloomdelve/internal/ecs"

const CStatus ecs.ComponentType = 5

// Status carries the timed effect counters on an enemy. Counters are
// decremented exactly once per enemy phase and never go negative.
type Status struct {
	StunTurns   int
	BleedDamage int
	BleedTurns  int
}

func (Status) Type() ecs.ComponentType { return CStatus }
