package component

import "gloomdelve/internal/ecs"

const CHealth ecs.ComponentType = 3

type Health struct {
	Current, Max int
}

// Clamp bounds Current to [0, Max].
func (h Health) Clamp() Health {
	if h.Current > h.Max {
		h.Current = h.Max
	}
	if h.Current < 0 {
		h.Current = 0
	}
	return h
}

func (Health) Type() ecs.ComponentType { return CHealth }
