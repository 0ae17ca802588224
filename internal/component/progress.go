package component

import "gloomdelve/internal/ecs"

const CProgress ecs.ComponentType = 6

// Progress tracks the player's advancement. The level-up threshold is
// Level×100 XP; a single award may cross several thresholds at once.
type Progress struct {
	Level int
	XP    int
	Gold  int
}

func (Progress) Type() ecs.ComponentType { return CProgress }
