package component

import "gloomdelve/internal/ecs"

const (
	CTagPlayer ecs.ComponentType = 13
	CTagEnemy  ecs.ComponentType = 14
	CTagItem   ecs.ComponentType = 15
	CTagTrap   ecs.ComponentType = 16
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagEnemy marks a hostile entity. Enemies block movement onto their tile.
type TagEnemy struct{}

func (TagEnemy) Type() ecs.ComponentType { return CTagEnemy }

// TagItem marks a pickup item on the map.
type TagItem struct{}

func (TagItem) Type() ecs.ComponentType { return CTagItem }

// TagTrap marks a floor trap.
type TagTrap struct{}

func (TagTrap) Type() ecs.ComponentType { return CTagTrap }
