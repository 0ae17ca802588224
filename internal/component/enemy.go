package component

import "gloomdelve/internal/ecs"

const CEnemyInfo ecs.ComponentType = 11

// EnemyInfo carries the static, per-type data an enemy keeps at runtime:
// its name, the XP it is worth, and its flavor attack lines.
type EnemyInfo struct {
	Name    string
	Tier    int
	XPValue int
	Phrases []string
}

func (EnemyInfo) Type() ecs.ComponentType { return CEnemyInfo }
