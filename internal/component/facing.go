package component

import "gloomdelve/internal/ecs"

const CFacing ecs.ComponentType = 2

// Direction is a cardinal orientation. Values advance clockwise so turning
// is modular arithmetic.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Delta returns the unit step for the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// Left returns the direction after a 90° counterclockwise turn.
func (d Direction) Left() Direction { return (d + 3) % 4 }

// Right returns the direction after a 90° clockwise turn.
func (d Direction) Right() Direction { return (d + 1) % 4 }

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	default:
		return "west"
	}
}

// Facing records which way the player is pointed. Used by the relative
// control scheme and by weapon special targeting.
type Facing struct {
	Dir Direction
}

func (Facing) Type() ecs.ComponentType { return CFacing }
