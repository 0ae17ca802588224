package system

import (
	"math"

	"gloomdelve/internal/gamemap"
)

// Field-of-view parameters: 180 rays at 2° increments, 6 tiles out.
const (
	fovRays   = 180
	FOVRadius = 6
)

// UpdateFOV clears the visible grid and re-marks it with an angular ray
// scan from the player's tile center. Every stepped tile is marked visible
// and explored; a ray stops after marking the first opaque tile it lands
// on. Explored is monotonic: it is set here and never cleared.
//
// This is an angular approximation, not recursive shadowcasting. It can
// leak sight through single-tile diagonal gaps; that behavior is part of
// the game and must not be "fixed" by swapping in an exact algorithm.
func UpdateFOV(m *gamemap.GameMap, px, py int) {
	for y := 0; y < gamemap.Height; y++ {
		for x := 0; x < gamemap.Width; x++ {
			m.At(x, y).Visible = false
		}
	}

	if !m.InBounds(px, py) {
		return
	}
	origin := m.At(px, py)
	origin.Visible = true
	origin.Explored = true

	for i := 0; i < fovRays; i++ {
		rad := float64(i*2) * math.Pi / 180
		dx, dy := math.Cos(rad), math.Sin(rad)

		fx, fy := float64(px)+0.5, float64(py)+0.5
		for step := 0; step < FOVRadius; step++ {
			fx += dx
			fy += dy
			x, y := int(math.Floor(fx)), int(math.Floor(fy))
			if !m.InBounds(x, y) {
				break
			}
			t := m.At(x, y)
			t.Visible = true
			t.Explored = true
			if !t.Transparent() {
				break
			}
		}
	}
}
