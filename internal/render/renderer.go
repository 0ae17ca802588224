// Package render draws engine snapshots onto a tcell screen and maps key
// events to engine commands. It never touches the simulation directly.
package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"gloomdelve/internal/engine"
	"gloomdelve/internal/gamemap"
)

// hudRows is how many rows at the bottom belong to the status area.
const hudRows = 5

// Renderer draws snapshots onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// DrawFrame renders the map, entities, player, and HUD from one snapshot.
func (r *Renderer) DrawFrame(snap engine.Snapshot) {
	r.screen.Clear()
	r.drawMap(snap)
	r.drawEntities(snap)
	r.drawHUD(snap)
	r.screen.Show()
}

// tileGlyph maps a tile to its screen rune. Secret walls draw exactly like
// walls until opened; that is the point of them.
func tileGlyph(kind gamemap.TileKind) rune {
	switch kind {
	case gamemap.TileWall, gamemap.TileSecretWall:
		return '#'
	case gamemap.TileStairs:
		return '>'
	case gamemap.TileElevator:
		return '='
	case gamemap.TileTeleporter:
		return '*'
	case gamemap.TileLockedDoor:
		return '+'
	case gamemap.TileSafeRoom:
		return '_'
	default:
		return '.'
	}
}

func (r *Renderer) drawMap(snap engine.Snapshot) {
	lit := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	dim := tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray).Background(tcell.ColorBlack)

	for y := 0; y < gamemap.Height; y++ {
		for x := 0; x < gamemap.Width; x++ {
			tile := snap.Tiles[y][x]
			if !tile.Visible && !tile.Explored {
				continue
			}
			style := lit
			if !tile.Visible {
				style = dim
			}
			r.screen.SetContent(x, y, tileGlyph(tile.Kind), nil, style)
		}
	}
}

func (r *Renderer) drawEntities(snap engine.Snapshot) {
	// Lower render order draws first, so the player always lands on top.
	views := make([]engine.EntityView, 0, len(snap.Drawables)+len(snap.Enemies)+1)
	views = append(views, snap.Drawables...)
	for _, e := range snap.Enemies {
		views = append(views, e.EntityView)
	}
	views = append(views, engine.EntityView{X: snap.Player.X, Y: snap.Player.Y, Glyph: "@", RenderOrder: 10})

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].RenderOrder < views[j].RenderOrder
	})

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for _, v := range views {
		r.putGlyph(v.X, v.Y, v.Glyph, style)
	}
}

// putGlyph draws a glyph string, padding the second cell for wide runes.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
