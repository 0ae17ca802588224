package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"gloomdelve/internal/engine"
)

// drawHUD renders the status bar, inventory line, and recent messages in
// the reserved rows under the map.
func (r *Renderer) drawHUD(snap engine.Snapshot) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)

	p := snap.Player
	status := fmt.Sprintf("HP:%d/%d ATK:%d DEF:%d LVL:%d XP:%d $%d  Floor %d: %s",
		p.HP, p.Max, p.Attack, p.Defense, p.Level, p.XP, p.Gold, snap.Floor, snap.FloorName)
	if p.WeaponName != "" {
		if p.WeaponCooldown > 0 {
			status += fmt.Sprintf("  %s (ready in %d)", p.WeaponName, p.WeaponCooldown)
		} else {
			status += fmt.Sprintf("  %s (ready)", p.WeaponName)
		}
	}
	r.drawText(0, hudY+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	var parts []string
	for i, slot := range snap.Inventory {
		parts = append(parts, fmt.Sprintf("%d:%s x%d", i+1, slot.Name, slot.Qty))
	}
	if len(parts) > 0 {
		r.drawText(0, hudY+2, strings.Join(parts, "  "), tcell.StyleDefault.Foreground(tcell.ColorLightCyan))
	}

	// Two most recent messages; the snapshot orders newest first.
	msgStyle := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	for i := 0; i < 2 && i < len(snap.Messages); i++ {
		r.drawText(0, hudY+4-i, snap.Messages[i], msgStyle)
	}

	switch {
	case snap.Victory:
		r.drawBanner("YOU ESCAPED THE GLOOM  (r to delve again, q to quit)")
	case snap.GameOver:
		r.drawBanner("YOU HAVE FALLEN  (r to delve again, q to quit)")
	}
}

func (r *Renderer) drawBanner(text string) {
	w, h := r.screen.Size()
	x := (w - len(text)) / 2
	if x < 0 {
		x = 0
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	r.drawText(x, h/2, text, style)
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '-', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
