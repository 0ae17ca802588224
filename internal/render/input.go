package render

import (
	"github.com/gdamore/tcell/v2"

	"gloomdelve/internal/engine"
)

// KeyToCommand maps one key event to an engine command. quit is reported
// separately because the engine has no concept of the program exiting.
//
// Two movement schemes coexist: arrows and hjkl move by compass, while
// wasd steers relative to facing (a/d turn, w/s step forward and back).
func KeyToCommand(ev *tcell.EventKey) (cmd engine.Command, quit bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return engine.Command{Kind: engine.CmdMoveNorth}, false
	case tcell.KeyDown:
		return engine.Command{Kind: engine.CmdMoveSouth}, false
	case tcell.KeyRight:
		return engine.Command{Kind: engine.CmdMoveEast}, false
	case tcell.KeyLeft:
		return engine.Command{Kind: engine.CmdMoveWest}, false
	case tcell.KeyEnter:
		return engine.Command{Kind: engine.CmdInteract}, false
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return engine.Command{}, true
	}

	switch ev.Rune() {
	case 'k', 'K':
		return engine.Command{Kind: engine.CmdMoveNorth}, false
	case 'j', 'J':
		return engine.Command{Kind: engine.CmdMoveSouth}, false
	case 'l', 'L':
		return engine.Command{Kind: engine.CmdMoveEast}, false
	case 'h', 'H':
		return engine.Command{Kind: engine.CmdMoveWest}, false

	case 'w', 'W':
		return engine.Command{Kind: engine.CmdMoveForward}, false
	case 's', 'S':
		return engine.Command{Kind: engine.CmdMoveBackward}, false
	case 'a', 'A':
		return engine.Command{Kind: engine.CmdTurnLeft}, false
	case 'd', 'D':
		return engine.Command{Kind: engine.CmdTurnRight}, false

	case '.', ' ':
		return engine.Command{Kind: engine.CmdWait}, false
	case 'e', 'E', '>':
		return engine.Command{Kind: engine.CmdInteract}, false
	case 'f', 'F', 'z', 'Z':
		return engine.Command{Kind: engine.CmdWeaponSpecial}, false
	case 'r', 'R':
		return engine.Command{Kind: engine.CmdRestart}, false
	case 'q', 'Q':
		return engine.Command{}, true
	}

	if ev.Rune() >= '1' && ev.Rune() <= '9' {
		return engine.UseSlot(int(ev.Rune() - '0')), false
	}
	return engine.Command{Kind: engine.CmdNone}, false
}
