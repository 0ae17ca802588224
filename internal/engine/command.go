package engine

// CommandKind enumerates every discrete action the input layer can request.
type CommandKind uint8

const (
	CmdNone CommandKind = iota

	// Relative scheme: rotate facing (free) or move along it.
	CmdTurnLeft
	CmdTurnRight
	CmdMoveForward
	CmdMoveBackward

	// Absolute scheme: compass moves that also set facing.
	CmdMoveNorth
	CmdMoveSouth
	CmdMoveEast
	CmdMoveWest

	CmdWait
	CmdInteract
	CmdUseElevator
	CmdUseTeleporter
	CmdUseSlot
	CmdWeaponSpecial
	CmdRestart
)

// Command is one discrete player request. Slot is the 1-based inventory
// index for CmdUseSlot and ignored otherwise.
type Command struct {
	Kind CommandKind
	Slot int
}

// UseSlot builds an inventory-use command for the 1-based slot n.
func UseSlot(n int) Command {
	return Command{Kind: CmdUseSlot, Slot: n}
}

// Outcome reports what one Apply call did. Messages holds only the lines
// emitted during that call, oldest first; the engine's capped log is on the
// snapshot.
type Outcome struct {
	Messages []string
	TurnUsed bool
	GameOver bool
	Victory  bool
}
