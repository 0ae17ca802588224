package engine

import (
	"gloomdelve/assets"
	"gloomdelve/internal/component"
	"gloomdelve/internal/gamemap"
)

// EntityView is one drawable thing: the player, an enemy, an item, or a
// sprung trap. Higher RenderOrder draws on top.
type EntityView struct {
	X, Y        int
	Glyph       string
	RenderOrder int
}

// EnemyView extends the drawable with the HUD fields for visible enemies.
type EnemyView struct {
	EntityView
	Name     string
	HP, Max  int
	Stunned  bool
	Bleeding bool
}

// PlayerView is everything the HUD shows about the player.
type PlayerView struct {
	X, Y    int
	Facing  component.Direction
	HP, Max int
	Attack  int
	Defense int
	Level   int
	XP      int
	Gold    int

	// Equipped weapon; WeaponName is empty when bare-handed.
	WeaponName     string
	WeaponAbility  component.Ability
	WeaponCooldown int
}

// SlotView is one inventory line.
type SlotView struct {
	Glyph string
	Name  string
	Qty   int
}

// Snapshot is an immutable copy of everything the presentation layer may
// draw. Tiles is a value copy; mutating it cannot reach the engine.
type Snapshot struct {
	Tiles     [gamemap.Height][gamemap.Width]gamemap.Tile
	Floor     int
	FloorName string

	Player    PlayerView
	Enemies   []EnemyView
	Drawables []EntityView // items and sprung traps

	Inventory []SlotView
	HasKey    bool

	Messages []string // newest first
	GameOver bool
	Victory  bool
	Stats    RunStats
}

// Snapshot captures the current state for rendering.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Tiles:     e.gmap.Tiles,
		Floor:     e.floor,
		FloorName: assets.FloorNames[e.floor],
		GameOver:  e.state == StateGameOver,
		Victory:   e.state == StateVictory,
		Stats:     e.stats,
	}

	pp := e.playerPos()
	hp := e.playerHP()
	combat := e.world.Get(e.playerID, component.CCombat).(component.Combat)
	prog := e.world.Get(e.playerID, component.CProgress).(component.Progress)
	s.Player = PlayerView{
		X: pp.X, Y: pp.Y,
		Facing:  e.facing(),
		HP:      hp.Current,
		Max:     hp.Max,
		Attack:  combat.Attack,
		Defense: combat.Defense,
		Level:   prog.Level,
		XP:      prog.XP,
		Gold:    prog.Gold,
	}
	if wc := e.world.Get(e.playerID, component.CWeapon); wc != nil {
		wp := wc.(component.Weapon)
		s.Player.WeaponName = wp.Name
		s.Player.WeaponAbility = wp.Ability
		s.Player.WeaponCooldown = wp.Cooldown
	}

	for _, id := range e.world.Query(component.CEnemyInfo, component.CPosition) {
		pos := e.world.Get(id, component.CPosition).(component.Position)
		if !e.gmap.At(pos.X, pos.Y).Visible {
			continue
		}
		info := e.world.Get(id, component.CEnemyInfo).(component.EnemyInfo)
		ehp := e.world.Get(id, component.CHealth).(component.Health)
		st := e.world.Get(id, component.CStatus).(component.Status)
		rd := e.world.Get(id, component.CRenderable).(component.Renderable)
		s.Enemies = append(s.Enemies, EnemyView{
			EntityView: EntityView{X: pos.X, Y: pos.Y, Glyph: rd.Glyph, RenderOrder: rd.RenderOrder},
			Name:       info.Name,
			HP:         ehp.Current,
			Max:        ehp.Max,
			Stunned:    st.StunTurns > 0,
			Bleeding:   st.BleedTurns > 0,
		})
	}

	for _, id := range e.world.Query(component.CItem, component.CPosition) {
		pos := e.world.Get(id, component.CPosition).(component.Position)
		if !e.gmap.At(pos.X, pos.Y).Visible {
			continue
		}
		rd := e.world.Get(id, component.CRenderable).(component.Renderable)
		s.Drawables = append(s.Drawables, EntityView{X: pos.X, Y: pos.Y, Glyph: rd.Glyph, RenderOrder: rd.RenderOrder})
	}

	// Sprung traps stay on the map as a warning. Unsprung ones have no
	// Renderable and never reach the screen.
	for _, id := range e.world.Query(component.CTrap, component.CRenderable) {
		pos := e.world.Get(id, component.CPosition).(component.Position)
		if !e.gmap.At(pos.X, pos.Y).Explored {
			continue
		}
		rd := e.world.Get(id, component.CRenderable).(component.Renderable)
		s.Drawables = append(s.Drawables, EntityView{X: pos.X, Y: pos.Y, Glyph: rd.Glyph, RenderOrder: rd.RenderOrder})
	}

	pack := e.world.Get(e.playerID, component.CPack).(component.Pack)
	s.HasKey = pack.HasKey
	for _, slot := range pack.Slots {
		s.Inventory = append(s.Inventory, SlotView{Glyph: slot.Glyph, Name: slot.Name, Qty: slot.Qty})
	}

	s.Messages = make([]string, len(e.messages))
	for i, m := range e.messages {
		s.Messages[len(e.messages)-1-i] = m
	}
	return s
}
