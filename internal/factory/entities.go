// Package factory assembles entities from content templates.
package factory

import (
	"gloomdelve/assets"
	"gloomdelve/internal/component"
	"gloomdelve/internal/ecs"
	"gloomdelve/internal/generate"
)

// Player starting stats.
const (
	playerMaxHP   = 50
	playerAttack  = 8
	playerDefense = 2
)

// NewPlayer creates the player entity at (x, y), facing north.
func NewPlayer(w *ecs.World, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Facing{Dir: component.North})
	w.Add(id, component.Health{Current: playerMaxHP, Max: playerMaxHP})
	w.Add(id, component.Combat{Attack: playerAttack, Defense: playerDefense})
	w.Add(id, component.Progress{Level: 1})
	w.Add(id, component.Pack{})
	w.Add(id, component.Renderable{Glyph: "@", RenderOrder: 10})
	w.Add(id, component.TagPlayer{})
	return id
}

// NewEnemy creates an enemy entity from a spawn entry.
func NewEnemy(w *ecs.World, spawn generate.EnemySpawn) ecs.EntityID {
	e := spawn.Entry
	id := w.CreateEntity()
	w.Add(id, component.Position{X: spawn.X, Y: spawn.Y})
	w.Add(id, component.Health{Current: e.MaxHP, Max: e.MaxHP})
	w.Add(id, component.Combat{Attack: e.Attack, Defense: e.Defense})
	w.Add(id, component.Status{})
	w.Add(id, component.EnemyInfo{Name: e.Name, Tier: e.Tier, XPValue: e.XPValue, Phrases: e.Phrases})
	w.Add(id, component.Renderable{Glyph: e.Glyph, RenderOrder: 5})
	w.Add(id, component.TagEnemy{})
	return id
}

// NewItem creates a ground item entity from a spawn entry. Weapon items
// carry the concrete weapon rolled at generation time.
func NewItem(w *ecs.World, spawn generate.ItemSpawn) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: spawn.X, Y: spawn.Y})
	w.Add(id, component.Item{Kind: spawn.Kind})
	w.Add(id, component.Renderable{Glyph: itemGlyph(spawn.Kind), RenderOrder: 2})
	w.Add(id, component.TagItem{})
	if spawn.Kind == component.ItemWeapon && spawn.Weapon != nil {
		w.Add(id, spawn.Weapon.Component())
	}
	return id
}

// NewTrap creates a trap entity from a spawn entry. Traps are invisible to
// the renderer until triggered.
func NewTrap(w *ecs.World, spawn generate.TrapSpawn) ecs.EntityID {
	e := spawn.Entry
	id := w.CreateEntity()
	w.Add(id, component.Position{X: spawn.X, Y: spawn.Y})
	w.Add(id, component.Trap{Kind: e.Kind, Name: e.Name, Damage: e.Damage})
	w.Add(id, component.TagTrap{})
	return id
}

func itemGlyph(kind component.ItemKind) string {
	switch kind {
	case component.ItemGold:
		return assets.GlyphGold
	case component.ItemHealthPotion:
		return assets.GlyphPotion
	case component.ItemWeapon:
		return assets.GlyphWeapon
	case component.ItemArmor:
		return assets.GlyphArmor
	default:
		return assets.GlyphKey
	}
}
