package component

import "gloomdelve/internal/ecs"

const CRenderable ecs.ComponentType = 12

// Renderable gives an entity a glyph for the presentation layer. Higher
// RenderOrder draws on top.
type Renderable struct {
	Glyph       string
	RenderOrder int
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
