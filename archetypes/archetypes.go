package archetypes

import (
	"slices"

	"github.com/automoto/amor-galactico/components"
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/automoto/amor-galactico/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Position,
		components.Object,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Position,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Position,
		components.Object,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
		components.Position,
	)
	Star = newArchetype(
		tags.Star,
		components.Star,
		components.Position,
	)
	Space = newArchetype(
		components.Space,
	)
	Session = newArchetype(
		components.Game,
		components.Lives,
		components.Wave,
		components.Controls,
		components.LevelComplete,
		components.Random,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		slices.Concat(a.components, cs)...,
	))
	return e
}
