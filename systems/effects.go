package systems

import (
	"github.com/automoto/amor-galactico/components"
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles integrates particles and removes expired ones
func UpdateParticles(e *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		pos := components.Position.Get(entry)

		pos.X += p.VX
		pos.Y += p.VY
		p.Life--
		if p.Life <= 0 {
			toDestroy = append(toDestroy, entry)
		}
	})

	destroy(toDestroy)
}

// UpdateStars scrolls the star field, wrapping stars past the bottom to the top
func UpdateStars(e *ecs.ECS) {
	height := float64(cfg.C.Height)

	components.Star.Each(e.World, func(entry *donburi.Entry) {
		star := components.Star.Get(entry)
		pos := components.Position.Get(entry)

		pos.Y += star.Speed
		if pos.Y > height {
			pos.Y = 0
		}
	})
}
