package factory

import (
	"math/rand/v2"

	"github.com/automoto/amor-galactico/archetypes"
	"github.com/automoto/amor-galactico/components"
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/yohamta/donburi/ecs"
)

// SpawnParticleBurst creates count hearts at (x, y) flying in random directions
func SpawnParticleBurst(ecs *ecs.ECS, x, y float64, count int, rng *rand.Rand) {
	spread := cfg.Particle.MaxSpeed
	for range count {
		p := archetypes.Particle.Spawn(ecs)
		components.Position.Set(p, &components.PositionData{X: x, Y: y})
		components.Particle.Set(p, &components.ParticleData{
			VX:   (rng.Float64() - 0.5) * spread,
			VY:   (rng.Float64() - 0.5) * spread,
			Life: cfg.Particle.Life,
			Size: cfg.Particle.MinSize + rng.Float64()*cfg.Particle.SizeVariance,
		})
	}
}

// CreateStars fills the background with the fixed star field
func CreateStars(ecs *ecs.ECS, rng *rand.Rand) {
	width := float64(cfg.C.Width)
	height := float64(cfg.C.Height)
	for range cfg.Star.Count {
		s := archetypes.Star.Spawn(ecs)
		components.Position.Set(s, &components.PositionData{
			X: rng.Float64() * width,
			Y: rng.Float64() * height,
		})
		components.Star.Set(s, &components.StarData{
			Speed: cfg.Star.MinSpeed + rng.Float64()*cfg.Star.SpeedVariance,
			Size:  cfg.Star.MinSize + rng.Float64()*cfg.Star.SizeVariance,
		})
	}
}
