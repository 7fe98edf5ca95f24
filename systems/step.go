package systems

import "github.com/yohamta/donburi/ecs"

// Simulation lists the per-frame simulation systems in execution order.
// Each must be wrapped with WithPlayingCheck when registered.
var Simulation = []ecs.System{
	UpdatePlayer,
	UpdateShooting,
	UpdateSpawner,
	UpdateBullets,
	UpdateEnemies,
	UpdateParticles,
	UpdateStars,
	UpdateCollisions,
	UpdateLevelProgress,
}

// Step runs one simulation frame
func Step(e *ecs.ECS) {
	for _, system := range Simulation {
		WithPlayingCheck(system)(e)
	}
}
