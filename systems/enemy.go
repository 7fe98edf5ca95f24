package systems

import (
	"math"

	"github.com/automoto/amor-galactico/components"
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/automoto/amor-galactico/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies advances the sine wiggle and descent. Each enemy that
// passes the bottom edge is removed and costs one life.
func UpdateEnemies(e *ecs.ECS) {
	var escaped []*donburi.Entry
	height := float64(cfg.C.Height)

	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		pos := components.Position.Get(entry)

		enemy.Phase += cfg.Enemy.PhaseStep
		pos.X += math.Sin(enemy.Phase)*cfg.Enemy.WiggleFactor + enemy.VX
		pos.Y += enemy.VY

		if pos.Y > height {
			escaped = append(escaped, entry)
			return
		}

		cx, cy := factory.EnemyCenter(pos, enemy)
		factory.MoveHitBox(components.Object.Get(entry).Object, cx, cy)
	})

	destroy(escaped)
	for range escaped {
		LoseLife(e)
	}
}
