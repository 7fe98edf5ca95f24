package systems

import (
	"github.com/automoto/amor-galactico/components"
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/automoto/amor-galactico/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBullets moves bullets up and removes those past the top margin
func UpdateBullets(e *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.Bullet.Each(e.World, func(entry *donburi.Entry) {
		bullet := components.Bullet.Get(entry)
		pos := components.Position.Get(entry)

		pos.Y += bullet.VY
		if pos.Y < -cfg.Bullet.TopMargin {
			toDestroy = append(toDestroy, entry)
			return
		}

		cx, cy := factory.BulletCenter(pos)
		factory.MoveHitBox(components.Object.Get(entry).Object, cx, cy)
	})

	destroy(toDestroy)
}
