package factory

import (
	"github.com/automoto/amor-galactico/archetypes"
	"github.com/automoto/amor-galactico/components"
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/automoto/amor-galactico/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBullet fires a bullet from the player's horizontal centre
func CreateBullet(ecs *ecs.ECS, playerPos *components.PositionData, player *components.PlayerData, seq uint64) *donburi.Entry {
	bullet := archetypes.Bullet.Spawn(ecs)

	pos := &components.PositionData{
		X: playerPos.X + player.Width/2 + cfg.Bullet.OffsetX,
		Y: playerPos.Y,
	}
	components.Position.Set(bullet, pos)
	components.Bullet.Set(bullet, &components.BulletData{
		VY:   cfg.Bullet.SpeedY,
		Size: cfg.Bullet.Size,
		Seq:  seq,
	})

	cx, cy := BulletCenter(pos)
	obj := NewHitBox(GetSpace(ecs), bullet, cx, cy, tags.ResolvBullet)
	components.Object.Set(bullet, &components.ObjectData{Object: obj})

	return bullet
}
