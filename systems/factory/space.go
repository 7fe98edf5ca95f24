package factory

import (
	"github.com/automoto/amor-galactico/archetypes"
	"github.com/automoto/amor-galactico/components"
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space. It extends past the playfield by
// cfg.Collision.SpaceMargin on every side so entities above the top edge or
// below the bottom edge still register.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	margin := int(cfg.Collision.SpaceMargin)
	width := cfg.C.Width + 2*margin
	height := cfg.C.Height + 2*margin
	cell := cfg.Collision.CellSize

	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, &components.SpaceData{Space: resolv.NewSpace(width, height, cell, cell)})
	return space
}

// GetSpace returns the collision space, or nil before CreateSpace ran
func GetSpace(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry).Space
}

// NewHitBox adds a square broadphase box centred on (cx, cy) to the space and links it to entry
func NewHitBox(space *resolv.Space, entry *donburi.Entry, cx, cy float64, tag string) *resolv.Object {
	size := cfg.Collision.BroadphaseSize
	m := cfg.Collision.SpaceMargin
	obj := resolv.NewObject(cx-size/2+m, cy-size/2+m, size, size, tag)
	obj.Data = entry
	if space != nil {
		space.Add(obj)
	}
	return obj
}

// MoveHitBox recentres a hit box on (cx, cy)
func MoveHitBox(obj *resolv.Object, cx, cy float64) {
	size := cfg.Collision.BroadphaseSize
	m := cfg.Collision.SpaceMargin
	obj.X = cx - size/2 + m
	obj.Y = cy - size/2 + m
	if obj.Space != nil {
		obj.Update()
	}
}

// PlayerCenter returns the player's hit centre
func PlayerCenter(pos *components.PositionData, player *components.PlayerData) (float64, float64) {
	return pos.X + player.Width/2, pos.Y + player.Height/2
}

// BulletCenter returns a bullet's hit centre
func BulletCenter(pos *components.PositionData) (float64, float64) {
	return pos.X + cfg.Bullet.HitOffsetX, pos.Y
}

// EnemyCenter returns an enemy's hit centre
func EnemyCenter(pos *components.PositionData, enemy *components.EnemyData) (float64, float64) {
	return pos.X + enemy.Size/2, pos.Y + enemy.Size/2
}
