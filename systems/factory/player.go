package factory

import (
	"github.com/automoto/amor-galactico/archetypes"
	"github.com/automoto/amor-galactico/components"
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/automoto/amor-galactico/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	playerData := &components.PlayerData{
		Speed:  cfg.Player.Speed,
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
	}
	pos := &components.PositionData{X: cfg.Player.StartX, Y: cfg.Player.StartY}
	components.Player.Set(player, playerData)
	components.Position.Set(player, pos)

	cx, cy := PlayerCenter(pos, playerData)
	obj := NewHitBox(GetSpace(ecs), player, cx, cy, tags.ResolvPlayer)
	components.Object.Set(player, &components.ObjectData{Object: obj})

	return player
}
