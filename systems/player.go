package systems

import (
	"github.com/automoto/amor-galactico/components"
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/automoto/amor-galactico/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies the held directions. Left is applied before right,
// each clamped to [0, width - player width].
func UpdatePlayer(e *ecs.ECS) {
	entry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	pos := components.Position.Get(entry)
	controls := GetControls(e)

	maxX := float64(cfg.C.Width) - player.Width
	if controls.Left {
		pos.X = max(0, pos.X-player.Speed)
	}
	if controls.Right {
		pos.X = min(maxX, pos.X+player.Speed)
	}

	cx, cy := factory.PlayerCenter(pos, player)
	factory.MoveHitBox(components.Object.Get(entry).Object, cx, cy)
}

// UpdateShooting counts the shot cooldown down and fires when it reaches zero
func UpdateShooting(e *ecs.ECS) {
	entry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)

	if player.ShootCooldown > 0 {
		player.ShootCooldown--
	}
	if !GetControls(e).Fire || player.ShootCooldown != 0 {
		return
	}

	wave := GetWave(e)
	wave.NextSeq++
	factory.CreateBullet(e, components.Position.Get(entry), player, wave.NextSeq)
	player.ShootCooldown = cfg.Player.ShootCooldown
	PlaySFX(e, cfg.SoundShoot)
}
