package factory

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/amor-galactico/archetypes"
	"github.com/automoto/amor-galactico/components"
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/automoto/amor-galactico/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns one enemy above the top edge at a random X.
// Descent speed scales linearly with level.
func CreateEnemy(ecs *ecs.ECS, level int, rng *rand.Rand, seq uint64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	width := float64(cfg.C.Width)
	pos := &components.PositionData{
		X: cfg.Enemy.SpawnMarginLeft + rng.Float64()*(width-cfg.Enemy.SpawnMarginTotal),
		Y: cfg.Enemy.SpawnY,
	}
	enemyData := &components.EnemyData{
		VX:          0,
		VY:          cfg.EnemySpeedForLevel(level),
		Phase:       rng.Float64() * 2 * math.Pi,
		Size:        cfg.Enemy.Size,
		SpriteIndex: cfg.Narrative.EnemySpriteIndex(level),
		Seq:         seq,
	}
	components.Position.Set(enemy, pos)
	components.Enemy.Set(enemy, enemyData)

	cx, cy := EnemyCenter(pos, enemyData)
	obj := NewHitBox(GetSpace(ecs), enemy, cx, cy, tags.ResolvEnemy)
	components.Object.Set(enemy, &components.ObjectData{Object: obj})

	return enemy
}
