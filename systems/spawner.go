package systems

import (
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/automoto/amor-galactico/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner releases the level's enemies one at a time.
// The interval shrinks with level down to cfg.Level.MinSpawnInterval.
func UpdateSpawner(e *ecs.ECS) {
	wave := GetWave(e)
	if wave.EnemiesNeeded <= 0 {
		return
	}

	wave.SpawnTimer--
	if wave.SpawnTimer > 0 {
		return
	}

	level := GetGame(e).Level
	wave.NextSeq++
	factory.CreateEnemy(e, level, GetRandom(e).Rand, wave.NextSeq)
	wave.EnemiesNeeded--
	wave.SpawnTimer = cfg.SpawnIntervalForLevel(level)
}
