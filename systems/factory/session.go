package factory

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/amor-galactico/archetypes"
	"github.com/automoto/amor-galactico/components"
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession creates the singleton session entity in menu mode.
// A zero seed picks a time based one.
func CreateSession(ecs *ecs.ECS, seed uint64) *donburi.Entry {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	session := archetypes.Session.Spawn(ecs)
	components.Game.SetValue(session, components.GameData{
		Mode:  cfg.ModeMenu,
		Level: 1,
	})
	components.Lives.SetValue(session, components.LivesData{
		Lives:    cfg.Player.StartingLives,
		MaxLives: cfg.Player.StartingLives,
	})
	components.Wave.SetValue(session, components.WaveData{
		EnemiesNeeded: cfg.EnemiesForLevel(1),
		SpawnTimer:    cfg.Level.InitialSpawnDelay,
	})
	components.Random.SetValue(session, components.RandomData{
		Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	})
	return session
}
