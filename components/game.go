package components

import (
	"math/rand/v2"

	cfg "github.com/automoto/amor-galactico/config"
	"github.com/yohamta/donburi"
)

// GameData is the session state shared by every system
type GameData struct {
	Mode  cfg.GameMode
	Level int // 1..cfg.Level.MaxLevel
	Score int
}

var Game = donburi.NewComponentType[GameData]()

// WaveData tracks the spawner for the current level
type WaveData struct {
	EnemiesNeeded int // enemies still to spawn
	SpawnTimer    int // frames until the next spawn
	NextSeq       uint64
}

var Wave = donburi.NewComponentType[WaveData]()

// RandomData holds the session random source
type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()
