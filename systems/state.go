package systems

import (
	"github.com/automoto/amor-galactico/components"
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/automoto/amor-galactico/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// getOrCreateSession returns the singleton session entry, creating if needed
func getOrCreateSession(e *ecs.ECS) *donburi.Entry {
	entry, ok := components.Game.First(e.World)
	if !ok {
		entry = factory.CreateSession(e, uint64(cfg.Debug.Seed))
	}
	return entry
}

// GetGame returns the session mode, level and score
func GetGame(e *ecs.ECS) *components.GameData {
	return components.Game.Get(getOrCreateSession(e))
}

func GetLives(e *ecs.ECS) *components.LivesData {
	return components.Lives.Get(getOrCreateSession(e))
}

func GetWave(e *ecs.ECS) *components.WaveData {
	return components.Wave.Get(getOrCreateSession(e))
}

// GetControls returns the input boundary read by the simulation
func GetControls(e *ecs.ECS) *components.ControlsData {
	return components.Controls.Get(getOrCreateSession(e))
}

func GetLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	return components.LevelComplete.Get(getOrCreateSession(e))
}

func GetRandom(e *ecs.ECS) *components.RandomData {
	return components.Random.Get(getOrCreateSession(e))
}

// IsPlaying reports whether the simulation is active
func IsPlaying(e *ecs.ECS) bool {
	return GetGame(e).Mode == cfg.ModePlaying
}

// WithPlayingCheck wraps a system to skip execution unless the game is playing.
// The mode is checked per system, so a transition mid-step stops the rest of the step.
func WithPlayingCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsPlaying(e) {
			return
		}
		system(e)
	}
}

// destroy removes entries from the world and their hit boxes from the space
func destroy(entries []*donburi.Entry) {
	for _, entry := range entries {
		if !entry.Valid() {
			continue
		}
		if entry.HasComponent(components.Object) {
			obj := components.Object.Get(entry)
			if obj.Object != nil && obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		entry.Remove()
	}
}

// countEnemies returns the number of live enemies
func countEnemies(e *ecs.ECS) int {
	n := 0
	components.Enemy.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
