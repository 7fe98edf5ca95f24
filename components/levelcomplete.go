package components

import "github.com/yohamta/donburi"

// LevelCompleteData stores what the level complete overlay shows
type LevelCompleteData struct {
	Level       int
	Message     string
	SpriteIndex int
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
