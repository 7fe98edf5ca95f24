package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	VX          float64
	VY          float64
	Phase       float64 // sine wiggle phase in radians
	Size        float64
	SpriteIndex int
	Seq         uint64
}

var Enemy = donburi.NewComponentType[EnemyData]()
