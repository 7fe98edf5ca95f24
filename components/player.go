package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	Speed         float64
	Width         float64
	Height        float64
	ShootCooldown int // frames until the next shot is allowed
}

var Player = donburi.NewComponentType[PlayerData]()
