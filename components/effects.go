package components

import "github.com/yohamta/donburi"

// ParticleData is a short-lived cosmetic heart
type ParticleData struct {
	VX, VY float64
	Life   int // frames remaining
	Size   float64
}

var Particle = donburi.NewComponentType[ParticleData]()

// StarData is a background star. Stars wrap instead of being destroyed.
type StarData struct {
	Speed float64
	Size  float64
}

var Star = donburi.NewComponentType[StarData]()
