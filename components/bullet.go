package components

import "github.com/yohamta/donburi"

type BulletData struct {
	VY   float64
	Size float64
	Seq  uint64 // creation order, used to resolve hits deterministically
}

var Bullet = donburi.NewComponentType[BulletData]()
