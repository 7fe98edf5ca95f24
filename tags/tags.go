package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Bullet   = donburi.NewTag().SetName("Bullet")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Particle = donburi.NewTag().SetName("Particle")
	Star     = donburi.NewTag().SetName("Star")
)

// Resolv tags for hit boxes
const (
	ResolvPlayer = "Player"
	ResolvBullet = "Bullet"
	ResolvEnemy  = "Enemy"
)
