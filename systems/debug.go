package systems

import (
	"image/color"

	cfg "github.com/automoto/amor-galactico/config"
	"github.com/automoto/amor-galactico/systems/factory"
	"github.com/automoto/amor-galactico/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every hit box in the collision space (toggle with F3)
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(e).ShowHitBoxes {
		return
	}
	space := factory.GetSpace(e)
	if space == nil {
		return
	}

	m := cfg.Collision.SpaceMargin
	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = color.RGBA{255, 0, 0, 255} // Red
		} else if obj.HasTags(tags.ResolvBullet) {
			c = color.RGBA{0, 255, 0, 255} // Green
		}

		// Hit boxes live in space coordinates, offset by the margin
		x, y := obj.X-m, obj.Y-m
		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}
