package systems

import (
	"image"
	"image/color"

	"github.com/automoto/amor-galactico/assets"
	"github.com/automoto/amor-galactico/components"
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	sprites    *assets.Sprites
	background *ebiten.Image
	drawOp     = &ebiten.DrawImageOptions{}
)

// SetSprites sets the sprite source used by the renderers. nil draws hearts only.
func SetSprites(s *assets.Sprites) {
	sprites = s
}

// Sprites returns the sprite source set with SetSprites
func Sprites() *assets.Sprites {
	return sprites
}

// DrawBackground renders the vertical space gradient
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	if background == nil {
		background = ebiten.NewImageFromImage(gradientImage(cfg.C.Width, cfg.C.Height))
	}
	screen.DrawImage(background, nil)
}

// gradientImage interpolates top -> middle -> bottom
func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := cfg.Background
	for y := range h {
		t := float64(y) / float64(max(1, h-1))
		var c color.RGBA
		if t < 0.5 {
			c = lerpColor(bg.Top, bg.Middle, t*2)
		} else {
			c = lerpColor(bg.Middle, bg.Bottom, (t-0.5)*2)
		}
		for x := range w {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	l := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: l(a.A, b.A)}
}

// DrawStars renders the star field. Bigger stars are brighter.
func DrawStars(e *ecs.ECS, screen *ebiten.Image) {
	components.Star.Each(e.World, func(entry *donburi.Entry) {
		star := components.Star.Get(entry)
		pos := components.Position.Get(entry)
		alpha := min(1, star.Size/3)
		vector.DrawFilledRect(screen,
			float32(pos.X), float32(pos.Y),
			float32(star.Size), float32(star.Size),
			color.NRGBA{R: 255, G: 255, B: 255, A: uint8(alpha * 255)}, false)
	})
}

// DrawParticles renders particles fading out over their lifetime
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		pos := components.Position.Get(entry)
		alpha := float32(p.Life) / float32(cfg.Particle.Life)
		drawHeart(screen, pos.X, pos.Y, p.Size, cfg.Colors.Particle, alpha)
	})
}

// DrawPlayer renders the player sprite, or a pink heart until it has loaded
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	pos := components.Position.Get(entry)
	cx, cy := pos.X+player.Width/2, pos.Y+player.Height/2

	drawGlow(screen, cx, cy, player.Width*1.5, cfg.Colors.Glow)
	if img := sprites.Player(); img != nil {
		drawSprite(screen, img, pos.X, pos.Y, player.Width, player.Height)
		return
	}
	drawHeart(screen, cx, cy, cfg.Player.FallbackHeartSize, cfg.Colors.Player, 1)
}

// DrawBullets renders bullets as magenta hearts
func DrawBullets(e *ecs.ECS, screen *ebiten.Image) {
	components.Bullet.Each(e.World, func(entry *donburi.Entry) {
		bullet := components.Bullet.Get(entry)
		pos := components.Position.Get(entry)
		drawHeart(screen, pos.X, pos.Y, bullet.Size, cfg.Colors.Bullet, 1)
	})
}

// DrawEnemies renders enemy sprites by index, or crimson hearts until loaded
func DrawEnemies(e *ecs.ECS, screen *ebiten.Image) {
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		pos := components.Position.Get(entry)
		cx, cy := pos.X+enemy.Size/2, pos.Y+enemy.Size/2

		drawGlow(screen, cx, cy, enemy.Size*1.3, cfg.Colors.Outline)
		if img := sprites.Enemy(enemy.SpriteIndex); img != nil {
			drawSprite(screen, img, pos.X, pos.Y, enemy.Size, enemy.Size)
			return
		}
		drawHeart(screen, cx, cy, enemy.Size*cfg.Enemy.FallbackScale, cfg.Colors.Enemy, 1)
	})
}

// drawHeart draws a heart of the given width anchored at (x, y)
func drawHeart(screen *ebiten.Image, x, y, size float64, fill color.Color, alpha float32) {
	k := size / assets.HeartWidth
	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(-assets.HeartOrigin.X, -assets.HeartOrigin.Y)
	drawOp.GeoM.Scale(k, k)
	drawOp.GeoM.Translate(x, y)
	drawOp.Filter = ebiten.FilterLinear

	drawOp.ColorScale.Reset()
	drawOp.ColorScale.ScaleWithColor(fill)
	drawOp.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(assets.HeartFill(), drawOp)

	drawOp.ColorScale.Reset()
	drawOp.ColorScale.ScaleWithColor(cfg.Colors.Outline)
	drawOp.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(assets.HeartOutline(), drawOp)
}

// drawGlow draws a faint heart halo behind an entity
func drawGlow(screen *ebiten.Image, cx, cy, size float64, clr color.Color) {
	k := size / assets.HeartWidth
	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(-assets.HeartOrigin.X, -assets.HeartOrigin.Y)
	drawOp.GeoM.Scale(k, k)
	drawOp.GeoM.Translate(cx, cy-size*0.15)
	drawOp.Filter = ebiten.FilterLinear
	drawOp.ColorScale.Reset()
	drawOp.ColorScale.ScaleWithColor(clr)
	drawOp.ColorScale.ScaleAlpha(0.2)
	screen.DrawImage(assets.HeartFill(), drawOp)
}

// drawSprite draws img stretched to the w x h box at (x, y)
func drawSprite(screen, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	drawOp.GeoM.Reset()
	drawOp.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	drawOp.GeoM.Translate(x, y)
	drawOp.Filter = ebiten.FilterLinear
	drawOp.ColorScale.Reset()
	screen.DrawImage(img, drawOp)
}
