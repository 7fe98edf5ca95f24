package systems

import (
	"fmt"

	"github.com/automoto/amor-galactico/components"
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/automoto/amor-galactico/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the level and score panel top-left and the life slots top-right
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	game := GetGame(e)
	hud := cfg.HUD

	vector.DrawFilledRect(screen,
		float32(hud.Margin), float32(hud.Margin),
		float32(hud.PanelWidth), float32(hud.PanelHeight),
		hud.PanelColor, false)

	label := fonts.HUDLabel.Get()
	text.Draw(screen, fmt.Sprintf("NIVEL %d", game.Level), label,
		int(hud.Margin+10), int(hud.Margin+18), hud.LevelColor)

	score := fonts.HUDScore.Get()
	text.Draw(screen, FormatScore(game.Score), score,
		int(hud.Margin+10), int(hud.Margin+42), hud.ScoreColor)

	drawLives(e, screen)
}

func drawLives(e *ecs.ECS, screen *ebiten.Image) {
	lives := GetLives(e)
	hud := cfg.HUD
	step := hud.HeartSize + hud.HeartGap
	right := float64(cfg.C.Width) - hud.Margin - hud.HeartSize/2
	y := hud.Margin + hud.HeartSize/2 + 4

	for i, full := range LifeSlots(lives) {
		x := right - float64(i)*step
		if !full {
			drawHeart(screen, x, y, hud.HeartSize, cfg.Crimson, hud.LostLifeAlpha)
			continue
		}
		drawGlow(screen, x, y, hud.HeartSize*1.4, cfg.Crimson)
		drawHeart(screen, x, y, hud.HeartSize, cfg.Crimson, 1)
	}
}

// LifeSlots returns one slot per possible life, right to left; the
// remaining lives fill the rightmost slots
func LifeSlots(lives *components.LivesData) []bool {
	slots := make([]bool, max(lives.MaxLives, lives.Lives))
	for i := range lives.Lives {
		slots[i] = true
	}
	return slots
}

// FormatScore zero-pads the score to the HUD width
func FormatScore(score int) string {
	return fmt.Sprintf("%0*d", cfg.HUD.ScoreDigits, score)
}

// DrawTouchControls renders the on-screen buttons once a touch has been seen
func DrawTouchControls(e *ecs.ECS, screen *ebiten.Image) {
	touch := getOrCreateTouch(e)
	if !touch.Active || !IsPlaying(e) {
		return
	}

	glyphs := [components.TouchButtonCount]string{"<", ">", ""}
	face := fonts.Button.Get()
	for b := range components.TouchButtonCount {
		r := TouchButtonRect(b)
		clr := cfg.Touch.IdleColor
		if touch.Held[b] {
			clr = cfg.Touch.ActiveColor
		}
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, true)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, cfg.Touch.IdleColor, true)

		if b == components.TouchFire {
			drawHeart(screen, r.X+r.W/2, r.Y+r.H/2-4, r.W*0.5, cfg.HotPink, 1)
			continue
		}
		bounds := text.BoundString(face, glyphs[b])
		text.Draw(screen, glyphs[b], face,
			int(r.X+(r.W-float64(bounds.Dx()))/2), int(r.Y+(r.H+float64(bounds.Dy()))/2), cfg.White)
	}
}
