package systems

import (
	"github.com/automoto/amor-galactico/components"
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateOverlay returns the overlay singleton. A new overlay starts
// faded in for the current mode.
func GetOrCreateOverlay(e *ecs.ECS) *components.OverlayData {
	entry, ok := components.Overlay.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Overlay))
		components.Overlay.SetValue(entry, components.OverlayData{
			Shown:   GetGame(e).Mode,
			Alpha:   1,
			Pulse:   newTitlePulse(true),
			Growing: true,
			Scale:   1,
		})
	}
	return components.Overlay.Get(entry)
}

// newTitlePulse returns one half of the title breathing cycle
func newTitlePulse(grow bool) *gween.Tween {
	p := cfg.Overlay
	if grow {
		return gween.New(1, p.PulseScale, p.PulseSeconds, ease.InOutSine)
	}
	return gween.New(p.PulseScale, 1, p.PulseSeconds, ease.InOutSine)
}

// UpdateOverlayFade restarts the fade whenever the mode changes and
// advances the fade and the title pulse by one tick.
func UpdateOverlayFade(e *ecs.ECS) {
	overlay := GetOrCreateOverlay(e)
	mode := GetGame(e).Mode
	dt := 1 / float32(cfg.C.TPS)

	if overlay.Shown != mode {
		overlay.Shown = mode
		overlay.Fade = gween.New(cfg.Overlay.FadeStartFrom, 1, cfg.Overlay.FadeSeconds, ease.OutQuad)
		overlay.Alpha = cfg.Overlay.FadeStartFrom
	}

	if overlay.Fade != nil {
		alpha, done := overlay.Fade.Update(dt)
		overlay.Alpha = alpha
		if done {
			overlay.Fade = nil
			overlay.Alpha = 1
		}
	}

	if mode != cfg.ModePlaying && overlay.Pulse != nil {
		scale, done := overlay.Pulse.Update(dt)
		overlay.Scale = scale
		if done {
			overlay.Growing = !overlay.Growing
			overlay.Pulse = newTitlePulse(overlay.Growing)
		}
	}
}
