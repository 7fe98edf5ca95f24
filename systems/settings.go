package systems

import (
	"github.com/automoto/amor-galactico/components"
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, loading
// persisted values the first time
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		settings := components.Settings.Get(entry)
		settings.ShowHitBoxes = cfg.Debug.ShowHitBoxes
		if saved := LoadSettings(); saved != nil {
			settings.Muted = saved.Muted
			settings.Fullscreen = saved.Fullscreen
		}
	}
	return components.Settings.Get(entry)
}

// UpdateSettings handles the mute and fullscreen toggles in every mode
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionMute).JustPressed {
		settings.Muted = !settings.Muted
		settings.Dirty = true
	}
	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		settings.Dirty = true
		ebiten.SetFullscreen(settings.Fullscreen)
	}

	if GetAction(input, cfg.ActionDebug).JustPressed {
		settings.ShowHitBoxes = !settings.ShowHitBoxes
	}

	if !settings.Dirty {
		return
	}
	if settings.SaveRetry > 0 {
		settings.SaveRetry--
		return
	}
	if err := SaveSettings(settings); err != nil {
		settings.SaveRetry = cfg.Persistence.RetryFrames
		return
	}
	settings.Dirty = false
}
