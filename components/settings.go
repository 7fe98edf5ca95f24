package components

import "github.com/yohamta/donburi"

// SettingsData holds the persisted user settings
type SettingsData struct {
	Muted      bool
	Fullscreen bool
	Dirty      bool // changed since last successful save
	SaveRetry  int  // frames until a failed save is tried again

	ShowHitBoxes bool // debug overlay, never saved
}

var Settings = donburi.NewComponentType[SettingsData]()
