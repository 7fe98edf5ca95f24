package components

import (
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// OverlayData tracks the overlay panel fade and the title pulse
type OverlayData struct {
	Shown cfg.GameMode // mode the overlay was last built for
	Fade  *gween.Tween
	Alpha float32

	Pulse   *gween.Tween
	Growing bool
	Scale   float32
}

var Overlay = donburi.NewComponentType[OverlayData]()
