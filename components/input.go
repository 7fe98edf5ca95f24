package components

import (
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
	InputTouch
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()

// ControlsData is the only input state the simulation reads.
// Input systems write it; nothing else does.
type ControlsData struct {
	Left  bool
	Right bool
	Fire  bool
}

var Controls = donburi.NewComponentType[ControlsData]()

// TouchButton identifies an on-screen control
type TouchButton int

const (
	TouchLeft TouchButton = iota
	TouchRight
	TouchFire
	TouchButtonCount
)

// TouchData stores which on-screen buttons are held, for drawing
type TouchData struct {
	Held   [TouchButtonCount]bool
	Active bool // a touch has been seen this session
}

var Touch = donburi.NewComponentType[TouchData]()
