package systems

import (
	"strings"

	"github.com/automoto/amor-galactico/components"
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls keyboard, gamepads and touches, then writes the
// held directions and fire flag to the Controls boundary.
// Must run BEFORE the simulation systems.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	analogLeft, analogRight, analogGpID := getAnalogStickState(gamepadIDs)

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	if analogLeft {
		input.Current[cfg.ActionMoveLeft] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}
	if analogRight {
		input.Current[cfg.ActionMoveRight] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}

	touch := getOrCreateTouch(e)
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	touchUsed := pollTouchButtons(touch, touchIDs)

	// Update last input method - gamepad takes priority, then touch
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if touchUsed {
		input.LastInputMethod = components.InputTouch
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}

	ApplyControls(GetControls(e), input, touch)
}

// ApplyControls merges action and touch state into the simulation controls
func ApplyControls(controls *components.ControlsData, input *components.InputData, touch *components.TouchData) {
	controls.Left = input.Current[cfg.ActionMoveLeft] || touch.Held[components.TouchLeft]
	controls.Right = input.Current[cfg.ActionMoveRight] || touch.Held[components.TouchRight]
	controls.Fire = input.Current[cfg.ActionFire] || touch.Held[components.TouchFire]
}

// pollTouchButtons hit-tests every active touch against the on-screen buttons
func pollTouchButtons(touch *components.TouchData, ids []ebiten.TouchID) bool {
	touch.Held = [components.TouchButtonCount]bool{}
	for _, id := range ids {
		x, y := ebiten.TouchPosition(id)
		for b := range components.TouchButtonCount {
			if TouchButtonRect(b).Contains(float64(x), float64(y)) {
				touch.Held[b] = true
			}
		}
	}
	if len(ids) > 0 {
		touch.Active = true
		return true
	}
	return false
}

// Rect is an axis-aligned screen rectangle
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// TouchButtonRect returns the screen rectangle of an on-screen button.
// Left and right sit bottom-left, fire sits bottom-right.
func TouchButtonRect(b components.TouchButton) Rect {
	t := cfg.Touch
	h := float64(cfg.C.Height)
	w := float64(cfg.C.Width)
	switch b {
	case components.TouchLeft:
		return Rect{X: t.Margin, Y: h - t.Margin - t.ButtonSize, W: t.ButtonSize, H: t.ButtonSize}
	case components.TouchRight:
		return Rect{X: t.Margin + t.ButtonSize + t.Gap, Y: h - t.Margin - t.ButtonSize, W: t.ButtonSize, H: t.ButtonSize}
	default:
		return Rect{X: w - t.Margin - t.FireButtonSize, Y: h - t.Margin - t.FireButtonSize, W: t.FireButtonSize, H: t.FireButtonSize}
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStickState reads the left stick's horizontal axis from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			left = true
			activeGpID = gpID
		}
		if horizontal > deadzone {
			right = true
			activeGpID = gpID
		}
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

func getOrCreateTouch(e *ecs.ECS) *components.TouchData {
	entry, ok := components.Touch.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Touch))
	}
	return components.Touch.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
