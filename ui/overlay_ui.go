package ui

import (
	"image/color"

	"github.com/automoto/amor-galactico/assets"
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/automoto/amor-galactico/fonts"
	"github.com/automoto/amor-galactico/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

// OverlayUI holds the ebitenui screens shown outside of play.
// The screen is rebuilt whenever the mode changes.
type OverlayUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	mode      cfg.GameMode
	built     bool
	cardReady bool

	title      string
	titleColor color.Color
	titleY     float64

	canvas *ebiten.Image

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	buttonFace text.Face
}

// NewOverlayUI creates the overlay for the session in e
func NewOverlayUI(e *ecs.ECS) *OverlayUI {
	o := &OverlayUI{ecs: e}
	o.titleFace = fonts.UIFace(28, true)
	o.normalFace = fonts.UIFace(16, false)
	o.buttonFace = fonts.UIFace(18, true)
	return o
}

// Update rebuilds the screen on a mode change and forwards input to ebitenui
func (o *OverlayUI) Update() {
	mode := systems.GetGame(o.ecs).Mode
	if mode == cfg.ModePlaying {
		o.built = false
		return
	}
	if !o.built || mode != o.mode || o.cardReady != o.levelSpriteReady() {
		o.build(mode)
	}
	o.UI.Update()
}

// Draw renders the current screen faded in by the overlay alpha
func (o *OverlayUI) Draw(screen *ebiten.Image) {
	if !o.built || systems.GetGame(o.ecs).Mode == cfg.ModePlaying {
		return
	}
	if o.canvas == nil {
		o.canvas = ebiten.NewImage(cfg.C.Width, cfg.C.Height)
	}
	o.canvas.Clear()
	o.UI.Draw(o.canvas)

	overlay := systems.GetOrCreateOverlay(o.ecs)
	o.drawTitle(o.canvas, overlay.Scale)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(overlay.Alpha)
	screen.DrawImage(o.canvas, op)
}

// drawTitle draws the pulsing title centred at titleY, shrunk to fit the text width
func (o *OverlayUI) drawTitle(dst *ebiten.Image, pulse float32) {
	if o.title == "" {
		return
	}
	w, h := text.Measure(o.title, o.titleFace, 0)
	fit := min(1, float64(cfg.Overlay.TextMaxWidth)/w)
	s := fit * float64(pulse)

	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(float64(cfg.C.Width)/2, o.titleY)
	op.ColorScale.ScaleWithColor(o.titleColor)
	text.Draw(dst, o.title, o.titleFace, op)
}

func (o *OverlayUI) build(mode cfg.GameMode) {
	n := cfg.Narrative
	p := cfg.Overlay

	var root *widget.Container
	switch mode {
	case cfg.ModeMenu:
		o.title, o.titleColor, o.titleY = n.Title, p.TitleColor, 230
		root = o.screen(p.MenuBackground,
			o.body(n.Menu.Text),
			o.button(n.Menu.Button, func() { systems.StartRun(o.ecs) }),
		)
	case cfg.ModeLevelComplete:
		lc := systems.GetLevelComplete(o.ecs)
		o.title, o.titleColor, o.titleY = n.LevelComplete.Title, p.TitleColor, 150
		root = o.screen(p.LevelCompleteBackground,
			o.card(lc.SpriteIndex),
			o.body(lc.Message),
			o.button(n.LevelComplete.Button, func() { systems.ContinueLevel(o.ecs) }),
		)
	case cfg.ModeWin:
		o.title, o.titleColor, o.titleY = n.Win.Title, p.WinTitleColor, 220
		root = o.screen(p.WinBackground,
			o.body(n.Win.Text),
			o.button(n.Win.Button, func() { systems.ReturnToMenu(o.ecs) }),
		)
	default:
		o.title, o.titleColor, o.titleY = n.GameOver.Title, p.LoseColor, 220
		root = o.screen(p.GameOverBackground,
			o.body(n.GameOver.Text),
			o.button(n.GameOver.Button, func() { systems.StartRun(o.ecs) }),
		)
	}

	o.UI = &ebitenui.UI{Container: root}
	o.mode = mode
	o.built = true
	o.cardReady = o.levelSpriteReady()
}

// screen wraps children in a full-screen background with a centred column
func (o *OverlayUI) screen(bg color.Color, children ...widget.PreferredSizeLocateableWidget) *widget.Container {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(bg)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 80, Left: 16, Right: 16}),
			widget.RowLayoutOpts.Spacing(18),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	for _, c := range children {
		if c != nil {
			column.AddChild(c)
		}
	}
	root.AddChild(column)
	return root
}

func (o *OverlayUI) body(s string) widget.PreferredSizeLocateableWidget {
	if s == "" {
		return nil
	}
	return widget.NewText(
		widget.TextOpts.Text(s, &o.normalFace, cfg.Overlay.TextColor),
		widget.TextOpts.MaxWidth(float64(cfg.Overlay.TextMaxWidth)),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(centered()),
	)
}

func (o *OverlayUI) button(label string, onClick func()) widget.PreferredSizeLocateableWidget {
	if label == "" {
		return nil
	}
	p := cfg.Overlay
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 48),
			centered(),
		),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(p.ButtonIdle),
			Hover:   image.NewNineSliceColor(p.ButtonHover),
			Pressed: image.NewNineSliceColor(p.ButtonPressed),
		}),
		widget.ButtonOpts.Text(label, &o.buttonFace, &widget.ButtonTextColor{
			Idle:    cfg.White,
			Hover:   cfg.White,
			Pressed: cfg.PaleRose,
		}),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(10)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.PlaySFX(o.ecs, cfg.SoundMenuSelect)
			onClick()
		}),
	)
}

// card shows the level's enemy sprite, or a heart until it has loaded
func (o *OverlayUI) card(spriteIndex int) widget.PreferredSizeLocateableWidget {
	size := int(cfg.Overlay.CardImageSize)
	img := ebiten.NewImage(size, size)

	if src := systems.Sprites().Enemy(spriteIndex); src != nil {
		b := src.Bounds()
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		op.GeoM.Scale(float64(size)/float64(b.Dx()), float64(size)/float64(b.Dy()))
		img.DrawImage(src, op)
	} else {
		k := float64(size) * 0.8 / assets.HeartWidth
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		op.GeoM.Translate(-assets.HeartOrigin.X, -assets.HeartOrigin.Y)
		op.GeoM.Scale(k, k)
		op.GeoM.Translate(float64(size)/2, float64(size)*0.3)
		op.ColorScale.ScaleWithColor(cfg.Colors.Enemy)
		img.DrawImage(assets.HeartFill(), op)
	}

	return widget.NewGraphic(
		widget.GraphicOpts.Image(img),
		widget.GraphicOpts.WidgetOpts(centered()),
	)
}

func (o *OverlayUI) levelSpriteReady() bool {
	if systems.GetGame(o.ecs).Mode != cfg.ModeLevelComplete {
		return false
	}
	return systems.Sprites().EnemyReady(systems.GetLevelComplete(o.ecs).SpriteIndex)
}

func centered() widget.WidgetOpt {
	return widget.WidgetOpts.LayoutData(widget.RowLayoutData{
		Position: widget.RowLayoutPositionCenter,
	})
}
