package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/amor-galactico/config"
	"github.com/automoto/amor-galactico/systems"
	"github.com/automoto/amor-galactico/systems/factory"
	"github.com/automoto/amor-galactico/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene runs the whole game: one world whose mode drives which
// systems are active and which overlay is shown
type GameScene struct {
	ecs     *ecs.ECS
	overlay *ui.OverlayUI
	once    sync.Once
}

// NewGameScene creates the game scene. The world is built on the first Update.
func NewGameScene() *GameScene {
	return &GameScene{}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
	gs.overlay.Update()
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
	gs.overlay.Draw(screen)
}

func (gs *GameScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, plays the sounds queued last frame)
	e.AddSystem(systems.UpdateAudio)

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateLifecycle)

	// Simulation, gated per system so a mid-step transition stops the rest
	for _, system := range systems.Simulation {
		e.AddSystem(systems.WithPlayingCheck(system))
	}

	e.AddSystem(systems.UpdateOverlayFade)

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawStars)
	e.AddRenderer(cfg.Default, systems.DrawParticles)
	e.AddRenderer(cfg.Default, systems.DrawBullets)
	e.AddRenderer(cfg.Default, systems.DrawEnemies)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawTouchControls)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	gs.ecs = e

	// The space must exist before anything with a hit box
	factory.CreateSpace(e)
	factory.CreateSession(e, uint64(cfg.Debug.Seed))
	factory.CreatePlayer(e)
	factory.CreateStars(e, systems.GetRandom(e).Rand)
	systems.GetOrCreateSettings(e)
	systems.GetOrCreateOverlay(e)

	if cfg.Debug.SkipMenu {
		systems.StartRun(e)
	}

	gs.overlay = ui.NewOverlayUI(e)
}
