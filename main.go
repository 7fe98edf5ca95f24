package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/automoto/amor-galactico/assets"
	"github.com/automoto/amor-galactico/config"
	"github.com/automoto/amor-galactico/fonts"
	"github.com/automoto/amor-galactico/scenes"
	"github.com/automoto/amor-galactico/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	fonts.LoadDefaults()

	return &Game{
		scene: scenes.NewGameScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	assetDir := flag.String("assets", "assets/images", "Directory with the player and enemy sprites")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	skipMenu := flag.Bool("skipmenu", false, "Start a run immediately")
	scale := flag.Float64("scale", config.Window.DefaultScale, "Window scale")
	hitBoxes := flag.Bool("hitboxes", false, "Outline collision boxes (F3 toggles)")
	flag.Parse()

	config.Debug.Seed = *seed
	config.Debug.SkipMenu = *skipMenu
	config.Debug.ShowHitBoxes = *hitBoxes

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved := systems.LoadSettings(); saved != nil {
		ebiten.SetFullscreen(saved.Fullscreen)
	}

	fsys := os.DirFS(*assetDir)
	systems.InitAudio(fsys)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	n := config.Narrative
	sprites := assets.NewSprites(fsys, n.Sprites.Player, n.Sprites.Enemies)
	sprites.LoadAsync(ctx)
	systems.SetSprites(sprites)

	s := min(max(*scale, config.Window.MinScale), config.Window.MaxScale)
	ebiten.SetWindowSize(int(float64(config.C.Width)*s), int(float64(config.C.Height)*s))
	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
