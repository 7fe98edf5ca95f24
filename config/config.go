package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed float64

	// Spawn
	StartX float64
	StartY float64

	// Dimensions
	Width  float64
	Height float64

	// Shooting
	ShootCooldown int // frames between shots

	// Lives
	StartingLives int

	// Visual
	FallbackHeartSize float64
}

// BulletConfig contains projectile configuration
type BulletConfig struct {
	SpeedY     float64
	Size       float64
	OffsetX    float64 // spawn offset from the player's horizontal centre
	HitOffsetX float64 // hit centre offset from the bullet's X
	TopMargin  float64 // removed once Y drops below -TopMargin
}

// EnemyConfig contains enemy and spawner configuration
type EnemyConfig struct {
	Size float64

	// Spawn position
	SpawnMarginLeft  float64 // minimum X
	SpawnMarginTotal float64 // X range is Width - SpawnMarginTotal
	SpawnY           float64

	// Difficulty scaling
	BaseSpeed     float64
	SpeedPerLevel float64

	// Sine wiggle
	PhaseStep    float64 // radians per frame
	WiggleFactor float64 // pixels per frame at peak

	// Visual
	FallbackScale float64
}

// ParticleConfig contains particle burst configuration
type ParticleConfig struct {
	Life         int
	MaxSpeed     float64 // velocity per axis is in [-MaxSpeed/2, MaxSpeed/2)
	MinSize      float64
	SizeVariance float64

	EnemyBurst  int
	PlayerBurst int
}

// StarConfig contains background star field configuration
type StarConfig struct {
	Count         int
	MinSpeed      float64
	SpeedVariance float64
	MinSize       float64
	SizeVariance  float64
}

// LevelConfig contains level progression configuration
type LevelConfig struct {
	MaxLevel int

	// EnemiesNeeded = BaseEnemies + level*EnemiesPerLevel
	BaseEnemies     int
	EnemiesPerLevel int

	// SpawnInterval = max(MinSpawnInterval, BaseSpawnInterval - level*SpawnIntervalStep)
	BaseSpawnInterval int
	SpawnIntervalStep int
	MinSpawnInterval  int

	InitialSpawnDelay int
	PointsPerEnemy    int
}

// CollisionConfig contains hit detection configuration
type CollisionConfig struct {
	HitDistance float64 // centres closer than this collide

	// Side of the square broadphase box. resolv registers a box in cells up
	// to X+W-1, so it must exceed HitDistance+1 for every pair closer than
	// HitDistance to share a cell.
	BroadphaseSize float64

	// The broadphase space extends past the playfield by this margin on every side
	SpaceMargin float64
	CellSize    int
}

// BackgroundConfig contains background gradient colors
type BackgroundConfig struct {
	Top    color.RGBA
	Middle color.RGBA
	Bottom color.RGBA
}

// EntityColorConfig contains colors for the procedural heart shapes
type EntityColorConfig struct {
	Player   color.RGBA
	Bullet   color.RGBA
	Enemy    color.RGBA
	Particle color.RGBA
	Glow     color.RGBA
	Outline  color.RGBA
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin      float64
	PanelWidth  float64
	PanelHeight float64
	PanelColor  color.RGBA
	LevelColor  color.RGBA
	ScoreColor  color.RGBA
	HeartSize   float64
	HeartGap    float64
	ScoreDigits int

	LostLifeAlpha float32 // empty life slots
}

// OverlayConfig contains overlay screen configuration values
type OverlayConfig struct {
	MenuBackground          color.RGBA
	LevelCompleteBackground color.RGBA
	WinBackground           color.RGBA
	GameOverBackground      color.RGBA

	TitleColor    color.RGBA
	WinTitleColor color.RGBA
	LoseColor     color.RGBA
	TextColor     color.RGBA

	ButtonIdle    color.RGBA
	ButtonHover   color.RGBA
	ButtonPressed color.RGBA

	CardImageSize float64
	TextMaxWidth  int
	FadeSeconds   float32
	FadeStartFrom float32

	PulseScale   float32
	PulseSeconds float32
}

// TouchConfig contains the on-screen touch control layout
type TouchConfig struct {
	ButtonSize     float64
	FireButtonSize float64
	Margin         float64
	Gap            float64
	IdleColor      color.RGBA
	ActiveColor    color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Bullet BulletConfig
var Enemy EnemyConfig
var Particle ParticleConfig
var Star StarConfig
var Level LevelConfig
var Collision CollisionConfig
var Background BackgroundConfig
var Colors EntityColorConfig
var HUD HUDConfig
var Overlay OverlayConfig
var Touch TouchConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool  // Start a run immediately
	Seed     int64 // 0 = time-based

	ShowHitBoxes bool
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Pink         = color.RGBA{R: 255, G: 105, B: 180, A: 255}
	LightPink    = color.RGBA{R: 255, G: 182, B: 193, A: 255}
	DeepPink     = color.RGBA{R: 255, G: 20, B: 147, A: 255}
	HotPink      = color.RGBA{R: 236, G: 72, B: 153, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Crimson      = color.RGBA{R: 220, G: 20, B: 60, A: 255}
	Rose         = color.RGBA{R: 244, G: 63, B: 94, A: 255}
	Gold         = color.RGBA{R: 250, G: 204, B: 21, A: 255}
	PaleRose     = color.RGBA{R: 253, G: 242, B: 248, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 242}
)

func init() {
	C = &Config{
		Width:  400,
		Height: 700,
		TPS:    60,
	}

	Player = PlayerConfig{
		Speed:             8,
		StartX:            175,
		StartY:            600,
		Width:             50,
		Height:            50,
		ShootCooldown:     12,
		StartingLives:     3,
		FallbackHeartSize: 45,
	}

	Bullet = BulletConfig{
		SpeedY:     -15,
		Size:       22,
		OffsetX:    -10,
		HitOffsetX: 11,
		TopMargin:  50,
	}

	Enemy = EnemyConfig{
		Size:             55,
		SpawnMarginLeft:  30,
		SpawnMarginTotal: 80,
		SpawnY:           -60,
		BaseSpeed:        1.2,
		SpeedPerLevel:    0.4,
		PhaseStep:        0.08,
		WiggleFactor:     1.5,
		FallbackScale:    0.9,
	}

	Particle = ParticleConfig{
		Life:         35,
		MaxSpeed:     10,
		MinSize:      8,
		SizeVariance: 8,
		EnemyBurst:   12,
		PlayerBurst:  25,
	}

	Star = StarConfig{
		Count:         80,
		MinSpeed:      0.5,
		SpeedVariance: 2,
		MinSize:       1,
		SizeVariance:  2,
	}

	Level = LevelConfig{
		MaxLevel:          4,
		BaseEnemies:       8,
		EnemiesPerLevel:   2,
		BaseSpawnInterval: 50,
		SpawnIntervalStep: 5,
		MinSpawnInterval:  20,
		InitialSpawnDelay: 30,
		PointsPerEnemy:    100,
	}

	Collision = CollisionConfig{
		HitDistance:    40,
		BroadphaseSize: 42,
		SpaceMargin:    128,
		CellSize:       32,
	}

	Background = BackgroundConfig{
		Top:    color.RGBA{R: 2, G: 0, B: 36, A: 255},
		Middle: color.RGBA{R: 45, G: 0, B: 77, A: 255},
		Bottom: Black,
	}

	Colors = EntityColorConfig{
		Player:   LightPink,
		Bullet:   Magenta,
		Enemy:    Crimson,
		Particle: DeepPink,
		Glow:     Pink,
		Outline:  DeepPink,
	}

	HUD = HUDConfig{
		Margin:      16,
		PanelWidth:  96,
		PanelHeight: 52,
		PanelColor:  color.RGBA{R: 0, G: 0, B: 0, A: 102},
		LevelColor:  color.RGBA{R: 244, G: 114, B: 182, A: 255},
		ScoreColor:  PaleRose,
		HeartSize:   22,
		HeartGap:    6,
		ScoreDigits: 5,

		LostLifeAlpha: 0.25,
	}

	Overlay = OverlayConfig{
		MenuBackground:          BlackOverlay,
		LevelCompleteBackground: color.RGBA{R: 26, G: 0, B: 41, A: 255},
		WinBackground:           Black,
		GameOverBackground:      BlackOverlay,

		TitleColor:    HotPink,
		WinTitleColor: Gold,
		LoseColor:     Rose,
		TextColor:     PaleRose,

		ButtonIdle:    color.RGBA{R: 219, G: 39, B: 119, A: 255},
		ButtonHover:   HotPink,
		ButtonPressed: color.RGBA{R: 157, G: 23, B: 77, A: 255},

		CardImageSize: 120,
		TextMaxWidth:  320,
		FadeSeconds:   0.4,
		FadeStartFrom: 0,
		PulseScale:    1.06,
		PulseSeconds:  0.9,
	}

	Touch = TouchConfig{
		ButtonSize:     64,
		FireButtonSize: 80,
		Margin:         20,
		Gap:            14,
		IdleColor:      color.RGBA{R: 255, G: 255, B: 255, A: 20},
		ActiveColor:    color.RGBA{R: 236, G: 72, B: 153, A: 100},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:     false,
		Seed:         0,
		ShowHitBoxes: false,
	}
}

// EnemiesForLevel returns the number of enemies a level spawns
func EnemiesForLevel(level int) int {
	return Level.BaseEnemies + level*Level.EnemiesPerLevel
}

// SpawnIntervalForLevel returns the frames between spawns for a level
func SpawnIntervalForLevel(level int) int {
	return max(Level.MinSpawnInterval, Level.BaseSpawnInterval-level*Level.SpawnIntervalStep)
}

// EnemySpeedForLevel returns the descent speed of enemies spawned on a level
func EnemySpeedForLevel(level int) float64 {
	return Enemy.BaseSpeed + float64(level)*Enemy.SpeedPerLevel
}
