package systems

import (
	"github.com/automoto/amor-galactico/components"
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/automoto/amor-galactico/systems/factory"
	"github.com/automoto/amor-galactico/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Mode transitions. Commands issued in a mode where they are not valid
// are ignored and report false.
//
//	menu          --start-->    playing
//	playing       --complete--> levelComplete
//	playing       --lives=0-->  gameOver
//	levelComplete --continue--> playing | win (at max level)
//	gameOver      --restart-->  playing
//	win           --back-->     menu

// StartRun begins a new run from the menu or after a game over
func StartRun(e *ecs.ECS) bool {
	game := GetGame(e)
	if game.Mode != cfg.ModeMenu && game.Mode != cfg.ModeGameOver {
		return false
	}
	resetSession(e)
	game.Mode = cfg.ModePlaying
	return true
}

// ContinueLevel advances past a completed level, or wins after the last one
func ContinueLevel(e *ecs.ECS) bool {
	game := GetGame(e)
	if game.Mode != cfg.ModeLevelComplete {
		return false
	}
	if game.Level >= cfg.Level.MaxLevel {
		game.Mode = cfg.ModeWin
		PlaySFX(e, cfg.SoundWin)
		return true
	}
	game.Level++
	ResetStage(e, game.Level)
	game.Mode = cfg.ModePlaying
	return true
}

// ReturnToMenu leaves a won run. Game over only exits through StartRun.
func ReturnToMenu(e *ecs.ECS) bool {
	game := GetGame(e)
	if game.Mode != cfg.ModeWin {
		return false
	}
	resetSession(e)
	game.Mode = cfg.ModeMenu
	return true
}

// resetSession is the menu entry action: score, lives and level back to
// their starting values and a clean stage for level 1
func resetSession(e *ecs.ECS) {
	game := GetGame(e)
	game.Score = 0
	game.Level = 1

	lives := GetLives(e)
	lives.Lives = cfg.Player.StartingLives
	lives.MaxLives = cfg.Player.StartingLives

	ResetStage(e, 1)
}

// ResetStage clears transient entities and prepares the spawner for level
func ResetStage(e *ecs.ECS, level int) {
	var toDestroy []*donburi.Entry
	for _, tag := range []*donburi.ComponentType[donburi.Tag]{tags.Bullet, tags.Enemy, tags.Particle} {
		tag.Each(e.World, func(entry *donburi.Entry) {
			toDestroy = append(toDestroy, entry)
		})
	}
	destroy(toDestroy)

	wave := GetWave(e)
	wave.EnemiesNeeded = cfg.EnemiesForLevel(level)
	wave.SpawnTimer = cfg.Level.InitialSpawnDelay

	*GetLevelComplete(e) = components.LevelCompleteData{}

	if entry, ok := components.Player.First(e.World); ok {
		player := components.Player.Get(entry)
		pos := components.Position.Get(entry)
		pos.X = cfg.Player.StartX
		pos.Y = cfg.Player.StartY
		player.ShootCooldown = 0
		cx, cy := factory.PlayerCenter(pos, player)
		factory.MoveHitBox(components.Object.Get(entry).Object, cx, cy)
	}
}

// LoseLife removes one life. The life that reaches zero ends the run;
// once the run has ended further losses are ignored.
func LoseLife(e *ecs.ECS) {
	game := GetGame(e)
	if game.Mode != cfg.ModePlaying {
		return
	}

	lives := GetLives(e)
	lives.Lives = max(0, lives.Lives-1)
	PlaySFX(e, cfg.SoundDamage)

	if lives.Lives == 0 {
		game.Mode = cfg.ModeGameOver
		PlaySFX(e, cfg.SoundGameOver)
	}
}

// UpdateLevelProgress completes the level once every enemy has spawned and
// none remain. It runs only while playing, so completion fires once.
func UpdateLevelProgress(e *ecs.ECS) {
	if GetWave(e).EnemiesNeeded != 0 || countEnemies(e) != 0 {
		return
	}

	game := GetGame(e)
	*GetLevelComplete(e) = components.LevelCompleteData{
		Level:       game.Level,
		Message:     cfg.Narrative.MessageForLevel(game.Level),
		SpriteIndex: cfg.Narrative.EnemySpriteIndex(game.Level),
	}
	game.Mode = cfg.ModeLevelComplete
	PlaySFX(e, cfg.SoundLevelUp)
}

// UpdateLifecycle maps Confirm and Back to the command valid in the current mode
func UpdateLifecycle(e *ecs.ECS) {
	input := getOrCreateInput(e)
	confirm := GetAction(input, cfg.ActionConfirm).JustPressed
	back := GetAction(input, cfg.ActionBack).JustPressed
	if !confirm && !back {
		return
	}

	var applied bool
	switch GetGame(e).Mode {
	case cfg.ModeMenu:
		applied = confirm && StartRun(e)
	case cfg.ModeLevelComplete:
		applied = confirm && ContinueLevel(e)
	case cfg.ModeGameOver:
		applied = confirm && StartRun(e)
	case cfg.ModeWin:
		applied = ReturnToMenu(e)
	}

	if applied {
		PlaySFX(e, cfg.SoundMenuSelect)
	}
}
