package systems

import (
	"math"
	"testing"

	"github.com/automoto/amor-galactico/components"
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/automoto/amor-galactico/systems/factory"
	"github.com/automoto/amor-galactico/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld builds a seeded world with a space, a session and the player
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e)
	factory.CreateSession(e, 42)
	factory.CreatePlayer(e)
	return e
}

func newPlayingWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := newTestWorld(t)
	if !StartRun(e) {
		t.Fatal("StartRun from menu was rejected")
	}
	return e
}

func count(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func playerEntry(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := components.Player.First(e.World)
	if !ok {
		t.Fatal("no player")
	}
	return entry
}

// placeEnemy spawns an enemy whose hit centre is (cx, cy)
func placeEnemy(e *ecs.ECS, cx, cy float64) *donburi.Entry {
	wave := GetWave(e)
	wave.NextSeq++
	entry := factory.CreateEnemy(e, GetGame(e).Level, GetRandom(e).Rand, wave.NextSeq)
	enemy := components.Enemy.Get(entry)
	pos := components.Position.Get(entry)
	pos.X = cx - enemy.Size/2
	pos.Y = cy - enemy.Size/2
	factory.MoveHitBox(components.Object.Get(entry).Object, cx, cy)
	return entry
}

// placeBullet spawns a bullet whose hit centre is (cx, cy)
func placeBullet(e *ecs.ECS, cx, cy float64) *donburi.Entry {
	p, _ := components.Player.First(e.World)
	wave := GetWave(e)
	wave.NextSeq++
	entry := factory.CreateBullet(e, components.Position.Get(p), components.Player.Get(p), wave.NextSeq)
	pos := components.Position.Get(entry)
	pos.X = cx - cfg.Bullet.HitOffsetX
	pos.Y = cy
	factory.MoveHitBox(components.Object.Get(entry).Object, cx, cy)
	return entry
}

func pendingSounds(e *ecs.ECS, id cfg.SoundID) int {
	n := 0
	for _, s := range GetOrCreateAudio(e).PendingSFX {
		if s == id {
			n++
		}
	}
	return n
}

func TestUpdatePlayer(t *testing.T) {
	maxX := float64(cfg.C.Width) - cfg.Player.Width

	tests := []struct {
		name        string
		startX      float64
		left, right bool
		want        float64
	}{
		{"idle", 100, false, false, 100},
		{"left", 100, true, false, 100 - cfg.Player.Speed},
		{"right", 100, false, true, 100 + cfg.Player.Speed},
		{"both cancel", 100, true, true, 100},
		{"clamped left", 3, true, false, 0},
		{"clamped right", maxX - 2, false, true, maxX},
		{"left then right at the edge", 0, true, true, cfg.Player.Speed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newPlayingWorld(t)
			pos := components.Position.Get(playerEntry(t, e))
			pos.X = tt.startX

			controls := GetControls(e)
			controls.Left, controls.Right = tt.left, tt.right
			UpdatePlayer(e)

			if pos.X != tt.want {
				t.Errorf("x = %v, want %v", pos.X, tt.want)
			}
			if pos.X < 0 || pos.X > maxX {
				t.Errorf("x = %v outside [0, %v]", pos.X, maxX)
			}
		})
	}
}

func TestUpdateShootingCooldown(t *testing.T) {
	e := newPlayingWorld(t)
	player := components.Player.Get(playerEntry(t, e))
	GetControls(e).Fire = true

	UpdateShooting(e)
	if got := count(e, tags.Bullet); got != 1 {
		t.Fatalf("bullets after first shot = %d, want 1", got)
	}
	if player.ShootCooldown != cfg.Player.ShootCooldown {
		t.Errorf("cooldown = %d, want %d", player.ShootCooldown, cfg.Player.ShootCooldown)
	}

	for range cfg.Player.ShootCooldown - 1 {
		UpdateShooting(e)
	}
	if got := count(e, tags.Bullet); got != 1 {
		t.Errorf("bullets during cooldown = %d, want 1", got)
	}

	UpdateShooting(e)
	if got := count(e, tags.Bullet); got != 2 {
		t.Errorf("bullets after cooldown = %d, want 2", got)
	}
	if got := pendingSounds(e, cfg.SoundShoot); got != 2 {
		t.Errorf("shoot sounds = %d, want 2", got)
	}
}

func TestBulletSpawnPosition(t *testing.T) {
	e := newPlayingWorld(t)
	p := playerEntry(t, e)
	pos := components.Position.Get(p)
	GetControls(e).Fire = true
	UpdateShooting(e)

	entry, ok := components.Bullet.First(e.World)
	if !ok {
		t.Fatal("no bullet")
	}
	bp := components.Position.Get(entry)
	wantX := pos.X + cfg.Player.Width/2 + cfg.Bullet.OffsetX
	if bp.X != wantX || bp.Y != pos.Y {
		t.Errorf("bullet at (%v, %v), want (%v, %v)", bp.X, bp.Y, wantX, pos.Y)
	}
}

func TestUpdateBulletsRemovesPastTop(t *testing.T) {
	e := newPlayingWorld(t)
	b := placeBullet(e, 200, -cfg.Bullet.TopMargin+10)

	UpdateBullets(e)
	if b.Valid() {
		t.Error("bullet past the top margin was not removed")
	}
}

func TestUpdateSpawner(t *testing.T) {
	t.Run("releases after the initial delay", func(t *testing.T) {
		e := newPlayingWorld(t)
		wave := GetWave(e)
		needed := wave.EnemiesNeeded

		for range cfg.Level.InitialSpawnDelay - 1 {
			UpdateSpawner(e)
		}
		if got := count(e, tags.Enemy); got != 0 {
			t.Fatalf("enemies before delay = %d, want 0", got)
		}

		UpdateSpawner(e)
		if got := count(e, tags.Enemy); got != 1 {
			t.Fatalf("enemies after delay = %d, want 1", got)
		}
		if wave.EnemiesNeeded != needed-1 {
			t.Errorf("needed = %d, want %d", wave.EnemiesNeeded, needed-1)
		}
		if want := cfg.SpawnIntervalForLevel(1); wave.SpawnTimer != want {
			t.Errorf("timer = %d, want %d", wave.SpawnTimer, want)
		}
	})

	t.Run("spawn position and speed", func(t *testing.T) {
		e := newPlayingWorld(t)
		GetGame(e).Level = 3
		GetWave(e).SpawnTimer = 1
		UpdateSpawner(e)

		entry, ok := components.Enemy.First(e.World)
		if !ok {
			t.Fatal("no enemy")
		}
		pos := components.Position.Get(entry)
		enemy := components.Enemy.Get(entry)
		minX := cfg.Enemy.SpawnMarginLeft
		maxX := minX + float64(cfg.C.Width) - cfg.Enemy.SpawnMarginTotal
		if pos.X < minX || pos.X >= maxX {
			t.Errorf("x = %v outside [%v, %v)", pos.X, minX, maxX)
		}
		if pos.Y != cfg.Enemy.SpawnY {
			t.Errorf("y = %v, want %v", pos.Y, cfg.Enemy.SpawnY)
		}
		if want := cfg.EnemySpeedForLevel(3); enemy.VY != want {
			t.Errorf("vy = %v, want %v", enemy.VY, want)
		}
		if enemy.Phase < 0 || enemy.Phase >= 2*math.Pi {
			t.Errorf("phase = %v outside [0, 2π)", enemy.Phase)
		}
	})

	t.Run("sprite index cycles with level", func(t *testing.T) {
		n := len(cfg.Narrative.Sprites.Enemies)
		for level := 1; level <= 5; level++ {
			e := newPlayingWorld(t)
			GetGame(e).Level = level
			GetWave(e).SpawnTimer = 1
			UpdateSpawner(e)

			entry, ok := components.Enemy.First(e.World)
			if !ok {
				t.Fatalf("level %d: no enemy", level)
			}
			if got, want := components.Enemy.Get(entry).SpriteIndex, (level-1)%n; got != want {
				t.Errorf("level %d: sprite index = %d, want %d", level, got, want)
			}
		}
	})

	t.Run("phase stays in range over many spawns", func(t *testing.T) {
		e := newPlayingWorld(t)
		wave := GetWave(e)
		for range 50 {
			wave.EnemiesNeeded = 1
			wave.SpawnTimer = 1
			UpdateSpawner(e)
		}
		components.Enemy.Each(e.World, func(entry *donburi.Entry) {
			if p := components.Enemy.Get(entry).Phase; p < 0 || p >= 2*math.Pi {
				t.Errorf("phase = %v outside [0, 2π)", p)
			}
		})
	})

	t.Run("stops when the level quota is spawned", func(t *testing.T) {
		e := newPlayingWorld(t)
		GetWave(e).EnemiesNeeded = 0
		for range 200 {
			UpdateSpawner(e)
		}
		if got := count(e, tags.Enemy); got != 0 {
			t.Errorf("enemies = %d, want 0", got)
		}
	})
}

func TestSpawnIntervalFloor(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 45},
		{4, 30},
		{6, 20},
		{10, 20},
	}
	for _, tt := range tests {
		if got := cfg.SpawnIntervalForLevel(tt.level); got != tt.want {
			t.Errorf("SpawnIntervalForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestUpdateCollisions(t *testing.T) {
	t.Run("bullet hits enemy", func(t *testing.T) {
		e := newPlayingWorld(t)
		enemy := placeEnemy(e, 200, 300)
		bullet := placeBullet(e, 210, 300)

		UpdateCollisions(e)
		if enemy.Valid() || bullet.Valid() {
			t.Error("hit pair was not removed")
		}
		if got := GetGame(e).Score; got != cfg.Level.PointsPerEnemy {
			t.Errorf("score = %d, want %d", got, cfg.Level.PointsPerEnemy)
		}
		if got := count(e, tags.Particle); got != cfg.Particle.EnemyBurst {
			t.Errorf("particles = %d, want %d", got, cfg.Particle.EnemyBurst)
		}
	})

	t.Run("hit across a cell boundary", func(t *testing.T) {
		e := newPlayingWorld(t)
		enemy := placeEnemy(e, 84.2, 300)
		bullet := placeBullet(e, 44.5, 300)

		UpdateCollisions(e)
		if enemy.Valid() || bullet.Valid() {
			t.Error("pair 39.7 apart was not hit")
		}
		if got := GetGame(e).Score; got != cfg.Level.PointsPerEnemy {
			t.Errorf("score = %d, want %d", got, cfg.Level.PointsPerEnemy)
		}
	})

	t.Run("out of range is a miss", func(t *testing.T) {
		e := newPlayingWorld(t)
		placeEnemy(e, 200, 300)
		placeBullet(e, 200+cfg.Collision.HitDistance, 300)

		UpdateCollisions(e)
		if got := count(e, tags.Enemy); got != 1 {
			t.Errorf("enemies = %d, want 1", got)
		}
		if GetGame(e).Score != 0 {
			t.Errorf("score = %d, want 0", GetGame(e).Score)
		}
	})

	t.Run("one bullet and two enemies score once", func(t *testing.T) {
		e := newPlayingWorld(t)
		near := placeEnemy(e, 200, 300)
		far := placeEnemy(e, 210, 300)
		placeBullet(e, 200, 300)

		UpdateCollisions(e)
		if GetGame(e).Score != cfg.Level.PointsPerEnemy {
			t.Errorf("score = %d, want %d", GetGame(e).Score, cfg.Level.PointsPerEnemy)
		}
		if near.Valid() {
			t.Error("nearest enemy survived")
		}
		if !far.Valid() {
			t.Error("second enemy was removed by the same bullet")
		}
		if got := count(e, tags.Bullet); got != 0 {
			t.Errorf("bullets = %d, want 0", got)
		}
	})

	t.Run("two bullets and one enemy score once", func(t *testing.T) {
		e := newPlayingWorld(t)
		placeEnemy(e, 200, 300)
		first := placeBullet(e, 200, 300)
		second := placeBullet(e, 205, 300)

		UpdateCollisions(e)
		if GetGame(e).Score != cfg.Level.PointsPerEnemy {
			t.Errorf("score = %d, want %d", GetGame(e).Score, cfg.Level.PointsPerEnemy)
		}
		if first.Valid() {
			t.Error("older bullet should claim the enemy")
		}
		if !second.Valid() {
			t.Error("second bullet was consumed without a target")
		}
	})

	t.Run("enemy touches player", func(t *testing.T) {
		e := newPlayingWorld(t)
		player := components.Player.Get(playerEntry(t, e))
		px, py := factory.PlayerCenter(components.Position.Get(playerEntry(t, e)), player)
		enemy := placeEnemy(e, px, py-20)

		UpdateCollisions(e)
		if enemy.Valid() {
			t.Error("enemy touching the player was not removed")
		}
		if got := GetLives(e).Lives; got != cfg.Player.StartingLives-1 {
			t.Errorf("lives = %d, want %d", got, cfg.Player.StartingLives-1)
		}
		if got := count(e, tags.Particle); got != cfg.Particle.PlayerBurst {
			t.Errorf("particles = %d, want %d", got, cfg.Particle.PlayerBurst)
		}
	})

	t.Run("shot enemy does not also hit the player", func(t *testing.T) {
		e := newPlayingWorld(t)
		player := components.Player.Get(playerEntry(t, e))
		px, py := factory.PlayerCenter(components.Position.Get(playerEntry(t, e)), player)
		placeEnemy(e, px, py-10)
		placeBullet(e, px, py-10)

		UpdateCollisions(e)
		if got := GetLives(e).Lives; got != cfg.Player.StartingLives {
			t.Errorf("lives = %d, want %d", got, cfg.Player.StartingLives)
		}
		if GetGame(e).Score != cfg.Level.PointsPerEnemy {
			t.Errorf("score = %d, want %d", GetGame(e).Score, cfg.Level.PointsPerEnemy)
		}
	})
}

func TestLivesClampAndSingleGameOver(t *testing.T) {
	e := newPlayingWorld(t)
	GetLives(e).Lives = 1

	player := components.Player.Get(playerEntry(t, e))
	px, py := factory.PlayerCenter(components.Position.Get(playerEntry(t, e)), player)
	placeEnemy(e, px-5, py)
	placeEnemy(e, px+5, py)
	placeEnemy(e, px, py+5)

	UpdateCollisions(e)
	if got := GetLives(e).Lives; got != 0 {
		t.Errorf("lives = %d, want 0", got)
	}
	if GetGame(e).Mode != cfg.ModeGameOver {
		t.Errorf("mode = %v, want gameOver", GetGame(e).Mode)
	}
	if got := pendingSounds(e, cfg.SoundGameOver); got != 1 {
		t.Errorf("game over sounds = %d, want 1", got)
	}

	LoseLife(e)
	if got := GetLives(e).Lives; got != 0 {
		t.Errorf("lives after extra loss = %d, want 0", got)
	}
}

func TestUpdateEnemiesMotion(t *testing.T) {
	tests := []struct {
		name  string
		phase float64
		vy    float64
	}{
		{"zero phase", 0, 1.6},
		{"quarter turn", math.Pi / 2, 2.0},
		{"half turn", math.Pi, 2.8},
		{"near wrap", 2*math.Pi - 0.01, 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newPlayingWorld(t)
			entry := placeEnemy(e, 200, 300)
			enemy := components.Enemy.Get(entry)
			pos := components.Position.Get(entry)
			enemy.Phase = tt.phase
			enemy.VY = tt.vy
			x0, y0 := pos.X, pos.Y

			UpdateEnemies(e)

			wantPhase := tt.phase + cfg.Enemy.PhaseStep
			wantX := x0 + math.Sin(wantPhase)*cfg.Enemy.WiggleFactor
			wantY := y0 + tt.vy
			if math.Abs(enemy.Phase-wantPhase) > 1e-9 {
				t.Errorf("phase = %v, want %v", enemy.Phase, wantPhase)
			}
			if math.Abs(pos.X-wantX) > 1e-9 {
				t.Errorf("x = %v, want %v", pos.X, wantX)
			}
			if math.Abs(pos.Y-wantY) > 1e-9 {
				t.Errorf("y = %v, want %v", pos.Y, wantY)
			}

			obj := components.Object.Get(entry).Object
			cx, cy := factory.EnemyCenter(pos, enemy)
			half := cfg.Collision.BroadphaseSize / 2
			if m := cfg.Collision.SpaceMargin; math.Abs(obj.X-(cx-half+m)) > 1e-9 || math.Abs(obj.Y-(cy-half+m)) > 1e-9 {
				t.Errorf("hit box at (%v, %v) does not follow the enemy", obj.X, obj.Y)
			}
		})
	}
}

func TestEnemyEscapeCostsLife(t *testing.T) {
	e := newPlayingWorld(t)
	enemy := placeEnemy(e, 20, float64(cfg.C.Height)+40)

	UpdateEnemies(e)
	if enemy.Valid() {
		t.Error("escaped enemy was not removed")
	}
	if got := GetLives(e).Lives; got != cfg.Player.StartingLives-1 {
		t.Errorf("lives = %d, want %d", got, cfg.Player.StartingLives-1)
	}
}

func TestLevelCompleteFiresOnce(t *testing.T) {
	e := newPlayingWorld(t)
	GetWave(e).EnemiesNeeded = 0

	Step(e)
	game := GetGame(e)
	if game.Mode != cfg.ModeLevelComplete {
		t.Fatalf("mode = %v, want levelComplete", game.Mode)
	}
	lc := GetLevelComplete(e)
	if lc.Level != 1 || lc.Message != cfg.Narrative.MessageForLevel(1) {
		t.Errorf("level complete = %+v", *lc)
	}

	for range 10 {
		Step(e)
	}
	if got := pendingSounds(e, cfg.SoundLevelUp); got != 1 {
		t.Errorf("level up sounds = %d, want 1", got)
	}
}

func TestLevelNotCompleteWithEnemiesLeft(t *testing.T) {
	e := newPlayingWorld(t)
	GetWave(e).EnemiesNeeded = 0
	placeEnemy(e, 200, 100)

	UpdateLevelProgress(e)
	if GetGame(e).Mode != cfg.ModePlaying {
		t.Errorf("mode = %v, want playing", GetGame(e).Mode)
	}
}

func TestPlayThroughLevelOne(t *testing.T) {
	e := newPlayingWorld(t)

	for frame := 0; frame < 5000 && IsPlaying(e); frame++ {
		// Put a bullet where each enemy will be after this step's movement
		var targets [][2]float64
		components.Enemy.Each(e.World, func(entry *donburi.Entry) {
			enemy := components.Enemy.Get(entry)
			cx, cy := factory.EnemyCenter(components.Position.Get(entry), enemy)
			targets = append(targets, [2]float64{cx, cy - cfg.Bullet.SpeedY + enemy.VY})
		})
		for _, p := range targets {
			placeBullet(e, p[0], p[1])
		}
		Step(e)
	}

	game := GetGame(e)
	if game.Mode != cfg.ModeLevelComplete {
		t.Fatalf("mode = %v, want levelComplete", game.Mode)
	}
	want := cfg.EnemiesForLevel(1) * cfg.Level.PointsPerEnemy
	if game.Score != want {
		t.Errorf("score = %d, want %d", game.Score, want)
	}
	if got := GetLives(e).Lives; got != cfg.Player.StartingLives {
		t.Errorf("lives = %d, want %d", got, cfg.Player.StartingLives)
	}
}

func TestIdleRunEndsInGameOver(t *testing.T) {
	e := newPlayingWorld(t)

	for frame := 0; frame < 10000 && IsPlaying(e); frame++ {
		Step(e)
	}

	if GetGame(e).Mode != cfg.ModeGameOver {
		t.Fatalf("mode = %v, want gameOver", GetGame(e).Mode)
	}
	if got := GetLives(e).Lives; got != 0 {
		t.Errorf("lives = %d, want 0", got)
	}
	if got := GetGame(e).Score; got != 0 {
		t.Errorf("score = %d, want 0", got)
	}
}

func TestNoSimulationOutsidePlaying(t *testing.T) {
	modes := []cfg.GameMode{cfg.ModeMenu, cfg.ModeLevelComplete, cfg.ModeWin, cfg.ModeGameOver}

	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			e := newPlayingWorld(t)
			enemy := placeEnemy(e, 200, 300)
			placeBullet(e, 100, 500)
			factory.CreateStars(e, GetRandom(e).Rand)
			GetWave(e).SpawnTimer = 1
			GetControls(e).Fire = true
			GetControls(e).Left = true

			GetGame(e).Mode = mode
			before := *components.Position.Get(enemy)
			playerX := components.Position.Get(playerEntry(t, e)).X
			bullets := count(e, tags.Bullet)
			enemies := count(e, tags.Enemy)

			for range 30 {
				Step(e)
			}

			if *components.Position.Get(enemy) != before {
				t.Error("enemy moved")
			}
			if components.Position.Get(playerEntry(t, e)).X != playerX {
				t.Error("player moved")
			}
			if count(e, tags.Bullet) != bullets || count(e, tags.Enemy) != enemies {
				t.Error("entities were created or removed")
			}
			if GetGame(e).Mode != mode {
				t.Errorf("mode changed to %v", GetGame(e).Mode)
			}
		})
	}
}

func TestGameOverMidStepStopsRemainingSystems(t *testing.T) {
	e := newPlayingWorld(t)
	GetLives(e).Lives = 1
	placeEnemy(e, 20, float64(cfg.C.Height)+40)

	factory.CreateStars(e, GetRandom(e).Rand)
	star, _ := components.Star.First(e.World)
	starY := components.Position.Get(star).Y

	Step(e)
	if GetGame(e).Mode != cfg.ModeGameOver {
		t.Fatalf("mode = %v, want gameOver", GetGame(e).Mode)
	}
	if got := components.Position.Get(star).Y; got != starY {
		t.Errorf("star moved after game over: %v -> %v", starY, got)
	}
}

func TestStarsStayOnScreen(t *testing.T) {
	e := newPlayingWorld(t)
	factory.CreateStars(e, GetRandom(e).Rand)
	height := float64(cfg.C.Height)

	for range 2000 {
		UpdateStars(e)
		components.Star.Each(e.World, func(entry *donburi.Entry) {
			if y := components.Position.Get(entry).Y; y < 0 || y > height {
				t.Fatalf("star y = %v outside [0, %v]", y, height)
			}
		})
	}
}

func TestParticlesExpire(t *testing.T) {
	e := newPlayingWorld(t)
	factory.SpawnParticleBurst(e, 100, 100, 5, GetRandom(e).Rand)

	for range cfg.Particle.Life - 1 {
		UpdateParticles(e)
	}
	if got := count(e, tags.Particle); got != 5 {
		t.Fatalf("particles before expiry = %d, want 5", got)
	}
	UpdateParticles(e)
	if got := count(e, tags.Particle); got != 0 {
		t.Errorf("particles after expiry = %d, want 0", got)
	}
}
