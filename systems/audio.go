package systems

import (
	"io/fs"
	"sync"

	"github.com/automoto/amor-galactico/assets"
	"github.com/automoto/amor-galactico/components"
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared by every world
var (
	globalAudioContext *audio.Context
	globalSFX          [cfg.SoundCount][]byte
	audioInitOnce      sync.Once
)

// sfxNames are the optional file names overriding synthesized sounds
var sfxNames = map[cfg.SoundID]string{
	cfg.SoundShoot:      "shoot",
	cfg.SoundHit:        "hit",
	cfg.SoundDamage:     "damage",
	cfg.SoundLevelUp:    "level_up",
	cfg.SoundGameOver:   "game_over",
	cfg.SoundWin:        "win",
	cfg.SoundMenuSelect: "menu_select",
}

// InitAudio creates the audio context and prepares every sound effect.
// Sounds found in fsys (sfx/<name>.wav or .ogg) replace the synthesized ones.
func InitAudio(fsys fs.FS) {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		loader := assets.NewAudioLoader(fsys, cfg.Audio.SampleRate)

		for id, tone := range cfg.Sound.Tones {
			if pcm, err := loader.LoadSFX(sfxNames[id]); err == nil {
				globalSFX[id] = pcm
				continue
			}
			globalSFX[id] = assets.Synthesize(assets.Tone(tone), cfg.Audio.SampleRate)
		}
	})
}

// UpdateAudio plays the sound effects queued during the previous frame
func UpdateAudio(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	muted := GetOrCreateSettings(e).Muted

	if audioData.Context != nil && !muted {
		for _, soundID := range audioData.PendingSFX {
			playSFX(audioData, soundID)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(a *components.AudioData, soundID cfg.SoundID) {
	if a.SFXVolume <= 0 || soundID <= cfg.SoundNone || soundID >= cfg.SoundCount {
		return
	}
	pcm := a.SFX[soundID]
	if pcm == nil {
		return
	}

	volume := a.SFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player := assets.NewSFXPlayer(a.Context, pcm)
	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed.
// Before InitAudio the component has no context and queued sounds are dropped.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:    globalAudioContext,
			SFX:        globalSFX,
			SFXVolume:  cfg.Audio.DefaultSFXVol,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
