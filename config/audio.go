package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundShoot
	SoundHit
	SoundDamage
	SoundLevelUp
	SoundGameOver
	SoundWin
	SoundMenuSelect
	SoundCount // Must be last - used for array sizing
)

// Tone describes one procedurally synthesized sound effect.
// The frequency slides linearly from StartHz to EndHz over Duration seconds.
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration float64
	Square   bool // square wave instead of sine
	Noise    float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to their synthesis parameters
type SoundConfig struct {
	Tones             map[SoundID]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.5,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundShoot:      {StartHz: 880, EndHz: 1320, Duration: 0.06},
			SoundHit:        {StartHz: 660, EndHz: 220, Duration: 0.12, Noise: 0.3},
			SoundDamage:     {StartHz: 200, EndHz: 80, Duration: 0.25, Square: true, Noise: 0.2},
			SoundLevelUp:    {StartHz: 523, EndHz: 1046, Duration: 0.4},
			SoundGameOver:   {StartHz: 392, EndHz: 98, Duration: 0.8, Square: true},
			SoundWin:        {StartHz: 523, EndHz: 1568, Duration: 0.9},
			SoundMenuSelect: {StartHz: 740, EndHz: 740, Duration: 0.05},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundShoot:  0.4,
			SoundDamage: 1.3,
		},
	}
}
