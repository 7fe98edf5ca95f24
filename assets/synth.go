package assets

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
)

// Tone parameters for Synthesize
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration float64 // seconds
	Square   bool
	Noise    float64 // 0..1 mix of white noise
}

// Synthesize renders a tone as 16-bit little-endian stereo PCM,
// the format ebiten's audio context plays.
// The frequency slides linearly and the amplitude decays to silence.
func Synthesize(t Tone, sampleRate int) []byte {
	n := int(t.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	out := make([]byte, n*4)
	noise := rand.New(rand.NewPCG(1, 2))

	phase := 0.0
	for i := range n {
		progress := float64(i) / float64(n)
		freq := t.StartHz + (t.EndHz-t.StartHz)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		v := math.Sin(phase)
		if t.Square {
			if v >= 0 {
				v = 0.6
			} else {
				v = -0.6
			}
		}
		if t.Noise > 0 {
			v = v*(1-t.Noise) + (noise.Float64()*2-1)*t.Noise
		}

		// Short attack then linear decay avoids clicks at both ends
		env := 1 - progress
		if attack := 0.01 * float64(sampleRate); float64(i) < attack {
			env *= float64(i) / attack
		}

		s := int16(v * env * 0.8 * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}
