package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader decodes optional sound files into PCM.
// Sounds without a file are synthesized instead.
type AudioLoader struct {
	fsys       fs.FS // nil = synthesize everything
	sampleRate int
	sfxCache   map[string][]byte // Cache decoded audio bytes for SFX
}

// NewAudioLoader creates a loader reading sound files from fsys
func NewAudioLoader(fsys fs.FS, sampleRate int) *AudioLoader {
	return &AudioLoader{
		fsys:       fsys,
		sampleRate: sampleRate,
		sfxCache:   make(map[string][]byte),
	}
}

// LoadSFX returns decoded PCM for name, trying name.wav then name.ogg
func (l *AudioLoader) LoadSFX(name string) ([]byte, error) {
	if cached, ok := l.sfxCache[name]; ok {
		return cached, nil
	}
	if l.fsys == nil {
		return nil, fmt.Errorf("no audio directory for %s: %w", name, fs.ErrNotExist)
	}

	var lastErr error
	for _, ext := range []string{".wav", ".ogg"} {
		p := path.Join("sfx", name+ext)
		data, err := fs.ReadFile(l.fsys, p)
		if err != nil {
			lastErr = err
			continue
		}
		decoded, err := l.decode(p, data)
		if err != nil {
			return nil, err
		}
		l.sfxCache[name] = decoded
		return decoded, nil
	}
	return nil, fmt.Errorf("failed to read audio file %s: %w", name, lastErr)
}

func (l *AudioLoader) decode(p string, data []byte) ([]byte, error) {
	var stream io.Reader
	switch strings.ToLower(path.Ext(p)) {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(l.sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", p, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(l.sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", p, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", p)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", p, err)
	}
	return decoded, nil
}

// NewSFXPlayer creates a one-shot player over decoded PCM
func NewSFXPlayer(ctx *audio.Context, pcm []byte) *audio.Player {
	return ctx.NewPlayerFromBytes(pcm)
}
