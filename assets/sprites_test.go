package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.NRGBA{R: 255, G: 105, B: 180, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestSpriteLoaderLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"eli.png":  {Data: encodePNG(t, 40, 80)},
		"duv.png":  {Data: encodePNG(t, 100, 50)},
		"bad.png":  {Data: []byte("not an image")},
		"duv2.png": {Data: encodePNG(t, 8, 8)},
	}

	t.Run("all present", func(t *testing.T) {
		l := NewSpriteLoader(fsys, []string{"eli.png", "duv.png"}, 32)
		if err := l.Load(context.Background()); err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		for i := range l.Len() {
			if !l.Ready(i) {
				t.Errorf("slot %d not ready", i)
			}
			got := l.decoded[i].Load().Bounds()
			if got.Dx() != 32 || got.Dy() != 32 {
				t.Errorf("slot %d size = %dx%d, want 32x32", i, got.Dx(), got.Dy())
			}
		}
	})

	t.Run("missing and corrupt files leave slots empty", func(t *testing.T) {
		l := NewSpriteLoader(fsys, []string{"eli.png", "missing.png", "bad.png", "duv2.png"}, 16)
		err := l.Load(context.Background())
		if err == nil {
			t.Fatal("Load() error = nil, want error")
		}
		want := map[int]bool{0: true, 1: false, 2: false, 3: true}
		for i, ready := range want {
			if l.Ready(i) != ready {
				t.Errorf("Ready(%d) = %v, want %v", i, l.Ready(i), ready)
			}
		}
	})

	t.Run("missing file error wraps fs.ErrNotExist", func(t *testing.T) {
		l := NewSpriteLoader(fsys, []string{"missing.png"}, 16)
		err := l.Load(context.Background())
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Load() error = %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("cancelled context loads nothing", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		l := NewSpriteLoader(fsys, []string{"eli.png"}, 16)
		if err := l.Load(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("Load() error = %v, want context.Canceled", err)
		}
		if l.Ready(0) {
			t.Error("slot ready after cancelled load")
		}
	})

	t.Run("out of range slots are never ready", func(t *testing.T) {
		l := NewSpriteLoader(fsys, []string{"eli.png"}, 16)
		if l.Ready(-1) || l.Ready(1) {
			t.Error("out of range slot reported ready")
		}
	})
}

func TestSpritesEnemyIndexWraps(t *testing.T) {
	fsys := fstest.MapFS{
		"eli.png":  {Data: encodePNG(t, 4, 4)},
		"duv1.png": {Data: encodePNG(t, 4, 4)},
	}
	s := NewSprites(fsys, "eli.png", []string{"duv0.png", "duv1.png"})
	_ = s.Load(context.Background())

	if !s.PlayerReady() {
		t.Error("player sprite not ready")
	}
	tests := []struct {
		index int
		want  bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{3, true},
		{-1, true},
	}
	for _, tt := range tests {
		if got := s.EnemyReady(tt.index); got != tt.want {
			t.Errorf("EnemyReady(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestSynthesize(t *testing.T) {
	pcm := Synthesize(Tone{StartHz: 440, EndHz: 220, Duration: 0.1}, 44100)
	if want := 4410 * 4; len(pcm) != want {
		t.Fatalf("len = %d, want %d", len(pcm), want)
	}
	if Synthesize(Tone{Duration: 0}, 44100) != nil {
		t.Error("zero duration should produce no samples")
	}
}

func TestAudioLoaderMissingFile(t *testing.T) {
	l := NewAudioLoader(fstest.MapFS{}, 44100)
	if _, err := l.LoadSFX("shoot"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadSFX() error = %v, want fs.ErrNotExist", err)
	}
	if _, err := NewAudioLoader(nil, 44100).LoadSFX("shoot"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadSFX() with nil fs error = %v, want fs.ErrNotExist", err)
	}
}
