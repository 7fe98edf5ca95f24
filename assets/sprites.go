package assets

import (
	"context"
	"fmt"
	"image"
	"io/fs"
	"log"
	"runtime"
	"sync/atomic"

	"github.com/disintegration/imaging"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
)

// SpriteResolution is the square size every sprite is scaled to after decoding.
// Renderers scale it down to the entity size.
const SpriteResolution = 128

// SpriteLoader decodes a fixed list of images in the background.
// Each slot becomes ready independently; a slot that fails never becomes ready.
type SpriteLoader struct {
	fsys    fs.FS
	paths   []string
	size    int
	decoded []atomic.Pointer[image.NRGBA]
	images  []*ebiten.Image // created lazily on the game thread
}

func NewSpriteLoader(fsys fs.FS, paths []string, size int) *SpriteLoader {
	return &SpriteLoader{
		fsys:    fsys,
		paths:   paths,
		size:    size,
		decoded: make([]atomic.Pointer[image.NRGBA], len(paths)),
		images:  make([]*ebiten.Image, len(paths)),
	}
}

// LoadAsync starts Load without waiting for it
func (l *SpriteLoader) LoadAsync(ctx context.Context) {
	go func() {
		if err := l.Load(ctx); err != nil {
			log.Printf("Warning: some sprites unavailable, using fallback shapes: %v", err)
		}
	}()
}

// Load decodes every sprite and waits for all of them.
// Every slot is attempted; the first failure is returned.
func (l *SpriteLoader) Load(ctx context.Context) error {
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, path := range l.paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := l.decode(path)
			if err != nil {
				return err
			}
			l.decoded[i].Store(img)
			return nil
		})
	}
	return g.Wait()
}

func (l *SpriteLoader) decode(path string) (*image.NRGBA, error) {
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sprite %s: %w", path, err)
	}
	defer f.Close()

	src, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite %s: %w", path, err)
	}

	// Cover fit: fill the square and crop the overflow
	return imaging.Fill(src, l.size, l.size, imaging.Center, imaging.Lanczos), nil
}

// Len returns the number of slots
func (l *SpriteLoader) Len() int {
	return len(l.paths)
}

// Ready reports whether slot i finished decoding
func (l *SpriteLoader) Ready(i int) bool {
	if i < 0 || i >= len(l.decoded) {
		return false
	}
	return l.decoded[i].Load() != nil
}

// Image returns the sprite in slot i, or nil if it is not ready.
// Must be called from the game thread.
func (l *SpriteLoader) Image(i int) *ebiten.Image {
	if !l.Ready(i) {
		return nil
	}
	if l.images[i] == nil {
		l.images[i] = ebiten.NewImageFromImage(l.decoded[i].Load())
	}
	return l.images[i]
}

// Sprites groups the player sprite and the cyclic enemy sprite list
type Sprites struct {
	loader  *SpriteLoader
	enemies int
}

// NewSprites creates a loader for the player sprite followed by the enemy sprites
func NewSprites(fsys fs.FS, player string, enemies []string) *Sprites {
	paths := append([]string{player}, enemies...)
	return &Sprites{
		loader:  NewSpriteLoader(fsys, paths, SpriteResolution),
		enemies: len(enemies),
	}
}

func (s *Sprites) LoadAsync(ctx context.Context) {
	s.loader.LoadAsync(ctx)
}

func (s *Sprites) Load(ctx context.Context) error {
	return s.loader.Load(ctx)
}

// Player returns the player sprite or nil
func (s *Sprites) Player() *ebiten.Image {
	if s == nil {
		return nil
	}
	return s.loader.Image(0)
}

// Enemy returns enemy sprite i (taken modulo the list length) or nil
func (s *Sprites) Enemy(i int) *ebiten.Image {
	if s == nil || s.enemies == 0 {
		return nil
	}
	i %= s.enemies
	if i < 0 {
		i += s.enemies
	}
	return s.loader.Image(i + 1)
}

// EnemyReady reports whether enemy sprite i finished decoding
func (s *Sprites) EnemyReady(i int) bool {
	if s == nil || s.enemies == 0 {
		return false
	}
	i %= s.enemies
	if i < 0 {
		i += s.enemies
	}
	return s.loader.Ready(i + 1)
}

// PlayerReady reports whether the player sprite finished decoding
func (s *Sprites) PlayerReady() bool {
	return s != nil && s.loader.Ready(0)
}
