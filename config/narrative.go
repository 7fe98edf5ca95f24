package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
)

//go:embed narrative.yaml
var narrativeYAML []byte

// ScreenText holds the strings of one overlay screen
type ScreenText struct {
	Title  string `yaml:"title"`
	Text   string `yaml:"text"`
	Button string `yaml:"button"`
}

// SpriteSources lists sprite file names relative to the assets directory
type SpriteSources struct {
	Player  string   `yaml:"player"`
	Enemies []string `yaml:"enemies"`
}

// NarrativeConfig holds all text content and sprite sources.
// Lists are always indexed modulo their length.
type NarrativeConfig struct {
	Title         string        `yaml:"title"`
	Menu          ScreenText    `yaml:"menu"`
	LevelComplete ScreenText    `yaml:"levelComplete"`
	Win           ScreenText    `yaml:"win"`
	GameOver      ScreenText    `yaml:"gameOver"`
	Messages      []string      `yaml:"messages"`
	Sprites       SpriteSources `yaml:"sprites"`
}

// Narrative is the global narrative configuration
var Narrative NarrativeConfig

var (
	ErrNoMessages      = errors.New("narrative has no level messages")
	ErrNoEnemySprites  = errors.New("narrative has no enemy sprites")
	ErrNoPlayerSprite  = errors.New("narrative has no player sprite")
	ErrEmptyMessage    = errors.New("narrative has an empty level message")
	ErrEmptySpritePath = errors.New("narrative has an empty enemy sprite path")
)

func init() {
	n, err := ParseNarrative(narrativeYAML)
	if err != nil {
		log.Printf("Warning: using built-in narrative: %v", err)
		n = defaultNarrative()
	}
	Narrative = *n
}

// ParseNarrative decodes and validates narrative YAML
func ParseNarrative(data []byte) (*NarrativeConfig, error) {
	var n NarrativeConfig
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("failed to parse narrative: %w", err)
	}
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("invalid narrative: %w", err)
	}
	return &n, nil
}

// Validate checks that every cyclically indexed list is usable
func (n *NarrativeConfig) Validate() error {
	if len(n.Messages) == 0 {
		return ErrNoMessages
	}
	for i, m := range n.Messages {
		if m == "" {
			return fmt.Errorf("message %d: %w", i, ErrEmptyMessage)
		}
	}
	if n.Sprites.Player == "" {
		return ErrNoPlayerSprite
	}
	if len(n.Sprites.Enemies) == 0 {
		return ErrNoEnemySprites
	}
	for i, p := range n.Sprites.Enemies {
		if p == "" {
			return fmt.Errorf("enemy sprite %d: %w", i, ErrEmptySpritePath)
		}
	}
	return nil
}

// MessageForLevel returns the completion message of a level.
// Any level value maps into the list.
func (n *NarrativeConfig) MessageForLevel(level int) string {
	return n.Messages[CyclicIndex(level, len(n.Messages))]
}

// EnemySpriteIndex returns the enemy sprite slot used on a level
func (n *NarrativeConfig) EnemySpriteIndex(level int) int {
	return CyclicIndex(level, len(n.Sprites.Enemies))
}

// CyclicIndex maps a 1-based level onto [0, n) for any level value
func CyclicIndex(level, n int) int {
	if n <= 0 {
		return 0
	}
	i := (level - 1) % n
	if i < 0 {
		i += n
	}
	return i
}

func defaultNarrative() *NarrativeConfig {
	return &NarrativeConfig{
		Title:         "Amor Galáctico",
		Menu:          ScreenText{Text: "Destruye las sombras con el poder de tus corazones.", Button: "Empezar"},
		LevelComplete: ScreenText{Title: "¡Victoria!", Button: "Continuar"},
		Win:           ScreenText{Title: "¡Reina de mi Universo!", Text: "Has conquistado cada rincón de mi galaxia.", Button: "Reiniciar"},
		GameOver:      ScreenText{Title: "No te rindas", Text: "¡Vuelve a intentarlo!", Button: "Reintentar"},
		Messages:      []string{"¡Nivel superado!"},
		Sprites: SpriteSources{
			Player:  "eli.png",
			Enemies: []string{"duv.png", "duv1.png", "duv2.png", "duv3.png"},
		},
	}
}
