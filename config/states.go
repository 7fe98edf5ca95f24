package config

// GameMode is the session state driving which overlay is shown
// and whether the simulation runs.
type GameMode int

const (
	ModeMenu GameMode = iota
	ModePlaying
	ModeLevelComplete
	ModeWin
	ModeGameOver
)

func (m GameMode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeLevelComplete:
		return "levelComplete"
	case ModeWin:
		return "win"
	case ModeGameOver:
		return "gameOver"
	}
	return "unknown"
}
