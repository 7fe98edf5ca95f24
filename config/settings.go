package config

// PersistenceConfig names where user settings are stored
type PersistenceConfig struct {
	AppName     string
	SettingsKey string
	RetryFrames int // wait before retrying a failed save
}

// WindowConfig contains desktop window options
type WindowConfig struct {
	Title        string
	DefaultScale float64
	MinScale     float64
	MaxScale     float64
}

var Persistence PersistenceConfig
var Window WindowConfig

func init() {
	Persistence = PersistenceConfig{
		AppName:     "amor-galactico",
		SettingsKey: "settings",
		RetryFrames: 300,
	}

	Window = WindowConfig{
		Title:        "Amor Galáctico",
		DefaultScale: 1,
		MinScale:     0.5,
		MaxScale:     3,
	}
}
