package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/amor-galactico/components"
	cfg "github.com/automoto/amor-galactico/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk.
// Session state (score, level, lives) is never stored.
type SavedSettings struct {
	Muted      bool `json:"muted"`
	Fullscreen bool `json:"fullscreen"`
}

// SettingsStore is the subset of *gdata.Manager used for settings
type SettingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var settingsStore SettingsStore

// InitPersistence opens the gdata storage for settings
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	settingsStore = m
	return nil
}

// SetSettingsStore replaces the settings storage. nil keeps settings in memory only.
func SetSettingsStore(s SettingsStore) {
	settingsStore = s
}

// LoadSettings loads settings from disk. It returns nil when nothing usable is stored.
func LoadSettings() *SavedSettings {
	if settingsStore == nil {
		return nil
	}

	data, err := settingsStore.LoadItem(cfg.Persistence.SettingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil
	}
	return &settings
}

// SaveSettings saves settings to disk
func SaveSettings(s *components.SettingsData) error {
	if settingsStore == nil {
		return nil
	}

	data, err := json.Marshal(SavedSettings{Muted: s.Muted, Fullscreen: s.Fullscreen})
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := settingsStore.SaveItem(cfg.Persistence.SettingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}
