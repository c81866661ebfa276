package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/tilestep/components"
	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/logger"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
	ShowMasks       bool `json:"showMasks"`

	// scheme -> action -> key names, same shape as the config file
	Bindings map[string]map[string][]string `json:"bindings,omitempty"`
}

// ItemStore is the subset of *gdata.Manager used for settings.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Store reads and writes settings. A Store with no backing ItemStore
// loads nothing and saves nothing.
type Store struct {
	items ItemStore
}

func NewStore(items ItemStore) *Store {
	return &Store{items: items}
}

var store = &Store{}

// InitPersistence opens the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open save data: %w", err)
	}
	store = NewStore(m)
	return nil
}

// DefaultStore returns the store opened by InitPersistence.
func DefaultStore() *Store {
	return store
}

// Load returns nil settings when nothing has been saved yet.
func (s *Store) Load() (*SavedSettings, error) {
	if s == nil || s.items == nil {
		return nil, nil
	}

	data, err := s.items.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	return &settings, nil
}

func (s *Store) Save(settings *SavedSettings) error {
	if s == nil || s.items == nil {
		return nil
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.items.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// LoadSettings loads settings from the default store. Failures are logged
// and reported as no saved settings.
func LoadSettings() *SavedSettings {
	saved, err := store.Load()
	if err != nil {
		logger.L().Warn("could not load settings", "err", err)
		return nil
	}
	return saved
}

// SaveCurrentSettings saves the settings screen values together with any
// saved keybinding overrides.
func SaveCurrentSettings(s *components.SettingsMenuData) {
	saved := &SavedSettings{
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
		ShowMasks:       s.ShowMasks,
	}
	if prev := LoadSettings(); prev != nil {
		saved.Bindings = prev.Bindings
	}
	if err := store.Save(saved); err != nil {
		logger.L().Warn("could not save settings", "err", err)
		return
	}
	s.Dirty = false
}

// SettingsFromSaved fills the settings screen from saved values, keeping
// the defaults already in s when saved is nil.
func SettingsFromSaved(s *components.SettingsMenuData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	s.Fullscreen = saved.Fullscreen
	if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		s.ResolutionIndex = saved.ResolutionIndex
	}
	s.ShowMasks = s.ShowMasks || saved.ShowMasks
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before any scene exists. Display settings are applied
// even when the saved bindings are rejected.
func ApplySavedSettingsGlobal(saved *SavedSettings, display DisplayApplier) error {
	if saved == nil {
		return nil
	}

	cfg.Debug.ShowMasks = cfg.Debug.ShowMasks || saved.ShowMasks

	display.SetFullscreen(saved.Fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		display.SetWindowSize(res.Width, res.Height)
	}

	if err := cfg.Input.ApplyKeyOverrides(saved.Bindings); err != nil {
		return fmt.Errorf("saved bindings: %w", err)
	}
	return nil
}
