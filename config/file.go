package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// File is the optional YAML config file. Zero fields keep the defaults
// set in init.
type File struct {
	Window struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"window"`
	Splash struct {
		FadeSeconds float32 `yaml:"fade_seconds"`
		HoldSeconds float32 `yaml:"hold_seconds"`
	} `yaml:"splash"`
	Map     string    `yaml:"map"`
	Logging LogConfig `yaml:"logging"`
	// scheme -> action -> key names, e.g. wasd: {select: [Space, E]}
	Bindings map[string]map[string][]string `yaml:"bindings"`
}

// Load reads a YAML config file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML config data.
func Parse(data []byte) (*File, error) {
	f := &File{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return f, nil
}

// Apply copies the file's non-zero values onto the global config.
func (f *File) Apply() error {
	if f.Window.Width > 0 {
		C.Width = f.Window.Width
	}
	if f.Window.Height > 0 {
		C.Height = f.Window.Height
	}
	if f.Splash.FadeSeconds > 0 {
		Splash.FadeSeconds = f.Splash.FadeSeconds
	}
	if f.Splash.HoldSeconds > 0 {
		Splash.HoldSeconds = f.Splash.HoldSeconds
	}
	if f.Map != "" {
		Grid.MapPath = f.Map
	}
	if f.Logging.Level != "" {
		Log.Level = f.Logging.Level
	}
	if f.Logging.Format != "" {
		Log.Format = f.Logging.Format
	}
	return Input.ApplyKeyOverrides(f.Bindings)
}

// Env holds TILESTEP_* environment overrides.
type Env struct {
	ConfigPath string `env:"CONFIG"`
	LogLevel   string `env:"LOG_LEVEL"`
	LogFormat  string `env:"LOG_FORMAT"`
	SkipSplash bool   `env:"SKIP_SPLASH"`
	ShowMasks  bool   `env:"SHOW_MASKS"`
	Width      int    `env:"WIDTH"`
	Height     int    `env:"HEIGHT"`
}

const envPrefix = "TILESTEP_"

// LoadEnv parses the process environment. A non-nil environ replaces it,
// which tests use.
func LoadEnv(environ map[string]string) (Env, error) {
	var e Env
	opts := env.Options{Prefix: envPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return Env{}, fmt.Errorf("parse environment: %w", err)
	}
	return e, nil
}

// Apply copies the environment overrides onto the global config. It runs
// after the config file so the environment wins.
func (e Env) Apply() {
	if e.Width > 0 {
		C.Width = e.Width
	}
	if e.Height > 0 {
		C.Height = e.Height
	}
	if e.LogLevel != "" {
		Log.Level = e.LogLevel
	}
	if e.LogFormat != "" {
		Log.Format = e.LogFormat
	}
	Debug.SkipSplash = Debug.SkipSplash || e.SkipSplash
	Debug.ShowMasks = Debug.ShowMasks || e.ShowMasks
}
