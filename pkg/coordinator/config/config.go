// Package config loads the demo application configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/constants"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/navigation"
	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full application configuration.
type Config struct {
	Title            string       `toml:"title"`             // Window title, falls back to the localized app title
	Language         string       `toml:"language"`          // BCP 47 tag or "system"
	StartDestination string       `toml:"start_destination"` // Destination identifier shown first
	Headless         bool         `toml:"headless"`          // Log screens instead of opening a window
	HistoryLimit     int          `toml:"history_limit"`     // Back stack bound, 0 for unbounded, otherwise at least 2
	Log              LogConfig    `toml:"log"`
	Window           WindowConfig `toml:"window"`
	Theme            ThemeConfig  `toml:"theme"`
}

type LogConfig struct {
	Path          string `toml:"path"`           // Log file path, parent directories are created
	Level         string `toml:"level"`          // Application log level
	InternalLevel string `toml:"internal_level"` // Router and host log level
}

type WindowConfig struct {
	Width       int32 `toml:"width"`  // 0 uses the display size
	Height      int32 `toml:"height"` // 0 uses the display size
	Borderless  bool  `toml:"borderless"`
	Resizable   bool  `toml:"resizable"`
	Fullscreen  bool  `toml:"fullscreen"`
	AlwaysOnTop bool  `toml:"always_on_top"`
	Hidden      bool  `toml:"hidden"`
}

type ThemeConfig struct {
	BackgroundColor uint32 `toml:"background_color"` // 0xRRGGBB
	TextColor       uint32 `toml:"text_color"`       // 0xRRGGBB
	AccentColor     uint32 `toml:"accent_color"`     // 0xRRGGBB, icon backdrop
	FontPath        string `toml:"font_path"`        // TTF font, text is skipped when empty
	FontSize        int    `toml:"font_size"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Language:         "system",
		StartDestination: navigation.MainModuleID,
		HistoryLimit:     32,
		Log: LogConfig{
			Level:         "info",
			InternalLevel: "error",
		},
		Window: WindowConfig{
			Resizable: true,
		},
		Theme: ThemeConfig{
			BackgroundColor: 0x1E1E1E,
			TextColor:       0xFFFFFF,
			AccentColor:     0x008080,
			FontSize:        28,
		},
	}
}

// Load reads and validates the TOML file at path. Keys not set in the file
// keep their Default values.
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Parse decodes and validates TOML data.
func Parse(data string) (Config, error) {
	cfg := Default()

	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}

	keys := make([]string, 0, len(undecoded))
	for _, key := range undecoded {
		keys = append(keys, key.String())
	}
	sort.Strings(keys)
	return fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
}

// Validate checks field values.
func (c Config) Validate() error {
	if c.Language != "" && c.Language != "system" {
		if _, err := language.Parse(c.Language); err != nil {
			return fmt.Errorf("%w: language %q: %v", ErrInvalidConfig, c.Language, err)
		}
	}

	if !internal.IsValidLevel(c.Log.Level) {
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	if !internal.IsValidLevel(c.Log.InternalLevel) {
		return fmt.Errorf("%w: log.internal_level %q", ErrInvalidConfig, c.Log.InternalLevel)
	}

	// Back needs the current entry and the one before it.
	if c.HistoryLimit < 0 || c.HistoryLimit == 1 {
		return fmt.Errorf("%w: history_limit must be 0 or at least 2", ErrInvalidConfig)
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("%w: window size must not be negative", ErrInvalidConfig)
	}
	if c.Theme.FontSize < 0 {
		return fmt.Errorf("%w: theme.font_size must not be negative", ErrInvalidConfig)
	}

	for name, color := range map[string]uint32{
		"background_color": c.Theme.BackgroundColor,
		"text_color":       c.Theme.TextColor,
		"accent_color":     c.Theme.AccentColor,
	} {
		if color > 0xFFFFFF {
			return fmt.Errorf("%w: theme.%s 0x%X is not 0xRRGGBB", ErrInvalidConfig, name, color)
		}
	}

	return nil
}

// ApplyEnv overrides c with the HEADLESS and LOG_LEVEL environment
// variables, and with the development window size when ENVIRONMENT=DEV.
func (c Config) ApplyEnv() Config {
	if constants.IsHeadless() {
		c.Headless = true
	}

	if level := envLevel(); level != "" {
		c.Log.Level = level
	}

	if constants.IsDevMode() {
		c.Window.Borderless = false
		c.Window.Fullscreen = false
		c.Window.Width = constants.DevWindowWidth
		c.Window.Height = constants.DevWindowHeight
		if w, ok := constants.EnvInt32(constants.WindowWidthEnvVar); ok {
			c.Window.Width = w
		}
		if h, ok := constants.EnvInt32(constants.WindowHeightEnvVar); ok {
			c.Window.Height = h
		}
	}

	return c
}

func envLevel() string {
	level := constants.LogLevel()
	if !internal.IsValidLevel(level) {
		return ""
	}
	return level
}
