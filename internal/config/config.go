package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds application configuration.
type Config struct {
	DnotePath         string `toml:"dnote_path"`
	TickRate          int    `toml:"tick_rate"`
	FrameRate         int    `toml:"frame_rate"`
	MaxActionsPerTick int    `toml:"max_actions_per_tick"`
	Markdown          bool   `toml:"markdown"`
	LogFile           string `toml:"log_file"`

	// Keybindings maps a mode name to sequence/action-name pairs.
	Keybindings map[string]map[string]string `toml:"keybindings,omitempty"`
}

// Defaults
const (
	DefaultDnotePath         = "dnote"
	DefaultTickRate          = 4
	DefaultFrameRate         = 30
	DefaultMaxActionsPerTick = 256
	FileName                 = "config.toml"
	LogFileName              = "dnotetea.log"
)

// DefaultConfigDir returns the platform-appropriate config directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "dnotetea")
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, ".config", "dnotetea")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "dnotetea")
		}
		return filepath.Join(home, ".config", "dnotetea")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "dnotetea")
		}
		return filepath.Join(home, ".config", "dnotetea")
	}
}

// DefaultPath is the config file consulted when no path is given.
func DefaultPath() string {
	return filepath.Join(DefaultConfigDir(), FileName)
}

// Load reads the default config file, returning defaults if it is missing.
func Load() (*Config, error) {
	return LoadFile(DefaultPath())
}

// LoadFile reads the config at path. A missing file yields defaults; fields
// absent from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(expandPath(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var sme *toml.StrictMissingError
		if errors.As(err, &sme) {
			return nil, fmt.Errorf("failed to parse config %s:\n%s", path, sme.String())
		}
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// Save writes the config to path, creating its directory.
func Save(cfg *Config, path string) error {
	path = expandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename config: %w", err)
	}
	return nil
}

// TickInterval converts the tick rate to the delay between ticks.
func (c *Config) TickInterval() time.Duration {
	return rateToInterval(c.TickRate, DefaultTickRate)
}

// FrameInterval converts the frame rate to the delay between frames.
func (c *Config) FrameInterval() time.Duration {
	return rateToInterval(c.FrameRate, DefaultFrameRate)
}

// LogPath returns the file debug logs go to.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return expandPath(c.LogFile)
	}
	return filepath.Join(DefaultConfigDir(), LogFileName)
}

// BinaryPath returns the dnote executable with "~" expanded.
func (c *Config) BinaryPath() string {
	return expandPath(c.DnotePath)
}

func rateToInterval(rate, fallback int) time.Duration {
	if rate <= 0 {
		rate = fallback
	}
	return time.Second / time.Duration(rate)
}

// expandPath replaces a leading "~" with the user's home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func defaults() *Config {
	return &Config{
		DnotePath:         DefaultDnotePath,
		TickRate:          DefaultTickRate,
		FrameRate:         DefaultFrameRate,
		MaxActionsPerTick: DefaultMaxActionsPerTick,
		Markdown:          true,
	}
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.DnotePath) == "" {
		cfg.DnotePath = DefaultDnotePath
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = DefaultFrameRate
	}
	if cfg.MaxActionsPerTick <= 0 {
		cfg.MaxActionsPerTick = DefaultMaxActionsPerTick
	}
}
