// Package config holds the host settings: window, theme and logging.
// Gameplay constants are compiled in (see game/types) and cannot be set here.
package config

import (
	"errors"
	"fmt"
	"minisnake/ui"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window WindowConfig `yaml:"window"`
	Theme  ThemeConfig  `yaml:"theme"`
	Log    LogConfig    `yaml:"log"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
}

// ThemeConfig colors are "#rrggbb" or "#rrggbbaa".
type ThemeConfig struct {
	Background string `yaml:"background"`
	Grid       string `yaml:"grid"`
	Body       string `yaml:"body"`
	Head       string `yaml:"head"`
	Fruit      string `yaml:"fruit"`
	Text       string `yaml:"text"`
	GameOver   string `yaml:"game_over"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     800,
			Height:    800,
			Title:     "Snake",
			TargetFPS: 60,
		},
		Theme: ThemeConfig{
			Background: "#333333",
			Grid:       "#666666",
			Body:       "#00cc00",
			Head:       "#00ff00",
			Fruit:      "#ff0000",
			Text:       "#ffffff",
			GameOver:   "#ff0000",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path.
// An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Normalize fills zero values back in from the defaults.
func (c *Config) Normalize() {
	d := Default()
	if c.Window.Width <= 0 {
		c.Window.Width = d.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = d.Window.Height
	}
	if strings.TrimSpace(c.Window.Title) == "" {
		c.Window.Title = d.Window.Title
	}
	if c.Window.TargetFPS <= 0 {
		c.Window.TargetFPS = d.Window.TargetFPS
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}

func (c Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: want debug, info, warn or error", c.Log.Level)
	}
	_, err := c.Theme.Resolve()
	return err
}

// Resolve parses every theme color. Empty entries keep the default color.
func (t ThemeConfig) Resolve() (ui.Theme, error) {
	theme := ui.DefaultTheme()
	fields := []struct {
		name string
		hex  string
		dst  *ui.Color
	}{
		{"background", t.Background, &theme.Background},
		{"grid", t.Grid, &theme.Grid},
		{"body", t.Body, &theme.Body},
		{"head", t.Head, &theme.Head},
		{"fruit", t.Fruit, &theme.Fruit},
		{"text", t.Text, &theme.Text},
		{"game_over", t.GameOver, &theme.GameOver},
	}
	var errs []error
	for _, f := range fields {
		if strings.TrimSpace(f.hex) == "" {
			continue
		}
		col, err := ParseColor(f.hex)
		if err != nil {
			errs = append(errs, fmt.Errorf("theme.%s: %w", f.name, err))
			continue
		}
		*f.dst = col
	}
	return theme, errors.Join(errs...)
}

var ErrBadColor = errors.New("color must be #rrggbb or #rrggbbaa")

func ParseColor(s string) (ui.Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return ui.Color{}, ErrBadColor
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return ui.Color{}, ErrBadColor
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return ui.Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
