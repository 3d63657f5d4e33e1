// Package config provides YAML-based configuration loading for hexes:
// the colour theme, play settings, level source and server options.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/vovakirdan/tui-hexes/internal/core"
)

// Config is the complete application configuration.
type Config struct {
	Theme  Theme  `yaml:"theme"`
	Play   Play   `yaml:"play"`
	Levels Levels `yaml:"levels"`
	Server Server `yaml:"server"`
}

// Theme defines how the board is coloured.
type Theme struct {
	// Palette maps colour indices of a level to terminal colours.
	Palette   []string `yaml:"palette" validate:"min=2,max=10,dive,colour"`
	Cursor    string   `yaml:"cursor" validate:"colour"`
	Selection string   `yaml:"selection" validate:"colour"`
	Highlight string   `yaml:"highlight" validate:"colour"`
	Frame     string   `yaml:"frame" validate:"colour"`
}

// Play defines gameplay settings.
type Play struct {
	// TransitionTicks is how long changed cells stay highlighted after a move.
	TransitionTicks int  `yaml:"transition_ticks" validate:"gte=0,lte=600"`
	ShowHelp        bool `yaml:"show_help"`
	// Permute relabels level colours with the session seed.
	Permute bool `yaml:"permute"`
	// Seed fixes the colour relabelling; 0 picks one per run.
	Seed int64 `yaml:"seed"`
}

// Levels defines where levels come from.
type Levels struct {
	// Dir is a directory of level files; empty uses the built-in levels.
	Dir string `yaml:"dir"`
}

// Server defines the SSH server and metrics endpoint.
type Server struct {
	Host        string `yaml:"host" validate:"required"`
	Port        int    `yaml:"port" validate:"min=1,max=65535"`
	HostKeyPath string `yaml:"host_key_path"`
	// MetricsAddr serves Prometheus metrics when set, e.g. ":9090".
	MetricsAddr string `yaml:"metrics_addr" validate:"omitempty,hostname_port|startswith=:"`
}

// configValidate validates loaded configuration.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	_ = configValidate.RegisterValidation("colour", validateColour)
}

func validateColour(fl validator.FieldLevel) bool {
	_, ok := core.ParseColor(fl.Field().String())
	return ok
}

// Validate checks the configuration for out-of-range values.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Colors resolves the theme palette to terminal colours.
// Unknown names fall back to the default colour.
func (t Theme) Colors() []core.Color {
	out := make([]core.Color, len(t.Palette))
	for i, name := range t.Palette {
		out[i], _ = core.ParseColor(name)
	}
	return out
}

// Color resolves one named theme colour.
func Color(name string) core.Color {
	c, _ := core.ParseColor(name)
	return c
}
