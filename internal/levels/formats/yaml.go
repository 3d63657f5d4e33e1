// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-hexes/internal/puzzle"
)

// levelValidate checks authored level files before they are decoded further.
var levelValidate *validator.Validate

func init() {
	levelValidate = validator.New()
	_ = levelValidate.RegisterValidation("pack", validatePackName)
	_ = levelValidate.RegisterValidation("layout", validateLayout)
}

func validatePackName(fl validator.FieldLevel) bool {
	_, err := puzzle.ParsePack(fl.Field().String())
	return err == nil
}

func validateLayout(fl validator.FieldLevel) bool {
	_, err := puzzle.ParseLayout(fl.Field().String())
	return err == nil
}

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string              `yaml:"id" validate:"required,max=32"`
	Name     string              `yaml:"name" validate:"max=64"`
	Radius   int                 `yaml:"radius" validate:"gte=0,lte=6"`
	Packs    map[string]YAMLPack `yaml:"packs" validate:"required,min=1,max=4,dive,keys,pack,endkeys"`
	Metadata map[string]string   `yaml:"metadata,omitempty"`
}

// YAMLPack is the setup of a level for one pack.
type YAMLPack struct {
	Layout   string `yaml:"layout" validate:"required,layout"`
	Scramble string `yaml:"scramble"`
	Colours  int    `yaml:"colours,omitempty" validate:"gte=0,lte=10"`
	Par      int    `yaml:"par,omitempty" validate:"gte=0"`
}

// Setup is a parsed per-pack setup.
type Setup struct {
	Layout   []int
	Scramble []puzzle.Move
	Colours  int
	Par      int
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Radius   int
	Setups   map[puzzle.Pack]Setup
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := levelValidate.Struct(yl); err != nil {
		return Level{}, fmt.Errorf("level %q: %w", yl.ID, err)
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	level := Level{
		ID:       yl.ID,
		Name:     name,
		Radius:   yl.Radius,
		Setups:   make(map[puzzle.Pack]Setup, len(yl.Packs)),
		Metadata: yl.Metadata,
	}

	// Deterministic order keeps error messages stable.
	keys := make([]string, 0, len(yl.Packs))
	for k := range yl.Packs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		yp := yl.Packs[k]
		pack, err := puzzle.ParsePack(k)
		if err != nil {
			return Level{}, err
		}
		layout, err := puzzle.ParseLayout(yp.Layout)
		if err != nil {
			return Level{}, fmt.Errorf("level %q pack %s: %w", yl.ID, k, err)
		}
		scramble, err := puzzle.ParseMoves(yp.Scramble)
		if err != nil {
			return Level{}, fmt.Errorf("level %q pack %s scramble: %w", yl.ID, k, err)
		}
		if _, dup := level.Setups[pack]; dup {
			return Level{}, fmt.Errorf("level %q: pack %s listed twice", yl.ID, strings.ToLower(k))
		}
		level.Setups[pack] = Setup{
			Layout:   layout,
			Scramble: scramble,
			Colours:  yp.Colours,
			Par:      yp.Par,
		}
	}

	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
