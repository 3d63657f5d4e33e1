// Package levels provides the authored level catalogue.
// This package depends on puzzle but puzzle does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hexes/internal/levels/formats"
	"github.com/vovakirdan/tui-hexes/internal/puzzle"
)

//go:embed data/*.yaml
var embedded embed.FS

var (
	// ErrLevelNotFound is returned when no level has the requested ID.
	ErrLevelNotFound = errors.New("levels: level not found")
	// ErrPackMissing is returned when a level has no setup for the requested pack.
	ErrPackMissing = errors.New("levels: level has no setup for pack")
	// ErrNoLevels is returned when a source holds no valid level.
	ErrNoLevels = errors.New("levels: no valid levels found")
)

// Embedded returns the levels shipped with the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// Loader handles loading levels from a file system.
type Loader struct {
	FS     fs.FS
	Logger *log.Logger
}

// NewLoader creates a loader over fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{FS: fsys}
}

// NewDirLoader creates a loader over a directory on disk.
func NewDirLoader(dir string) *Loader {
	return NewLoader(os.DirFS(dir))
}

func (l *Loader) logger() *log.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return log.Default()
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Levels are sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			l.logger().Debug("skipping level file", "path", p, "err", err)
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking levels: %w", err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	level := Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Radius:   parsed.Radius,
		Setups:   parsed.Setups,
		Metadata: parsed.Metadata,
		FilePath: p,
	}
	if err := Validate(level); err != nil {
		return Level{}, fmt.Errorf("validating file %s: %w", p, err)
	}
	return level, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Radius   int
	Setups   map[puzzle.Pack]formats.Setup
	Metadata map[string]string
	FilePath string
}

// Packs returns the packs the level can be played in, in canonical order.
func (l Level) Packs() []puzzle.Pack {
	var out []puzzle.Pack
	for _, p := range puzzle.Packs() {
		if _, ok := l.Setups[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Has reports whether the level has a setup for pack.
func (l Level) Has(pack puzzle.Pack) bool {
	_, ok := l.Setups[pack]
	return ok
}

// SessionConfig returns the puzzle configuration for one pack of the level.
// Colours are relabelled with the given seed.
func (l Level) SessionConfig(pack puzzle.Pack, seed int64) (puzzle.Config, error) {
	setup, ok := l.Setups[pack]
	if !ok {
		return puzzle.Config{}, fmt.Errorf("%w: %s in %s", ErrPackMissing, pack, l.ID)
	}

	layout := make([]int, len(setup.Layout))
	copy(layout, setup.Layout)
	scramble := make([]puzzle.Move, len(setup.Scramble))
	copy(scramble, setup.Scramble)

	return puzzle.Config{
		Radius:   l.Radius,
		Pack:     pack,
		Layout:   layout,
		Colours:  setup.Colours,
		Scramble: scramble,
		Par:      setup.Par,
		Seed:     seed,
		Permute:  true,
	}, nil
}

// NewSession builds a ready-to-play session for one pack of the level.
func (l Level) NewSession(pack puzzle.Pack, seed int64, observer puzzle.Observer) (*puzzle.Session, error) {
	cfg, err := l.SessionConfig(pack, seed)
	if err != nil {
		return nil, err
	}
	cfg.Observer = observer
	return puzzle.NewSession(cfg)
}
