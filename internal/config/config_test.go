package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-hexes/internal/core"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, Default(), cfg)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
theme:
  palette: [red, green, blue]
play:
  transition_ticks: 0
  permute: false
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"red", "green", "blue"}, cfg.Theme.Palette)
	assert.Equal(t, []core.Color{core.ColorRed, core.ColorGreen, core.ColorBlue}, cfg.Theme.Colors())
	assert.Equal(t, 0, cfg.Play.TransitionTicks)
	assert.False(t, cfg.Play.Permute)
	assert.Equal(t, "bright_white", cfg.Theme.Cursor, "unset fields keep defaults")
	assert.Equal(t, 2222, cfg.Server.Port)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"unknown colour":    "theme:\n  palette: [red, teal]\n",
		"palette too short": "theme:\n  palette: [red]\n",
		"ticks too large":   "play:\n  transition_ticks: 1000\n",
		"bad port":          "server:\n  port: 70000\n",
		"bad metrics addr":  "server:\n  metrics_addr: \"not an address\"\n",
		"not yaml":          "theme: [",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	data := []byte("server:\n  port: 2300\n  metrics_addr: \":9100\"\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", FileName), data, 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2300, cfg.Server.Port)
	assert.Equal(t, ":9100", cfg.Server.MetricsAddr)
}
