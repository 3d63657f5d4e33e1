package config

import (
	_ "embed"
)

//go:embed defaults/hexes.yaml
var defaultHexesYAML []byte

// Default returns the hardcoded configuration.
// It matches defaults/hexes.yaml and is used when no file can be read.
func Default() Config {
	return Config{
		Theme: Theme{
			Palette: []string{
				"red", "bright_blue", "yellow", "green", "magenta",
				"cyan", "orange", "white", "bright_red", "gray",
			},
			Cursor:    "bright_white",
			Selection: "bright_yellow",
			Highlight: "bright_cyan",
			Frame:     "gray",
		},
		Play: Play{
			TransitionTicks: 9,
			ShowHelp:        true,
			Permute:         true,
		},
		Server: Server{
			Host:        "0.0.0.0",
			Port:        2222,
			HostKeyPath: ".ssh/hexes_ed25519",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultHexesYAML
}
