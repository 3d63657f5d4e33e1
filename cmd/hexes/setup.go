package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hexes/internal/config"
	"github.com/vovakirdan/tui-hexes/internal/core"
	"github.com/vovakirdan/tui-hexes/internal/levels"
	"github.com/vovakirdan/tui-hexes/internal/registry"
	"github.com/vovakirdan/tui-hexes/internal/storage"
)

// env is what every command shares: configuration and the level catalogue.
type env struct {
	config  config.Config
	catalog *levels.Catalog
}

// loadEnv reads the configuration and the levels named by the flags.
func loadEnv() (env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return env{}, err
	}
	if flagSeed != 0 {
		cfg.Play.Seed = flagSeed
	}

	dir := flagLevels
	if dir == "" {
		dir = cfg.Levels.Dir
	}
	catalog, err := levels.Open(dir)
	if err != nil {
		return env{}, fmt.Errorf("loading levels: %w", err)
	}
	log.Debug("levels loaded", "count", catalog.Len(), "dir", dir)

	return env{config: cfg, catalog: catalog}, nil
}

// deps returns the factory dependencies for local play.
func (e env) deps() registry.Deps {
	return registry.Deps{Levels: e.catalog, Config: e.config, Events: core.NopEvents{}}
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the results database; play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open results database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// checkPack fails with a hint when id is not a registered pack.
func checkPack(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown pack %q (run 'hexes list' to see available packs)", id)
	}
	return nil
}
