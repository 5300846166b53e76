/*
Package game
File: state.go
Description:
    Holds the mutable session state (ledger + catalog) behind a single
    lock, and loads the static world configuration from YAML.

    The State struct is the only shared mutable surface in the game.
    Every click, tick, and purchase is serialized through State.Mu, so
    a purchase's debit and owned-increment are always observed as one
    atomic unit.
*/

package game

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// State is the single simulation context for a session. It is created
// once at startup and passed by reference to every event handler; no
// package-level singletons.
type State struct {
	// Mu protects Ledger and Catalog. API handlers reading or writing
	// either of them MUST hold this lock.
	Mu sync.RWMutex

	Ledger  *ResourceLedger
	Catalog *UpgradeCatalog
}

// NewState builds a fresh session from the world configuration.
func NewState(cfg WorldConfig) *State {
	return &State{
		Ledger:  NewResourceLedger(cfg.Balance),
		Catalog: NewUpgradeCatalog(cfg.Upgrades),
	}
}

// LoadConfig reads and parses a world.yaml file.
func LoadConfig(path string) (WorldConfig, error) {
	var cfg WorldConfig

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("world.yaml: %w", err)
	}

	if len(cfg.Upgrades) == 0 {
		return cfg, fmt.Errorf("world.yaml: no upgrades defined")
	}
	seen := make(map[string]bool, len(cfg.Upgrades))
	for _, def := range cfg.Upgrades {
		if def.Key == "" {
			return cfg, fmt.Errorf("world.yaml: upgrade %q has no key", def.Name)
		}
		if seen[def.Key] {
			return cfg, fmt.Errorf("world.yaml: duplicate upgrade key %q", def.Key)
		}
		seen[def.Key] = true
		if def.BaseCost <= 0 {
			return cfg, fmt.Errorf("world.yaml: upgrade %q must have a positive base_cost", def.Key)
		}
		if def.PointsPerSecond < 0 {
			return cfg, fmt.Errorf("world.yaml: upgrade %q has negative points_per_second", def.Key)
		}
	}

	// Fallback defaults if YAML is missing these fields.
	if cfg.Balance.TickIntervalMs <= 0 {
		cfg.Balance.TickIntervalMs = 100
	}
	if cfg.Map.CanvasWidth <= 0 || cfg.Map.CanvasHeight <= 0 {
		cfg.Map.CanvasWidth = 800
		cfg.Map.CanvasHeight = 400
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8090"
	}
	if cfg.Server.PulseIntervalMs <= 0 {
		cfg.Server.PulseIntervalMs = 1000
	}
	if cfg.Server.MarkerLifetimeMs <= 0 {
		cfg.Server.MarkerLifetimeMs = 1500
	}

	return cfg, nil
}
