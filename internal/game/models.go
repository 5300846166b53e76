/*
Package game
File: models.go
Description:
    Defines all data structures (Structs) used by the Earth Clicker economy.
    This file serves as the "schema" for the application, mapping directly to
    the 'world.yaml' configuration file and JSON API responses.

    No logic is performed here; this file is strictly for type definitions.
*/

package game

// GameBalance stores global tuning variables loaded from 'world.yaml'.
// These values control the macro-economy of a session.
type GameBalance struct {
	ClickYield     float64 `yaml:"click_yield" json:"click_yield"`           // Points granted per direct click
	StartingPoints float64 `yaml:"starting_points" json:"starting_points"`   // Ledger balance at session start
	TickIntervalMs int     `yaml:"tick_interval_ms" json:"tick_interval_ms"` // Simulation tick period (100 = ten ticks/sec)
}

// UpgradeDefinition is a static, catalog-seeded purchasable region.
// Owning units of it generates points passively every tick.
type UpgradeDefinition struct {
	Key             string  `yaml:"key" json:"key"`                             // Unique ID (e.g., "africa")
	Name            string  `yaml:"name" json:"name"`                           // Display name
	Description     string  `yaml:"description" json:"description"`             // Flavor text (opaque to the simulation)
	BaseCost        float64 `yaml:"base_cost" json:"base_cost"`                 // Price of the first unit
	PointsPerSecond float64 `yaml:"points_per_second" json:"points_per_second"` // Production per unit owned, per second
}

// Upgrade is the mutable per-session state of one catalog entry.
// Owned only ever increases; there is no sell-back.
type Upgrade struct {
	UpgradeDefinition `yaml:",inline"`

	Owned       int     `json:"owned"`        // Units purchased this session
	CurrentCost float64 `json:"current_cost"` // Price of the NEXT unit (floor of previous * 1.15)
}

// MapSettings configures the world-map render pipeline.
// Canvas dimensions are logical units; scaling to a display is the client's job.
type MapSettings struct {
	CanvasWidth  float64 `yaml:"canvas_width" json:"canvas_width"`
	CanvasHeight float64 `yaml:"canvas_height" json:"canvas_height"`

	OwnedFill    string `yaml:"owned_fill" json:"owned_fill"`     // Fill color for regions with owned > 0
	UnownedFill  string `yaml:"unowned_fill" json:"unowned_fill"` // Fill color for everything else
	FeaturesFile string `yaml:"features_file" json:"-"`           // Path to the geometry feed (JSON)

	// LabelAnchors maps UpgradeKey -> [lon, lat] for the owned-count label.
	// These are hand-tuned per region for legibility, NOT computed centroids.
	LabelAnchors map[string][]float64 `yaml:"label_anchors" json:"-"`
}

// ServerSettings configures the HTTP/WebSocket surface.
type ServerSettings struct {
	Addr             string `yaml:"addr"`               // Listen address (e.g., ":8090")
	PulseIntervalMs  int    `yaml:"pulse_interval_ms"`  // How often the hub broadcasts a state pulse
	MarkerLifetimeMs int    `yaml:"marker_lifetime_ms"` // How long a click marker floats before it is swept
}

// EventLogSettings configures the compressed session event log.
type EventLogSettings struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// WorldConfig is the root of 'world.yaml'.
type WorldConfig struct {
	Balance  GameBalance         `yaml:"game_balance"`
	Upgrades []UpgradeDefinition `yaml:"upgrades"`
	Map      MapSettings         `yaml:"world_map"`
	Server   ServerSettings      `yaml:"server"`
	EventLog EventLogSettings    `yaml:"event_log"`
}
