/*
Package main
File: main.go
Description: Server entry point. Loads the world configuration and the
geographic feature feed, starts the simulation heartbeat and the
real-time WebSocket hub, and serves the HTTP API.
*/

package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/terraworks/earth-clicker/internal/api"
	"github.com/terraworks/earth-clicker/internal/eventlog"
	"github.com/terraworks/earth-clicker/internal/game"
	"github.com/terraworks/earth-clicker/internal/geo"
)

func main() {
	configPath := flag.String("config", "world.yaml", "path to the world configuration")
	flag.Parse()

	// 1. Load the static world configuration from YAML
	cfg, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Config Fail: %v", err)
	}

	// 2. Build the session state (ledger + catalog) and simulator
	state := game.NewState(cfg)
	sim := game.NewSimulator(state, time.Duration(cfg.Balance.TickIntervalMs)*time.Millisecond)

	// 3. Load the geographic feature feed. A broken feed is not fatal:
	// the map view degrades to an empty feature list.
	atlas := geo.NewAtlas(loadAtlas(cfg.Map))

	// 4. Open the session event log (nil Writer = disabled, no-op)
	var logw *eventlog.Writer
	if cfg.EventLog.Enabled {
		logw = eventlog.New(cfg.EventLog.Dir, "session")
		defer logw.Close()
	}

	// 5. Initialize and start the real-time WebSocket hub
	hub := api.NewHub()
	go hub.Run()

	markers := api.NewMarkerBoard(time.Duration(cfg.Server.MarkerLifetimeMs) * time.Millisecond)
	server := api.NewServer(state, sim, atlas, markers, hub, logw)

	// 6. THE ECONOMY HEARTBEAT
	// Ten ticks per second by default; each tick drips one tenth of the
	// aggregate per-second rate into the ledger.
	go sim.Run()

	// 7. Pulse + sweep loop: broadcast state to websocket clients and
	// sweep expired click markers.
	go func() {
		pulse := time.NewTicker(time.Duration(cfg.Server.PulseIntervalMs) * time.Millisecond)
		sweep := time.NewTicker(100 * time.Millisecond)
		for {
			select {
			case <-pulse.C:
				server.BroadcastPulse()
				if err := logw.Record("pulse", nil); err != nil {
					log.Printf("eventlog: pulse record: %v", err)
				}
			case <-sweep.C:
				markers.Sweep(time.Now())
			}
		}
	}()

	// 8. Hot-reload logic: SIGHUP refreshes geometry and palette
	// without touching the running economy.
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGHUP)
		for {
			<-sigChan
			log.Println("SIGNAL: Reloading map configuration...")
			newCfg, err := game.LoadConfig(*configPath)
			if err != nil {
				log.Printf("Reload failed, keeping current map: %v", err)
				continue
			}
			atlas.Swap(loadAtlas(newCfg.Map))
		}
	}()

	// 9. Start the server
	log.Printf("EARTH CLICKER server live on %s", cfg.Server.Addr)
	log.Printf("Real-time Hub: Online")

	if err := http.ListenAndServe(cfg.Server.Addr, corsMiddleware(server.Routes())); err != nil {
		log.Fatal(err)
	}
}

// loadAtlas reads the feature feed and builds the binder from map
// settings. Feed problems are logged and degrade to an empty map.
func loadAtlas(settings game.MapSettings) ([]geo.Feature, geo.Binder) {
	features, err := geo.LoadFeatures(settings.FeaturesFile)
	if err != nil {
		log.Printf("Feature feed unavailable, map will be empty: %v", err)
		features = nil
	}

	anchors := make(map[string]geo.Point, len(settings.LabelAnchors))
	for key, coord := range settings.LabelAnchors {
		if len(coord) < 2 {
			log.Printf("Label anchor %q needs [lon, lat], skipping", key)
			continue
		}
		anchors[key] = geo.Point{Lon: coord[0], Lat: coord[1]}
	}

	binder := geo.Binder{
		Palette: geo.Palette{
			OwnedFill:   settings.OwnedFill,
			UnownedFill: settings.UnownedFill,
		},
		Anchors: anchors,
		Width:   settings.CanvasWidth,
		Height:  settings.CanvasHeight,
	}
	return features, binder
}

// corsMiddleware lets browser clients talk to the API across origins.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
