/*
Package api
File: handlers.go
Description:
    HTTP handlers for the REST API. These functions process incoming
    JSON requests, drive the economy through the Simulator, and return
    JSON responses.

    Key Responsibilities:
    - Input Validation (Is the JSON valid? Does the upgrade exist?)
    - State Modification (Clicks and purchases via the Simulator)
    - Thread Safety (Read access under State.Mu to prevent races)
*/

package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/terraworks/earth-clicker/internal/eventlog"
	"github.com/terraworks/earth-clicker/internal/game"
	"github.com/terraworks/earth-clicker/internal/geo"
)

// Server owns the serving surface: it holds references to the session
// state and simulator (never copies) plus the presentation-side pieces
// (map atlas, marker board, hub, event log).
type Server struct {
	State   *game.State
	Sim     *game.Simulator
	Atlas   *geo.Atlas
	Markers *MarkerBoard
	Hub     *Hub
	Log     *eventlog.Writer
}

// NewServer wires a server and registers the hub's inbound message
// handler so websocket clicks behave exactly like HTTP clicks.
func NewServer(state *game.State, sim *game.Simulator, atlas *geo.Atlas, markers *MarkerBoard, hub *Hub, logw *eventlog.Writer) *Server {
	s := &Server{
		State:   state,
		Sim:     sim,
		Atlas:   atlas,
		Markers: markers,
		Hub:     hub,
		Log:     logw,
	}
	hub.OnClientMessage = s.handleClientMessage
	return s
}

// Request/Response DTOs.

type ClickRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PurchaseRequest struct {
	UpgradeKey string `json:"upgrade_key"`
}

type UpgradeView struct {
	Key             string  `json:"key"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Owned           int     `json:"owned"`
	CurrentCost     float64 `json:"current_cost"`
	CostDisplay     string  `json:"cost_display"`
	PointsPerSecond float64 `json:"points_per_second"`
	CanAfford       bool    `json:"can_afford"`
}

type StateResponse struct {
	Points          float64       `json:"points"`
	PointsDisplay   string        `json:"points_display"`
	ClickYield      float64       `json:"click_yield"`
	PointsPerSecond float64       `json:"points_per_second"`
	Upgrades        []UpgradeView `json:"upgrades"`
}

type ClickResponse struct {
	Points        float64     `json:"points"`
	PointsDisplay string      `json:"points_display"`
	Marker        ClickMarker `json:"marker"`
}

type PurchaseResponse struct {
	Key           string  `json:"key"`
	Owned         int     `json:"owned"`
	NextCost      float64 `json:"next_cost"`
	Points        float64 `json:"points"`
	PointsDisplay string  `json:"points_display"`
}

type MapResponse struct {
	Width    float64             `json:"width"`
	Height   float64             `json:"height"`
	Features []geo.RenderFeature `json:"features"`
}

// StatePulse is the payload broadcast to websocket clients every
// pulse interval.
type StatePulse struct {
	Points          float64 `json:"points"`
	PointsDisplay   string  `json:"points_display"`
	PointsPerSecond float64 `json:"points_per_second"`
}

// Routes builds the HTTP mux for the server.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Information endpoints
	mux.HandleFunc("/api/state", s.HandleGetState)
	mux.HandleFunc("/api/map", s.HandleGetMap)
	mux.HandleFunc("/api/markers", s.HandleGetMarkers)

	// Action endpoints
	mux.HandleFunc("/api/click", s.HandleClick)
	mux.HandleFunc("/api/purchase", s.HandlePurchase)

	// Real-time endpoint
	mux.HandleFunc("/ws", s.Hub.ServeWS)

	return mux
}

// HandleGetState returns the full render-facing snapshot: balance,
// click yield, aggregate rate, and per-upgrade state.
func (s *Server) HandleGetState(w http.ResponseWriter, r *http.Request) {
	s.State.Mu.RLock()
	defer s.State.Mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.stateResponseLocked())
}

// stateResponseLocked builds a StateResponse. Caller holds State.Mu.
func (s *Server) stateResponseLocked() StateResponse {
	balance := s.State.Ledger.Balance
	resp := StateResponse{
		Points:          balance,
		PointsDisplay:   FormatPoints(balance),
		ClickYield:      s.State.Ledger.ClickYield,
		PointsPerSecond: s.State.Catalog.AggregateRate(),
	}
	for _, u := range s.State.Catalog.Entries() {
		resp.Upgrades = append(resp.Upgrades, UpgradeView{
			Key:             u.Key,
			Name:            u.Name,
			Description:     u.Description,
			Owned:           u.Owned,
			CurrentCost:     u.CurrentCost,
			CostDisplay:     FormatPoints(u.CurrentCost),
			PointsPerSecond: u.PointsPerSecond,
			CanAfford:       s.State.Ledger.CanAfford(u.CurrentCost),
		})
	}
	return resp
}

// HandleClick credits one click. The body is optional; when present
// it carries the click position used for the feedback marker.
func (s *Server) HandleClick(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ClickRequest
	// A missing or malformed body still counts as a click at (0,0).
	_ = json.NewDecoder(r.Body).Decode(&req)

	resp := s.click(req)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// click is the shared click path for HTTP and websocket events.
func (s *Server) click(req ClickRequest) ClickResponse {
	yield := s.State.Ledger.ClickYield // immutable after session start
	balance := s.Sim.Click()

	marker := s.Markers.Spawn(yield, req.X, req.Y)
	s.Hub.Broadcast("click_marker", marker)
	if err := s.Log.Record("click", marker); err != nil {
		logDrop("click", err)
	}

	return ClickResponse{
		Points:        balance,
		PointsDisplay: FormatPoints(balance),
		Marker:        marker,
	}
}

// HandlePurchase buys one unit of an upgrade. Maps the purchase
// outcome onto HTTP: 404 for unknown keys, 402 when the ledger
// cannot cover the price.
func (s *Server) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var req PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	res := s.Sim.Purchase(req.UpgradeKey)
	switch res.Outcome {
	case game.UnknownUpgrade:
		http.Error(w, "Unknown upgrade", http.StatusNotFound)
		return
	case game.InsufficientFunds:
		http.Error(w, "Insufficient points", http.StatusPaymentRequired)
		return
	}

	s.State.Mu.RLock()
	balance := s.State.Ledger.Balance
	s.State.Mu.RUnlock()

	resp := PurchaseResponse{
		Key:           res.Key,
		Owned:         res.Owned,
		NextCost:      res.NextCost,
		Points:        balance,
		PointsDisplay: FormatPoints(balance),
	}

	s.Hub.Broadcast("purchase", resp)
	if err := s.Log.Record("purchase", resp); err != nil {
		logDrop("purchase", err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleGetMap returns the render-ready feature list: every region
// projected onto the logical canvas and colored by ownership.
func (s *Server) HandleGetMap(w http.ResponseWriter, r *http.Request) {
	s.State.Mu.RLock()
	features := s.Atlas.Render(s.State.Catalog)
	s.State.Mu.RUnlock()

	width, height := s.Atlas.Size()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MapResponse{
		Width:    width,
		Height:   height,
		Features: features,
	})
}

// HandleGetMarkers returns the click markers still inside their
// lifetime window.
func (s *Server) HandleGetMarkers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.Markers.Active(time.Now()))
}

// BroadcastPulse pushes the current balance and rate to all websocket
// clients. Called by the server loop on the pulse interval.
func (s *Server) BroadcastPulse() {
	s.State.Mu.RLock()
	pulse := StatePulse{
		Points:          s.State.Ledger.Balance,
		PointsDisplay:   FormatPoints(s.State.Ledger.Balance),
		PointsPerSecond: s.State.Catalog.AggregateRate(),
	}
	s.State.Mu.RUnlock()

	s.Hub.Broadcast("state_pulse", pulse)
}

// handleClientMessage routes inbound websocket messages. Only clicks
// are accepted from clients; everything else is ignored.
func (s *Server) handleClientMessage(clientID string, msg Message) {
	if msg.Type != "click" {
		return
	}
	var req ClickRequest
	if len(msg.Payload) > 0 {
		_ = json.Unmarshal(msg.Payload, &req)
	}
	s.click(req)
}

// logDrop reports an event-log write failure. The event itself is
// never retried; the log is best-effort telemetry.
func logDrop(event string, err error) {
	log.Printf("eventlog: dropping %s record: %v", event, err)
}
