// Package httpapi is the debug/spectator HTTP surface spec.md §6
// calls out as an external, optional collaborator — never imported by
// sim/effects/ai/engine themselves. Grounded on fight-club-go's
// internal/api/router.go NewRouter factory (pure, side-effect-free,
// httptest-friendly) and its chi+cors middleware stack.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/duskforge/dungeonturn/component"
	"github.com/duskforge/dungeonturn/sim"
)

// GameSource is the minimal read-only view the HTTP surface needs
// into a running Game, kept as an interface (rather than importing
// *sim.Game directly everywhere) so handlers are testable against a
// fake.
type GameSource interface {
	Snapshot() GameSnapshot
}

// GameSnapshot is a point-in-time, render-safe copy of the fields the
// debug surface exposes.
type GameSnapshot struct {
	TurnCount int
	State     component.GameStateKind
	Messages  []component.Msg
}

// RouterConfig bundles NewRouter's dependencies, mirroring
// fight-club-go's RouterConfig dependency-injection shape.
type RouterConfig struct {
	Source         GameSource
	CORSOrigins    []string
	DisableLogging bool
}

// NewRouter builds the HTTP router. It is pure: no goroutines, no
// listeners, safe to drive with httptest.NewServer.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	if !cfg.DisableLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	origins := cfg.CORSOrigins
	if origins == nil {
		origins = []string{"http://localhost:*", "http://127.0.0.1:*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/state", func(w http.ResponseWriter, r *http.Request) {
		snap := cfg.Source.Snapshot()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(snap)
	})

	r.Get("/log", func(w http.ResponseWriter, r *http.Request) {
		snap := cfg.Source.Snapshot()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = LogView(snap.TurnCount, snap.Messages).Render(r.Context(), w)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// gameAdapter adapts *sim.Game to GameSource. Declared here rather
// than in sim/ itself, since sim must never import an HTTP package.
type gameAdapter struct {
	g *sim.Game
}

// NewGameAdapter wraps a live Game for the debug HTTP surface.
func NewGameAdapter(g *sim.Game) GameSource {
	return gameAdapter{g: g}
}

func (a gameAdapter) Snapshot() GameSnapshot {
	var messages []component.Msg
	if a.g.Log != nil {
		messages = a.g.Log.TurnMessages()
	}
	return GameSnapshot{TurnCount: a.g.TurnCount, State: a.g.State, Messages: messages}
}
