// Package server provides the HTTP server for the orrery scene.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/orrery/internal/app"
	"github.com/ayusman/orrery/internal/server/api"
	"github.com/ayusman/orrery/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	App       *app.App
}

// Server is the HTTP surface over the running pipeline: scene snapshots
// over WebSocket, textures, the camera preview stream, and settings.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.App != nil {
		s.mux.HandleFunc("/api/state", s.handleState)

		texturesHandler := api.NewTexturesHandler(s.config.App.Textures())
		s.mux.Handle("/api/textures", texturesHandler)
		s.mux.Handle("/api/textures/", texturesHandler)

		s.mux.Handle("/api/scene", NewSceneHandler(s.config.App))
		s.mux.Handle("/api/landmarks", NewLandmarksHandler(s.config.App))
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.App.Camera()))
	}

	if s.config.Store != nil {
		s.mux.Handle("/api/events", api.NewEventsHandler(s.config.Store))

		configHandler := api.NewConfigHandler(s.config.Store)
		if s.config.App != nil {
			configHandler.OnChange = s.applySetting
		}
		s.mux.Handle("/api/config", configHandler)
	}

	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// applySetting pushes a persisted setting into the live pipeline where
// that is possible without a restart.
func (s *Server) applySetting(key string, value float64) {
	switch key {
	case store.SettingMotionThresh:
		s.config.App.SetMotionThreshold(value)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"status": "ok",
		"uptime": time.Since(s.start).String(),
	}
	if s.config.App != nil {
		response["pipeline"] = s.config.App.Describe()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// handleState handles GET requests to /api/state, reporting the current
// gesture classification and whether capture is enabled.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	bodies := s.config.App.Engine().Bodies()
	names := make([]string, 0, len(bodies))
	for _, b := range bodies {
		names = append(names, b.Name)
	}

	response := map[string]any{
		"state":   s.config.App.State().String(),
		"enabled": s.config.App.IsEnabled(),
		"bodies":  names,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
