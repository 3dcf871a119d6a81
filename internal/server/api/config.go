package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ayusman/orrery/internal/store"
)

// ConfigHandler reads and writes persisted pipeline settings.
type ConfigHandler struct {
	store *store.Store

	// OnChange, when set, is called for every numeric setting accepted
	// by PUT so the server can apply it to the live pipeline.
	OnChange func(key string, value float64)
}

// NewConfigHandler creates a new ConfigHandler with the given store.
func NewConfigHandler(s *store.Store) *ConfigHandler {
	return &ConfigHandler{store: s}
}

type updateConfigRequest struct {
	SpeedFactor     *float64 `json:"speed_factor,omitempty"`
	CameraID        *int     `json:"camera_id,omitempty"`
	MotionThreshold *float64 `json:"motion_threshold,omitempty"`
}

// ServeHTTP routes /api/config requests.
func (h *ConfigHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.update(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// get handles GET /api/config and returns all stored settings.
func (h *ConfigHandler) get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store.Settings()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// update handles PUT /api/config. Only the fields present in the body
// are touched. Camera changes take effect on restart; the motion
// threshold is applied live.
func (h *ConfigHandler) update(w http.ResponseWriter, r *http.Request) {
	var req updateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.SpeedFactor != nil {
		if *req.SpeedFactor <= 0 {
			writeError(w, http.StatusBadRequest, "speed_factor must be positive")
			return
		}
		if err := h.set(store.SettingSpeedFactor, formatFloat(*req.SpeedFactor), *req.SpeedFactor); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save setting")
			return
		}
	}

	if req.CameraID != nil {
		if *req.CameraID < 0 {
			writeError(w, http.StatusBadRequest, "camera_id must not be negative")
			return
		}
		if err := h.store.SetSetting(store.SettingCameraID, strconv.Itoa(*req.CameraID)); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save setting")
			return
		}
	}

	if req.MotionThreshold != nil {
		if *req.MotionThreshold <= 0 {
			writeError(w, http.StatusBadRequest, "motion_threshold must be positive")
			return
		}
		if err := h.set(store.SettingMotionThresh, formatFloat(*req.MotionThreshold), *req.MotionThreshold); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save setting")
			return
		}
	}

	h.get(w, r)
}

// set persists a numeric setting and notifies the live pipeline.
func (h *ConfigHandler) set(key, stored string, value float64) error {
	if err := h.store.SetSetting(key, stored); err != nil {
		return err
	}
	if h.OnChange != nil {
		h.OnChange(key, value)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
