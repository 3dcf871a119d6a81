package api

import (
	"net/http"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	"github.com/ayusman/orrery/internal/texture"
)

// TexturesHandler serves synthesized textures as WebP. The display
// client fetches each texture once at scene load.
type TexturesHandler struct {
	cache *texture.Cache
}

// NewTexturesHandler creates a new TexturesHandler over the cache.
func NewTexturesHandler(c *texture.Cache) *TexturesHandler {
	return &TexturesHandler{cache: c}
}

type listTexturesResponse struct {
	Textures []string `json:"textures"`
}

// ServeHTTP routes texture requests.
// Expected paths: /api/textures or /api/textures/{name}, where name
// may contain a slash (for example saturn/ring).
func (h *TexturesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/api/textures")
	name = strings.TrimPrefix(name, "/")

	if name == "" {
		writeJSON(w, http.StatusOK, listTexturesResponse{Textures: h.cache.Names()})
		return
	}

	img := h.cache.Get(name)
	if img == nil {
		writeError(w, http.StatusNotFound, "Texture not found")
		return
	}

	w.Header().Set("Content-Type", "image/webp")
	w.Header().Set("Cache-Control", "max-age=86400")
	if err := nativewebp.Encode(w, img, nil); err != nil {
		// Headers are already out; nothing useful left to send.
		return
	}
}
