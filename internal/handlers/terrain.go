package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hallwright/scenario-workbench/pkg/scenario"
	"github.com/hallwright/scenario-workbench/pkg/terrain"
)

// TerrainHandler renders the generated map background for a seed.
// format selects the representation: svg (default), json geometry, or
// png. Identical seeds always return identical bodies.
type TerrainHandler struct {
	logger *slog.Logger
}

func NewTerrainHandler(logger *slog.Logger) *TerrainHandler {
	return &TerrainHandler{logger: logger}
}

func (h *TerrainHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	seed := int64(scenario.DefaultMapSeed)
	if raw := q.Get("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "Invalid seed", http.StatusBadRequest)
			return
		}
		seed = parsed
	}

	style := scenario.MapStyle(q.Get("style"))
	if style == "" {
		style = scenario.StyleVintage
	}

	layout := terrain.Generate(seed)

	switch q.Get("format") {
	case "", "svg":
		w.Header().Set("Content-Type", "image/svg+xml")
		if _, err := w.Write([]byte(terrain.RenderSVG(layout, style))); err != nil {
			h.logger.Error("Error writing terrain SVG", "error", err)
		}
	case "json":
		writeJSON(w, h.logger, http.StatusOK, layout)
	case "png":
		width, height := 1000, 800
		if raw := q.Get("width"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 4000 {
				width = parsed
			}
		}
		if raw := q.Get("height"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 4000 {
				height = parsed
			}
		}
		w.Header().Set("Content-Type", "image/png")
		if err := terrain.RenderPNG(w, layout, style, width, height); err != nil {
			h.logger.Error("Error writing terrain PNG", "error", err)
		}
	default:
		http.Error(w, "Unknown format; use svg, json or png", http.StatusBadRequest)
	}
}
