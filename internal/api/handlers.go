package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dchessher/stock-simulator/internal/render"
	"github.com/dchessher/stock-simulator/internal/series"
	"github.com/dchessher/stock-simulator/pkg/logger"
)

// ChartHandler serves the widget's render state over HTTP. Range
// selection and pointer events arrive as requests; the response of
// each is a fresh render pass.
type ChartHandler struct {
	widget *render.Widget
}

// NewChartHandler creates a chart handler around the widget.
func NewChartHandler(widget *render.Widget) *ChartHandler {
	return &ChartHandler{widget: widget}
}

// GetChart handles GET /api/v1/chart
func (h *ChartHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	view := h.widget.Snapshot()
	logger.RenderPasses.WithLabelValues(string(view.Range)).Inc()
	respondWithJSON(w, http.StatusOK, view)
}

// SelectRange handles GET /api/v1/chart/{range}.
// Switches the active range selection and returns the re-derived
// render state; hover never survives the window change.
func (h *ChartHandler) SelectRange(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	key := series.RangeKey(vars["range"])

	if err := h.widget.SetRange(key); err != nil {
		respondWithError(w, http.StatusBadRequest, "Unknown range: "+string(key))
		return
	}

	view := h.widget.Snapshot()
	logger.RenderPasses.WithLabelValues(string(view.Range)).Inc()
	respondWithJSON(w, http.StatusOK, view)
}

// Hover handles GET /api/v1/chart/{range}/hover?x=..&width=..
// A request with an x parameter is a pointer-move; without one it is
// a pointer-leave. The response carries the resulting hover block.
func (h *ChartHandler) Hover(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	key := series.RangeKey(vars["range"])

	if err := h.widget.SetRange(key); err != nil {
		respondWithError(w, http.StatusBadRequest, "Unknown range: "+string(key))
		return
	}

	q := r.URL.Query()
	if xStr := q.Get("x"); xStr != "" {
		x, err := strconv.ParseFloat(xStr, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid x coordinate")
			return
		}
		width := 0.0
		if wStr := q.Get("width"); wStr != "" {
			width, err = strconv.ParseFloat(wStr, 64)
			if err != nil || width < 0 {
				respondWithError(w, http.StatusBadRequest, "Invalid rendered width")
				return
			}
		}
		h.widget.PointerMove(x, width)
		logger.HoverHitTests.Inc()
	} else {
		h.widget.PointerLeave()
	}

	view := h.widget.Snapshot()
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"range": view.Range,
		"hover": view.Hover,
	})
}

// ListRanges handles GET /api/v1/ranges
func (h *ChartHandler) ListRanges(w http.ResponseWriter, r *http.Request) {
	keys := h.widget.Ranges()
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ranges": keys,
		"active": h.widget.Range(),
	})
}

// Helper functions

func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": message,
		"code":  code,
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
