package handler

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/models"
	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/render"
)

// DashboardHandler sirve el reporte de un run; el reporte no cambia mientras el
// servidor está arriba.
type DashboardHandler struct {
	report *models.Report
}

func NewDashboardHandler(rep *models.Report) *DashboardHandler {
	return &DashboardHandler{report: rep}
}

// Page devuelve el dashboard HTML con los controles de consulta en vivo.
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := render.WriteDashboard(&buf, h.report, true); err != nil {
		log.Printf("[dashboard] error renderizando: %v", err)
		http.Error(w, "error renderizando dashboard", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// @Summary Reporte completo del run
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.Report
// @Router /api/summary [get]
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.report)
}

// @Summary Correlaciones entre películas populares
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.Heatmap
// @Router /api/heatmap [get]
func (h *DashboardHandler) Heatmap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.report.Heatmap)
}
