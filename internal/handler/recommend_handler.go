package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/config"
	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/matrix"
	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/models"
	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/service"

	"github.com/gorilla/websocket"
)

var errUnknownReference = errors.New("referencia desconocida")

type RecommendHandler struct {
	svc     *service.RecommendService
	catalog *config.Catalog
}

func NewRecommendHandler(s *service.RecommendService, catalog *config.Catalog) *RecommendHandler {
	return &RecommendHandler{svc: s, catalog: catalog}
}

// parseRecRequest resuelve la referencia: ?id= se busca en el catálogo,
// si no viene se usa ?title= tal cual.
func (h *RecommendHandler) parseRecRequest(r *http.Request) (service.RecRequest, error) {
	q := r.URL.Query()
	k, _ := strconv.Atoi(q.Get("k"))

	if id := strings.TrimSpace(q.Get("id")); id != "" {
		var ref models.Reference
		ok := false
		if h.catalog != nil {
			ref, ok = h.catalog.Reference(id)
		}
		if !ok {
			return service.RecRequest{}, fmt.Errorf("%w: %q", errUnknownReference, id)
		}
		return service.RecRequest{Reference: ref, K: k}, nil
	}

	title := strings.TrimSpace(q.Get("title"))
	if title == "" {
		return service.RecRequest{}, errors.New("id o title es requerido")
	}
	return service.RecRequest{Reference: models.Reference{Title: title}, K: k}, nil
}

func requestErrorStatus(err error) int {
	if errors.Is(err, errUnknownReference) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// @Summary Películas más correlacionadas con un título
// @Tags recommend
// @Produce json
// @Param id query string false "id estable del catálogo (p.ej. star-wars)"
// @Param title query string false "título exacto, con el año (p.ej. Star Wars (1977)); se usa si no viene id"
// @Param k query int false "cantidad de filas (máx 200)"
// @Success 200 {object} models.Recommendation
// @Failure 400 {string} string "id o title requerido"
// @Failure 404 {string} string "referencia o título desconocido"
// @Router /api/recommendations [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseRecRequest(r)
	if err != nil {
		http.Error(w, err.Error(), requestErrorStatus(err))
		return
	}

	rec, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		if errors.Is(err, matrix.ErrUnknownTitle) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rec)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones por WebSocket (start, progress, recommendations|error)
// @Tags recommend
// @Produce json
// @Param id query string false "id estable del catálogo"
// @Param title query string false "título exacto (si no viene id)"
// @Param k query int false "cantidad de filas (máx 200)"
// @Success 200 {object} map[string]interface{}
// @Router /ws/recommendations [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseRecRequest(r)
	if err != nil {
		http.Error(w, err.Error(), requestErrorStatus(err))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade ya respondió con el error HTTP
		return
	}
	defer conn.Close()

	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  fmt.Sprintf("Conexión WS abierta, correlacionando contra %q…", req.Reference.Title),
	})

	start := time.Now()
	rec, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	conn.WriteJSON(map[string]any{
		"type": "progress",
		"msg":  fmt.Sprintf("Correlaciones calculadas en %s (umbral > %d ratings)", time.Since(start).Round(time.Millisecond), rec.MinRatings),
	})

	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"title":       rec.Reference.Title,
		"items":       rec.Items,
		"generatedAt": time.Now(),
	})
}
