package handler

import (
	"net/http"

	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/config"
	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter arma las rutas del dashboard sobre el resultado de un run; el
// catálogo resuelve los ids estables de las referencias.
func NewRouter(res *service.Result, catalog *config.Catalog) http.Handler {
	dashH := NewDashboardHandler(res.Report)
	recH := NewRecommendHandler(res.Recommender, catalog)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", dashH.Page)
	r.Get("/health", Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/summary", dashH.Summary)
		r.Get("/heatmap", dashH.Heatmap)
		r.Get("/recommendations", recH.GetRecommendations)
	})

	r.Get("/ws/recommendations", recH.GetRecommendationsWS)

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
