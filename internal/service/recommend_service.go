package service

import (
	"context"
	"sort"

	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/matrix"
	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/models"
)

const (
	DefaultK          = 10
	MaxK              = 200 // por seguridad, la tabla completa puede tener cientos de títulos
	DefaultMinRatings = 100
)

// RecommendService responde "películas parecidas a X" sobre una matriz ya armada.
// Solo lee: se puede usar desde varios handlers a la vez.
type RecommendService struct {
	matrix     *matrix.RatingMatrix
	counts     map[string]int
	minRatings int
	defaultK   int
}

func NewRecommendService(m *matrix.RatingMatrix, summaries []models.MovieSummary, minRatings, defaultK int) *RecommendService {
	counts := make(map[string]int, len(summaries))
	for _, s := range summaries {
		counts[s.Title] = s.NumRatings
	}
	if defaultK <= 0 {
		defaultK = DefaultK
	}
	return &RecommendService{
		matrix:     m,
		counts:     counts,
		minRatings: minRatings,
		defaultK:   defaultK,
	}
}

type RecRequest struct {
	Reference models.Reference
	K         int
}

// Recommend arma la tabla de correlaciones de la referencia y la corta en K.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) (*models.Recommendation, error) {
	if req.K <= 0 {
		req.K = s.defaultK
	} else if req.K > MaxK {
		req.K = MaxK
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items, err := CorrelationTable(s.matrix, s.counts, req.Reference.Title, s.minRatings)
	if err != nil {
		return nil, err
	}
	if len(items) > req.K {
		items = items[:req.K]
	}

	return &models.Recommendation{
		Reference:  req.Reference,
		MinRatings: s.minRatings,
		Items:      items,
	}, nil
}

// CorrelationTable: correlación de cada título contra title, sin indefinidos,
// solo títulos con más de minRatings ratings, ordenado por correlación descendente.
// Los empates conservan el orden de columnas de la matriz.
func CorrelationTable(m *matrix.RatingMatrix, counts map[string]int, title string, minRatings int) ([]models.CorrelationEntry, error) {
	corrs, err := m.CorrWith(title)
	if err != nil {
		return nil, err
	}

	items := make([]models.CorrelationEntry, 0, len(corrs))
	for _, c := range corrs {
		n := counts[c.Title]
		if n <= minRatings {
			continue
		}
		items = append(items, models.CorrelationEntry{
			Title:       c.Title,
			Correlation: c.R,
			NumRatings:  n,
		})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Correlation > items[j].Correlation })
	return items, nil
}
