package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/matrix"
	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// RatingSource entrega los ratings crudos (TSV o Mongo).
type RatingSource interface {
	Ratings(ctx context.Context) ([]models.Rating, error)
}

// TitleSource entrega la tabla item_id -> título (CSV remoto/local o Mongo).
type TitleSource interface {
	Movies(ctx context.Context) ([]models.MovieDoc, error)
}

const headRows = 5

type PipelineOptions struct {
	MinRatings int
	TopN       int
	MostRatedN int
	HistBins   int
}

// PipelineService corre la derivación completa: carga, join, resumen, matriz,
// correlaciones. No guarda nada; cada Run recalcula desde las fuentes.
type PipelineService struct {
	ratings    RatingSource
	titles     TitleSource
	references []models.Reference
	posters    []models.Poster
	opts       PipelineOptions
}

func NewPipelineService(
	ratings RatingSource,
	titles TitleSource,
	references []models.Reference,
	posters []models.Poster,
	opts PipelineOptions,
) *PipelineService {
	if opts.MinRatings < 0 {
		opts.MinRatings = DefaultMinRatings
	}
	if opts.TopN <= 0 {
		opts.TopN = DefaultK
	}
	if opts.MostRatedN <= 0 {
		opts.MostRatedN = 10
	}
	if opts.HistBins <= 0 {
		opts.HistBins = 70
	}
	return &PipelineService{
		ratings:    ratings,
		titles:     titles,
		references: references,
		posters:    posters,
		opts:       opts,
	}
}

// Result es la salida de un Run: el reporte para los presentadores y el
// recomendador para consultas ad hoc desde el dashboard.
type Result struct {
	Report      *models.Report
	Recommender *RecommendService
}

func (s *PipelineService) load(ctx context.Context) ([]models.Rating, []models.MovieDoc, error) {
	var ratings []models.Rating
	var movies []models.MovieDoc

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ratings, err = s.ratings.Ratings(gctx)
		if err != nil {
			return fmt.Errorf("cargando ratings: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		movies, err = s.titles.Movies(gctx)
		if err != nil {
			return fmt.Errorf("cargando títulos: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return ratings, movies, nil
}

func (s *PipelineService) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	ratings, movies, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	log.Printf("[pipeline] %d ratings, %d títulos cargados en %s", len(ratings), len(movies), time.Since(start))

	joined, dropped := Join(ratings, movies)
	if dropped > 0 {
		log.Printf("[pipeline] %d ratings sin título descartados en el join", dropped)
	}

	summaries := Summarize(joined)

	m := matrix.Build(joined)
	if d := m.Duplicates(); d > 0 {
		log.Printf("[pipeline] %d pares (usuario, título) repetidos promediados en la matriz", d)
	}
	log.Printf("[pipeline] matriz %d usuarios x %d títulos (%d celdas)", len(m.Users()), len(m.Titles()), m.Len())

	rec := NewRecommendService(m, summaries, s.opts.MinRatings, s.opts.TopN)

	recs := make([]models.Recommendation, 0, len(s.references))
	for _, ref := range s.references {
		r, err := rec.Recommend(ctx, RecRequest{Reference: ref, K: s.opts.TopN})
		if err != nil {
			return nil, fmt.Errorf("recomendaciones para %s: %w", ref.ID, err)
		}
		recs = append(recs, *r)
	}

	heatmap, err := buildHeatmap(m, summaries, s.opts.MinRatings)
	if err != nil {
		return nil, err
	}

	counts := make([]float64, len(summaries))
	means := make([]float64, len(summaries))
	for i, sm := range summaries {
		counts[i] = float64(sm.NumRatings)
		means[i] = sm.MeanRating
	}

	report := &models.Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now(),

		RatingsHead: head(ratings, headRows),
		TitlesHead:  head(movies, headRows),
		JoinedHead:  head(joined, headRows),

		TotalRatings:   len(ratings),
		JoinedRatings:  len(joined),
		DroppedRatings: dropped,
		Users:          len(m.Users()),

		Summaries:  summaries,
		CountHist:  Histogram(counts, s.opts.HistBins),
		MeanHist:   Histogram(means, s.opts.HistBins),
		MostRated:  TopRated(summaries, s.opts.MostRatedN),
		Heatmap:    heatmap,
		MinRatings: s.opts.MinRatings,

		Recommendations: recs,
		Posters:         s.posters,
	}

	log.Printf("[pipeline] run %s completado en %s", report.RunID, time.Since(start))
	return &Result{Report: report, Recommender: rec}, nil
}

func buildHeatmap(m *matrix.RatingMatrix, summaries []models.MovieSummary, minRatings int) (models.Heatmap, error) {
	titles := PopularTitles(summaries, minRatings)
	values, err := m.CorrMatrix(titles)
	if err != nil {
		return models.Heatmap{}, err
	}
	for _, row := range values {
		for j, v := range row {
			if math.IsNaN(v) {
				row[j] = 0
			}
		}
	}
	return models.Heatmap{Titles: titles, Values: values}, nil
}

func head[T any](rows []T, n int) []T {
	if len(rows) < n {
		n = len(rows)
	}
	out := make([]T, n)
	copy(out, rows[:n])
	return out
}
