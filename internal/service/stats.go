package service

import (
	"math"
	"sort"

	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/models"
)

// Join cruza ratings con títulos por item_id (inner join). Los ratings cuyo
// item_id no tiene título se descartan; se devuelve cuántos fueron.
func Join(ratings []models.Rating, movies []models.MovieDoc) ([]models.JoinedRating, int) {
	titles := make(map[int]string, len(movies))
	for _, m := range movies {
		titles[m.MovieID] = m.Title
	}

	out := make([]models.JoinedRating, 0, len(ratings))
	dropped := 0
	for _, r := range ratings {
		title, ok := titles[r.ItemID]
		if !ok {
			dropped++
			continue
		}
		out = append(out, models.JoinedRating{
			UserID:    r.UserID,
			ItemID:    r.ItemID,
			Title:     title,
			Rating:    r.Rating,
			Timestamp: r.Timestamp,
		})
	}
	return out, dropped
}

// Summarize agrupa por título: promedio y cantidad de ratings. Salida ordenada por título.
func Summarize(joined []models.JoinedRating) []models.MovieSummary {
	type acc struct {
		sum float64
		n   int
	}
	groups := make(map[string]*acc)
	for _, r := range joined {
		a := groups[r.Title]
		if a == nil {
			a = &acc{}
			groups[r.Title] = a
		}
		a.sum += r.Rating
		a.n++
	}

	out := make([]models.MovieSummary, 0, len(groups))
	for title, a := range groups {
		out = append(out, models.MovieSummary{
			Title:      title,
			MeanRating: a.sum / float64(a.n),
			NumRatings: a.n,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

// TopRated devuelve los n títulos con más ratings (empates por título).
func TopRated(summaries []models.MovieSummary, n int) []models.MovieSummary {
	out := make([]models.MovieSummary, len(summaries))
	copy(out, summaries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].NumRatings != out[j].NumRatings {
			return out[i].NumRatings > out[j].NumRatings
		}
		return out[i].Title < out[j].Title
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// PopularTitles son los títulos con estrictamente más de minRatings ratings.
func PopularTitles(summaries []models.MovieSummary, minRatings int) []string {
	var out []string
	for _, s := range summaries {
		if s.NumRatings > minRatings {
			out = append(out, s.Title)
		}
	}
	return out
}

// Histogram reparte values en bins de igual ancho entre min y max. El último bin
// es cerrado a derecha para que el máximo caiga adentro.
func Histogram(values []float64, bins int) []models.HistogramBin {
	if len(values) == 0 || bins <= 0 {
		return nil
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	width := (hi - lo) / float64(bins)

	out := make([]models.HistogramBin, bins)
	for i := range out {
		out[i].Lower = lo + float64(i)*width
		out[i].Upper = lo + float64(i+1)*width
	}
	out[bins-1].Upper = hi

	for _, v := range values {
		i := int((v - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		if i < 0 {
			i = 0
		}
		out[i].Count++
	}
	return out
}
