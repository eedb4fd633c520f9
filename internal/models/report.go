package models

import "time"

// HistogramBin es un bin [Lower, Upper) con su frecuencia; el último incluye Upper.
type HistogramBin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Heatmap de correlaciones entre películas populares (NaN reemplazado por 0).
type Heatmap struct {
	Titles []string    `json:"titles"`
	Values [][]float64 `json:"values"`
}

// Report es todo lo que necesita cualquier presentador; no se modifica después de armado.
type Report struct {
	RunID       string    `json:"runId"`
	GeneratedAt time.Time `json:"generatedAt"`

	RatingsHead []Rating       `json:"ratingsHead"`
	TitlesHead  []MovieDoc     `json:"titlesHead"`
	JoinedHead  []JoinedRating `json:"joinedHead"`

	TotalRatings   int `json:"totalRatings"`
	JoinedRatings  int `json:"joinedRatings"`
	DroppedRatings int `json:"droppedRatings"`
	Users          int `json:"users"`

	Summaries  []MovieSummary `json:"summaries"`
	CountHist  []HistogramBin `json:"countHistogram"`
	MeanHist   []HistogramBin `json:"meanHistogram"`
	MostRated  []MovieSummary `json:"mostRated"`
	Heatmap    Heatmap        `json:"heatmap"`
	MinRatings int            `json:"minRatings"`

	Recommendations []Recommendation `json:"recommendations"`
	Posters         []Poster         `json:"posters"`
}
