package models

// Documento mínimo de la colección movies (solo lo que usa el join)
type MovieDoc struct {
	MovieID int    `json:"movieId" bson:"movieId"`
	Title   string `json:"title" bson:"title"`
}

// MovieSummary es el resumen por título: promedio y cantidad de ratings.
type MovieSummary struct {
	Title      string  `json:"title"`
	MeanRating float64 `json:"meanRating"`
	NumRatings int     `json:"numRatings"`
}

// Poster de la galería lateral del dashboard.
type Poster struct {
	Title    string `json:"title" yaml:"title"`
	ImageURL string `json:"imageUrl" yaml:"url"`
}

// Película de referencia para la que se calculan recomendaciones.
type Reference struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}
