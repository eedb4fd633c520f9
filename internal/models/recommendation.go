package models

// CorrelationEntry es una fila de la tabla de correlaciones contra una referencia.
type CorrelationEntry struct {
	Title       string  `json:"title"`
	Correlation float64 `json:"correlation"`
	NumRatings  int     `json:"numRatings"`
}

type Recommendation struct {
	Reference  Reference          `json:"reference"`
	MinRatings int                `json:"minRatings"`
	Items      []CorrelationEntry `json:"items"`
}
