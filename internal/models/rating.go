package models

// Fila cruda del archivo de ratings (user_id, item_id, rating, timestamp)
type Rating struct {
	UserID    int     `json:"userId" bson:"userId"`
	ItemID    int     `json:"itemId" bson:"movieId"`
	Rating    float64 `json:"rating" bson:"rating"`
	Timestamp int64   `json:"timestamp" bson:"timestamp"`
}

// Rating ya cruzado con el título de la película (join por item_id)
type JoinedRating struct {
	UserID    int     `json:"userId"`
	ItemID    int     `json:"itemId"`
	Title     string  `json:"title"`
	Rating    float64 `json:"rating"`
	Timestamp int64   `json:"timestamp"`
}
