package repository

import (
	"context"

	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoMovieRepository struct {
	col *mongo.Collection
}

func NewMongoMovieRepository(db *mongo.Database) *MongoMovieRepository {
	return &MongoMovieRepository{col: db.Collection("movies")}
}

// Movies devuelve (movieId, title) ordenado por movieId, como el CSV de títulos.
func (r *MongoMovieRepository) Movies(ctx context.Context) ([]models.MovieDoc, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0, "movieId": 1, "title": 1}).
		SetSort(bson.D{{Key: "movieId", Value: 1}})

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.MovieDoc
	for cur.Next(ctx) {
		var m models.MovieDoc
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}
