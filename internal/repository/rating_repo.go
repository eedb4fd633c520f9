package repository

import (
	"context"
	"fmt"

	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRatingRepository lee la colección ratings del ETL (solo lectura).
type MongoRatingRepository struct {
	col *mongo.Collection
}

func NewMongoRatingRepository(db *mongo.Database) *MongoRatingRepository {
	return &MongoRatingRepository{col: db.Collection("ratings")}
}

// helpers de casteo: el ETL a veces guarda int32, int64 o double.
// ok=false si el campo falta o no es numérico.
func asInt(v any) (int, bool) {
	switch x := v.(type) {
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case float64:
		return int(x), true
	default:
		return 0, false
	}
}

func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case float64:
		return int64(x), true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

// ratingFromRaw convierte un documento de ratings; un campo ausente o no
// numérico es un documento mal formado.
func ratingFromRaw(raw bson.M) (models.Rating, error) {
	var rt models.Rating
	var ok bool
	if rt.UserID, ok = asInt(raw["userId"]); !ok {
		return rt, fmt.Errorf("documento %v: userId inválido (%v)", raw["_id"], raw["userId"])
	}
	if rt.ItemID, ok = asInt(raw["movieId"]); !ok {
		return rt, fmt.Errorf("documento %v: movieId inválido (%v)", raw["_id"], raw["movieId"])
	}
	if rt.Rating, ok = asFloat64(raw["rating"]); !ok {
		return rt, fmt.Errorf("documento %v: rating inválido (%v)", raw["_id"], raw["rating"])
	}
	if rt.Timestamp, ok = asInt64(raw["timestamp"]); !ok {
		return rt, fmt.Errorf("documento %v: timestamp inválido (%v)", raw["_id"], raw["timestamp"])
	}
	return rt, nil
}

func (r *MongoRatingRepository) Ratings(ctx context.Context) ([]models.Rating, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1, "userId": 1, "movieId": 1, "rating": 1, "timestamp": 1}).
		SetBatchSize(5000)

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Rating
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		rt, err := ratingFromRaw(raw)
		if err != nil {
			return nil, fmt.Errorf("leyendo ratings de mongo: %w", err)
		}
		out = append(out, rt)
	}
	return out, cur.Err()
}
