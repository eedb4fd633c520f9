package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Akshat-07-ux/OnlineRecommendationSystem/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo abre el cliente, hace ping y devuelve la base configurada.
// Quien llama es dueño del cliente y debe cerrarlo con Disconnect.
func ConnectMongo(ctx context.Context, cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("[mongo] error conectando: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("[mongo] ping falló: %w", err)
	}

	log.Printf("[mongo] conectado a DB=%s\n", cfg.MongoDB)
	return client.Database(cfg.MongoDB), nil
}
