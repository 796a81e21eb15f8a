package helpers

import (
	"context"
	"time"

	"github.com/spendwise/expense-backend/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Timeout = 10 * time.Second

func MongoHelper(URI string, databaseName string) *mongo.Database {
	clientOptions := options.Client().ApplyURI(URI)

	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("error connecting to MongoDB")
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("error pinging MongoDB")
	}

	logger.Log.Info().Str("database", databaseName).Msg("MongoDB connection established")

	return client.Database(databaseName)
}
