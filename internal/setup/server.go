package setup

import (
	"net/http"

	"github.com/spendwise/expense-backend/internal/infra/db/mongodb/helpers"
	"github.com/spendwise/expense-backend/internal/setup/config"
	"github.com/spendwise/expense-backend/internal/setup/middlewares"
)

func Server(cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	db := helpers.MongoHelper(cfg.MongoURI, cfg.MongoDatabase)
	redisClient := helpers.RedisHelper(cfg.RedisURL)

	config.SetupRoutes(mux, db, redisClient, cfg.SessionTTL)

	return middlewares.RecoveryMiddleware(mux)
}
