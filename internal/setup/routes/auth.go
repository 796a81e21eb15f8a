package routes

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spendwise/expense-backend/internal/infra/db/redis/session_repository"
	"github.com/spendwise/expense-backend/internal/setup/adapters"
	"github.com/spendwise/expense-backend/internal/setup/factory"
	"github.com/spendwise/expense-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func AuthRoutes(server *http.ServeMux, db *mongo.Database, redisClient *redis.Client, sessionTTL time.Duration) {
	findSession := session_repository.NewFindSessionRepository(redisClient)

	server.Handle("POST /auth/register", adapters.AdaptRoute(factory.MakeRegisterController(db)))

	server.Handle("POST /auth/login", adapters.AdaptRoute(factory.MakeLoginController(db, redisClient, sessionTTL)))

	server.Handle("POST /auth/logout", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeLogoutController(redisClient)),
		findSession,
	))
}
