package routes

import (
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/spendwise/expense-backend/internal/infra/db/redis/session_repository"
	"github.com/spendwise/expense-backend/internal/setup/adapters"
	"github.com/spendwise/expense-backend/internal/setup/factory"
	"github.com/spendwise/expense-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func BudgetRoutes(server *http.ServeMux, db *mongo.Database, redisClient *redis.Client) {
	findSession := session_repository.NewFindSessionRepository(redisClient)

	server.Handle("GET /budget", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetBudgetsController(db)),
		findSession,
	))

	server.Handle("PUT /budget", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeSetBudgetController(db)),
		findSession,
	))

	server.Handle("DELETE /budget/{category}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeClearBudgetController(db)),
		findSession,
	))
}
