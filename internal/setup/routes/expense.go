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

func ExpenseRoutes(server *http.ServeMux, db *mongo.Database, redisClient *redis.Client) {
	findSession := session_repository.NewFindSessionRepository(redisClient)

	server.Handle("GET /expense", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetExpensesController(db)),
		findSession,
	))

	server.Handle("POST /expense", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateExpenseController(db)),
		findSession,
	))

	server.Handle("PUT /expense/{expenseId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateExpenseController(db)),
		findSession,
	))

	server.Handle("DELETE /expense/{expenseId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteExpenseController(db)),
		findSession,
	))
}
