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

func ReportRoutes(server *http.ServeMux, db *mongo.Database, redisClient *redis.Client) {
	findSession := session_repository.NewFindSessionRepository(redisClient)

	server.Handle("GET /report/summary", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeSummaryController(db)),
		findSession,
	))

	server.Handle("GET /report/monthly", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeMonthlySeriesController(db)),
		findSession,
	))

	server.Handle("GET /report/budget-progress", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeBudgetProgressController(db)),
		findSession,
	))

	server.Handle("GET /report/chart/breakdown", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeBreakdownChartController(db)),
		findSession,
	))

	server.Handle("GET /report/chart/monthly", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeMonthlyChartController(db)),
		findSession,
	))
}
