package config

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spendwise/expense-backend/internal/setup/routes"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(server *http.ServeMux, db *mongo.Database, redisClient *redis.Client, sessionTTL time.Duration) {
	apiServer := http.NewServeMux()
	routes.AuthRoutes(apiServer, db, redisClient, sessionTTL)
	routes.CategoryRoutes(apiServer)
	routes.ExpenseRoutes(apiServer, db, redisClient)
	routes.BudgetRoutes(apiServer, db, redisClient)
	routes.ReportRoutes(apiServer, db, redisClient)

	server.Handle("/api/", http.StripPrefix("/api", apiServer))
}
