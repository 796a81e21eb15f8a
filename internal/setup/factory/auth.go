package factory

import (
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spendwise/expense-backend/internal/infra/db/mongodb/user_repository"
	"github.com/spendwise/expense-backend/internal/infra/db/redis/session_repository"
	controllers "github.com/spendwise/expense-backend/internal/presentation/controllers/auth"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeRegisterController(db *mongo.Database) *controllers.RegisterController {
	createUser := user_repository.NewCreateUserRepository(db)
	findUserByUsername := user_repository.NewFindUserByUsernameRepository(db)
	return controllers.NewRegisterController(createUser, findUserByUsername)
}

func MakeLoginController(db *mongo.Database, redisClient *redis.Client, sessionTTL time.Duration) *controllers.LoginController {
	findUserByUsername := user_repository.NewFindUserByUsernameRepository(db)
	createSession := session_repository.NewCreateSessionRepository(redisClient)
	return controllers.NewLoginController(findUserByUsername, createSession, sessionTTL)
}

func MakeLogoutController(redisClient *redis.Client) *controllers.LogoutController {
	deleteSession := session_repository.NewDeleteSessionRepository(redisClient)
	return controllers.NewLogoutController(deleteSession)
}
