package helpers

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spendwise/expense-backend/internal/logger"
)

var (
	redisClients     = make(map[string]*redis.Client)
	redisClientMutex sync.Mutex
)

var RedisTimeout = 5 * time.Second

func RedisHelper(connectionUrl string) *redis.Client {
	redisClientMutex.Lock()
	if client, exists := redisClients[connectionUrl]; exists {
		redisClientMutex.Unlock()
		return client
	}
	redisClientMutex.Unlock()

	opt, err := redis.ParseURL(connectionUrl)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("error parsing Redis URL")
		return nil
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), RedisTimeout)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logger.Log.Fatal().Err(err).Msg("error pinging Redis")
		return nil
	}

	redisClientMutex.Lock()
	redisClients[connectionUrl] = client
	redisClientMutex.Unlock()

	logger.Log.Info().Msg("Redis connection established")

	return client
}
