package session_repository

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/spendwise/expense-backend/internal/infra/db/mongodb/helpers"
)

type DeleteSessionRepository struct {
	Client *redis.Client
}

func NewDeleteSessionRepository(client *redis.Client) *DeleteSessionRepository {
	return &DeleteSessionRepository{
		Client: client,
	}
}

func (r *DeleteSessionRepository) Delete(sessionId string) error {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	return r.Client.Del(ctx, keyPrefix+sessionId).Err()
}
