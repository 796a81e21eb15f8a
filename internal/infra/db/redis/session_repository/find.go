package session_repository

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/spendwise/expense-backend/internal/infra/db/mongodb/helpers"
)

type FindSessionRepository struct {
	Client *redis.Client
}

func NewFindSessionRepository(client *redis.Client) *FindSessionRepository {
	return &FindSessionRepository{
		Client: client,
	}
}

func (r *FindSessionRepository) Find(sessionId string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	username, err := r.Client.Get(ctx, keyPrefix+sessionId).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return username, nil
}
