package session_repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spendwise/expense-backend/internal/infra/db/mongodb/helpers"
)

const keyPrefix = "session:"

type CreateSessionRepository struct {
	Client *redis.Client
}

func NewCreateSessionRepository(client *redis.Client) *CreateSessionRepository {
	return &CreateSessionRepository{
		Client: client,
	}
}

func (r *CreateSessionRepository) Create(sessionId string, username string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	return r.Client.Set(ctx, keyPrefix+sessionId, username, ttl).Err()
}
