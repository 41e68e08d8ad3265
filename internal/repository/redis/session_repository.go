package redisrepo

import (
	"context"
	"errors"
	"time"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/repository"
	"github.com/redis/go-redis/v9"
)

type sessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) repository.SessionRepository {
	return &sessionRepository{client: client}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (r *sessionRepository) Create(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	return r.client.Set(ctx, sessionKey(sessionID), userID, ttl).Err()
}

func (r *sessionRepository) Get(ctx context.Context, sessionID string) (string, error) {
	userID, err := r.client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return userID, nil
}

func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionKey(sessionID)).Err()
}
