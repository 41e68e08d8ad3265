package redisrepo

import (
	"context"
	"errors"
	"time"

	"github.com/JSharma2K/cofounded/internal/repository"
	"github.com/redis/go-redis/v9"
)

type codeRepository struct {
	client *redis.Client
}

func NewCodeRepository(client *redis.Client) repository.CodeRepository {
	return &codeRepository{client: client}
}

func codeKey(email string) string {
	return "otp:" + email
}

func (r *codeRepository) Store(ctx context.Context, email, codeHash string, ttl time.Duration) error {
	return r.client.Set(ctx, codeKey(email), codeHash, ttl).Err()
}

func (r *codeRepository) Consume(ctx context.Context, email, codeHash string) (bool, error) {
	stored, err := r.client.Get(ctx, codeKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if stored != codeHash {
		return false, nil
	}
	if err := r.client.Del(ctx, codeKey(email)).Err(); err != nil {
		return false, err
	}
	return true, nil
}
