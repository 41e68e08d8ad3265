package repository

import (
	"context"

	"github.com/JSharma2K/cofounded/internal/domain"
)

type ProfileRepository interface {
	Upsert(ctx context.Context, profile *domain.Profile) error
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	GetByUserIDs(ctx context.Context, userIDs []string) ([]*domain.Profile, error)
}

type IntentRepository interface {
	Upsert(ctx context.Context, intent *domain.Intent) error
	GetByUserID(ctx context.Context, userID string) (*domain.Intent, error)
	GetByUserIDs(ctx context.Context, userIDs []string) ([]*domain.Intent, error)
}
