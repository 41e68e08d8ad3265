package repository

import (
	"context"

	"github.com/JSharma2K/cofounded/internal/domain"
)

type SwipeRepository interface {
	// Upsert inserts the swipe or overwrites the direction of an existing
	// row for the same ordered pair. The stored row is written back into
	// swipe (id, timestamps).
	Upsert(ctx context.Context, swipe *domain.Swipe) error
	GetByUsers(ctx context.Context, swiperID, targetID string) (*domain.Swipe, error)
	// HasLike reports whether a like edge swiper->target exists.
	HasLike(ctx context.Context, swiperID, targetID string) (bool, error)
	// GetLikesReceived lists like swipes targeting userID, newest first.
	GetLikesReceived(ctx context.Context, userID string, limit, offset int) ([]*domain.Swipe, error)
}
