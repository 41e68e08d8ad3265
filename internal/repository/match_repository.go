package repository

import (
	"context"

	"github.com/JSharma2K/cofounded/internal/domain"
)

type MatchRepository interface {
	// Create canonicalizes the pair and inserts with on-conflict-ignore.
	// When the row already exists (lost race or repeat call) it returns
	// domain.ErrConflict and writes nothing.
	Create(ctx context.Context, match *domain.Match) error
	GetByID(ctx context.Context, id int64) (*domain.Match, error)
	GetByUsers(ctx context.Context, userA, userB string) (*domain.Match, error)
	GetUserMatches(ctx context.Context, userID string) ([]*domain.Match, error)
	UpdateIntros(ctx context.Context, matchID int64, intros []string) error
}
