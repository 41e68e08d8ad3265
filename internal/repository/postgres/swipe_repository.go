package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type swipeRepository struct {
	db *sqlx.DB
}

func NewSwipeRepository(db *sqlx.DB) repository.SwipeRepository {
	return &swipeRepository{db: db}
}

func (r *swipeRepository) Upsert(ctx context.Context, swipe *domain.Swipe) error {
	// The unique index on (swiper_id, target_id) makes a repeat decision an
	// in-place direction overwrite instead of a duplicate row.
	query := `
		INSERT INTO swipes (swiper_id, target_id, direction)
		VALUES ($1, $2, $3)
		ON CONFLICT (swiper_id, target_id) DO UPDATE SET
			direction = EXCLUDED.direction,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query, swipe.SwiperID, swipe.TargetID, swipe.Direction).
		Scan(&swipe.ID, &swipe.CreatedAt, &swipe.UpdatedAt)
}

func (r *swipeRepository) GetByUsers(ctx context.Context, swiperID, targetID string) (*domain.Swipe, error) {
	var swipe domain.Swipe
	query := `SELECT * FROM swipes WHERE swiper_id = $1 AND target_id = $2`
	err := r.db.GetContext(ctx, &swipe, query, swiperID, targetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &swipe, nil
}

func (r *swipeRepository) HasLike(ctx context.Context, swiperID, targetID string) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM swipes
			WHERE swiper_id = $1 AND target_id = $2 AND direction = 'like'
		)
	`
	err := r.db.GetContext(ctx, &exists, query, swiperID, targetID)
	return exists, err
}

func (r *swipeRepository) GetLikesReceived(ctx context.Context, userID string, limit, offset int) ([]*domain.Swipe, error) {
	var swipes []*domain.Swipe
	query := `
		SELECT * FROM swipes
		WHERE target_id = $1 AND direction = 'like'
		ORDER BY updated_at DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &swipes, query, userID, limit, offset)
	return swipes, err
}

// isForeignKeyViolation reports a 23503 (insert references a missing user).
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	return false
}

// isUniqueViolation reports a 23505 (duplicate key).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
