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

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *domain.Match) error {
	userA, userB := domain.CanonicalPair(match.UserA, match.UserB)

	// ON CONFLICT DO NOTHING returns no row when the pair already exists,
	// which is how a lost mutual-like race surfaces. The caller re-fetches.
	query := `
		INSERT INTO matches (user_a, user_b, reason)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_a, user_b) DO NOTHING
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, userA, userB, match.Reason).
		Scan(&match.ID, &match.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrConflict
		}
		return err
	}

	match.UserA = userA
	match.UserB = userB
	return nil
}

func (r *matchRepository) GetByID(ctx context.Context, id int64) (*domain.Match, error) {
	return r.getOne(ctx, `SELECT * FROM matches WHERE id = $1`, id)
}

func (r *matchRepository) GetByUsers(ctx context.Context, userA, userB string) (*domain.Match, error) {
	userA, userB = domain.CanonicalPair(userA, userB)
	return r.getOne(ctx, `SELECT * FROM matches WHERE user_a = $1 AND user_b = $2`, userA, userB)
}

func (r *matchRepository) getOne(ctx context.Context, query string, args ...interface{}) (*domain.Match, error) {
	var match domain.Match
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&match.ID, &match.UserA, &match.UserB, &match.Reason,
		pq.Array(&match.Intros), &match.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetUserMatches(ctx context.Context, userID string) ([]*domain.Match, error) {
	query := `
		SELECT * FROM matches
		WHERE user_a = $1 OR user_b = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*domain.Match
	for rows.Next() {
		var match domain.Match
		if err := rows.Scan(
			&match.ID, &match.UserA, &match.UserB, &match.Reason,
			pq.Array(&match.Intros), &match.CreatedAt,
		); err != nil {
			return nil, err
		}
		matches = append(matches, &match)
	}
	return matches, rows.Err()
}

func (r *matchRepository) UpdateIntros(ctx context.Context, matchID int64, intros []string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE matches SET intros = $1 WHERE id = $2`, pq.Array(intros), matchID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}
