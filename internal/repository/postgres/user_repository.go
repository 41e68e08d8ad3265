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

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Upsert(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, email, display_name, age_band, timezone, languages, role, verification_tier)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			age_band = EXCLUDED.age_band,
			timezone = EXCLUDED.timezone,
			languages = EXCLUDED.languages,
			role = EXCLUDED.role,
			verification_tier = EXCLUDED.verification_tier
		RETURNING created_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		user.ID, user.Email, user.DisplayName, user.AgeBand, user.Timezone,
		pq.Array(user.Languages), user.Role, user.VerificationTier,
	).Scan(&user.CreatedAt)
	if err != nil && isUniqueViolation(err) {
		// Another account already owns this email.
		return domain.ErrConflict
	}
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT * FROM users WHERE id = $1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT * FROM users WHERE email = $1`, email)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRowContext(ctx, query+` LIMIT 1`, arg).Scan(
		&user.ID, &user.Email, &user.DisplayName, &user.AgeBand, &user.Timezone,
		pq.Array(&user.Languages), &user.Role, &user.VerificationTier, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT * FROM users WHERE id = ANY($1)`
	return r.scanUsers(ctx, query, pq.Array(ids))
}

func (r *userRepository) ListCandidates(ctx context.Context, userID string, limit int) ([]*domain.User, error) {
	query := `
		SELECT u.* FROM users u
		WHERE u.id <> $1
		  AND NOT EXISTS (
			SELECT 1 FROM swipes s WHERE s.swiper_id = $1 AND s.target_id = u.id
		  )
		ORDER BY u.created_at DESC, u.id DESC
		LIMIT $2
	`
	return r.scanUsers(ctx, query, userID, limit)
}

func (r *userRepository) scanUsers(ctx context.Context, query string, args ...interface{}) ([]*domain.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID, &user.Email, &user.DisplayName, &user.AgeBand, &user.Timezone,
			pq.Array(&user.Languages), &user.Role, &user.VerificationTier, &user.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
