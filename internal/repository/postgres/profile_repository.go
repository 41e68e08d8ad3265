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

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (user_id, headline, bio, domains, skills, stage, commitment_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			headline = EXCLUDED.headline,
			bio = EXCLUDED.bio,
			domains = EXCLUDED.domains,
			skills = EXCLUDED.skills,
			stage = EXCLUDED.stage,
			commitment_hours = EXCLUDED.commitment_hours,
			updated_at = CURRENT_TIMESTAMP
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.UserID, profile.Headline, profile.Bio,
		pq.Array(profile.Domains), pq.Array(profile.Skills),
		profile.Stage, profile.CommitmentHours,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserRequired
		}
		return err
	}
	return nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT * FROM profiles WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID, &profile.Headline, &profile.Bio,
		pq.Array(&profile.Domains), pq.Array(&profile.Skills),
		&profile.Stage, &profile.CommitmentHours,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetByUserIDs(ctx context.Context, userIDs []string) ([]*domain.Profile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, `SELECT * FROM profiles WHERE user_id = ANY($1)`, pq.Array(userIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		var profile domain.Profile
		if err := rows.Scan(
			&profile.UserID, &profile.Headline, &profile.Bio,
			pq.Array(&profile.Domains), pq.Array(&profile.Skills),
			&profile.Stage, &profile.CommitmentHours,
			&profile.CreatedAt, &profile.UpdatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, &profile)
	}
	return profiles, rows.Err()
}
