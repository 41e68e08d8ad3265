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

type intentRepository struct {
	db *sqlx.DB
}

func NewIntentRepository(db *sqlx.DB) repository.IntentRepository {
	return &intentRepository{db: db}
}

func (r *intentRepository) Upsert(ctx context.Context, intent *domain.Intent) error {
	var investmentType, portfolioSize, portfolioURL *string
	if intent.Investor != nil {
		investmentType = &intent.Investor.InvestmentType
		portfolioSize = intent.Investor.PortfolioSize
		portfolioURL = intent.Investor.PortfolioURL
	}

	query := `
		INSERT INTO intents (user_id, seeking, expertise_areas, experience_level,
			availability_text, investment_type, portfolio_size, portfolio_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			seeking = EXCLUDED.seeking,
			expertise_areas = EXCLUDED.expertise_areas,
			experience_level = EXCLUDED.experience_level,
			availability_text = EXCLUDED.availability_text,
			investment_type = EXCLUDED.investment_type,
			portfolio_size = EXCLUDED.portfolio_size,
			portfolio_url = EXCLUDED.portfolio_url
	`
	_, err := r.db.ExecContext(
		ctx, query,
		intent.UserID, intent.Seeking, pq.Array(intent.ExpertiseAreas),
		intent.ExperienceLevel, intent.AvailabilityText,
		investmentType, portfolioSize, portfolioURL,
	)
	if err != nil && isForeignKeyViolation(err) {
		return domain.ErrUserRequired
	}
	return err
}

func (r *intentRepository) GetByUserID(ctx context.Context, userID string) (*domain.Intent, error) {
	rows, err := r.queryIntents(ctx, `SELECT * FROM intents WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrIntentNotFound
	}
	return rows[0], nil
}

func (r *intentRepository) GetByUserIDs(ctx context.Context, userIDs []string) ([]*domain.Intent, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	return r.queryIntents(ctx, `SELECT * FROM intents WHERE user_id = ANY($1)`, pq.Array(userIDs))
}

func (r *intentRepository) queryIntents(ctx context.Context, query string, args ...interface{}) ([]*domain.Intent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	var intents []*domain.Intent
	for rows.Next() {
		var intent domain.Intent
		var investmentType, portfolioSize, portfolioURL *string
		if err := rows.Scan(
			&intent.UserID, &intent.Seeking, pq.Array(&intent.ExpertiseAreas),
			&intent.ExperienceLevel, &intent.AvailabilityText,
			&investmentType, &portfolioSize, &portfolioURL,
		); err != nil {
			return nil, err
		}
		if investmentType != nil {
			intent.Investor = &domain.InvestorDetails{
				InvestmentType: *investmentType,
				PortfolioSize:  portfolioSize,
				PortfolioURL:   portfolioURL,
			}
		}
		intents = append(intents, &intent)
	}
	return intents, rows.Err()
}
