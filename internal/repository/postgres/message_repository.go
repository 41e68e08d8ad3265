package postgres

import (
	"context"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	query := `
		INSERT INTO messages (match_id, sender_id, body, attachments)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		message.MatchID, message.SenderID, message.Body, pq.Array(message.Attachments)).
		Scan(&message.ID, &message.CreatedAt)
	if err != nil && isForeignKeyViolation(err) {
		return domain.ErrMatchNotFound
	}
	return err
}

func (r *messageRepository) ListByMatch(ctx context.Context, matchID int64) ([]*domain.Message, error) {
	query := `
		SELECT * FROM messages
		WHERE match_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, query, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*domain.Message
	for rows.Next() {
		var message domain.Message
		if err := rows.Scan(
			&message.ID, &message.MatchID, &message.SenderID,
			&message.Body, pq.Array(&message.Attachments), &message.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, &message)
	}
	return messages, rows.Err()
}

type reportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) error {
	query := `
		INSERT INTO reports (reporter_id, target_id, reason, details)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		report.ReporterID, report.TargetID, report.Reason, report.Details).
		Scan(&report.ID, &report.CreatedAt)
}
