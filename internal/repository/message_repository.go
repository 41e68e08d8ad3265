package repository

import (
	"context"

	"github.com/JSharma2K/cofounded/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	ListByMatch(ctx context.Context, matchID int64) ([]*domain.Message, error)
}

type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
}
