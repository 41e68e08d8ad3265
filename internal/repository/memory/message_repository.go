package memory

import (
	"context"
	"sync"
	"time"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/repository"
)

type messageRepository struct {
	mu       sync.Mutex
	messages []*domain.Message
	nextID   int64
}

func NewMessageRepository() repository.MessageRepository {
	return &messageRepository{}
}

func (r *messageRepository) Create(_ context.Context, message *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	message.ID = r.nextID
	message.CreatedAt = time.Now()
	clone := *message
	r.messages = append(r.messages, &clone)
	return nil
}

func (r *messageRepository) ListByMatch(_ context.Context, matchID int64) ([]*domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Message
	for _, message := range r.messages {
		if message.MatchID == matchID {
			clone := *message
			out = append(out, &clone)
		}
	}
	return out, nil
}

type reportRepository struct {
	mu      sync.Mutex
	reports []*domain.Report
	nextID  int64
}

func NewReportRepository() repository.ReportRepository {
	return &reportRepository{}
}

func (r *reportRepository) Create(_ context.Context, report *domain.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	report.ID = r.nextID
	report.CreatedAt = time.Now()
	clone := *report
	r.reports = append(r.reports, &clone)
	return nil
}
