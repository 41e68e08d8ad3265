package report

import (
	"context"
	"fmt"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/repository"
)

// UseCase records user reports. Record only; there is no moderation
// pipeline behind it.
type UseCase struct {
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
}

func NewUseCase(reportRepo repository.ReportRepository, userRepo repository.UserRepository) *UseCase {
	return &UseCase{reportRepo: reportRepo, userRepo: userRepo}
}

type SubmitRequest struct {
	TargetID string  `json:"target_id" binding:"required"`
	Reason   string  `json:"reason" binding:"required,max=100"`
	Details  *string `json:"details" binding:"omitempty,max=1000"`
}

func (uc *UseCase) Submit(ctx context.Context, reporterID string, req *SubmitRequest) (*domain.Report, error) {
	if reporterID == req.TargetID {
		return nil, fmt.Errorf("%w: cannot report yourself", domain.ErrInvalidArgument)
	}
	if _, err := uc.userRepo.GetByID(ctx, req.TargetID); err != nil {
		return nil, err
	}

	report := &domain.Report{
		ReporterID: reporterID,
		TargetID:   req.TargetID,
		Reason:     req.Reason,
		Details:    req.Details,
	}
	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to store report: %w", err)
	}
	return report, nil
}
