package report

import (
	"context"
	"testing"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/repository"
	"github.com/JSharma2K/cofounded/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportUseCase(t *testing.T) (*UseCase, repository.UserRepository) {
	t.Helper()
	userRepo := memory.NewUserRepository(memory.NewSwipeRepository())
	return NewUseCase(memory.NewReportRepository(), userRepo), userRepo
}

func TestSubmitReport(t *testing.T) {
	uc, userRepo := newReportUseCase(t)
	require.NoError(t, userRepo.Upsert(context.Background(), &domain.User{ID: "bad", Email: "bad@example.com"}))

	details := "spam messages after matching"
	report, err := uc.Submit(context.Background(), "me", &SubmitRequest{
		TargetID: "bad",
		Reason:   "spam",
		Details:  &details,
	})
	require.NoError(t, err)
	assert.NotZero(t, report.ID)
	assert.Equal(t, "me", report.ReporterID)
}

func TestSubmitReportValidation(t *testing.T) {
	uc, _ := newReportUseCase(t)

	_, err := uc.Submit(context.Background(), "me", &SubmitRequest{TargetID: "me", Reason: "spam"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = uc.Submit(context.Background(), "me", &SubmitRequest{TargetID: "ghost", Reason: "spam"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
