package profile

import (
	"context"
	"testing"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/repository"
	"github.com/JSharma2K/cofounded/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileUseCase(t *testing.T) (*UseCase, repository.UserRepository) {
	t.Helper()
	userRepo := memory.NewUserRepository(memory.NewSwipeRepository())
	return NewUseCase(userRepo, memory.NewProfileRepository(), memory.NewIntentRepository()), userRepo
}

func seedUser(t *testing.T, userRepo repository.UserRepository, id string, role domain.Role) {
	t.Helper()
	require.NoError(t, userRepo.Upsert(context.Background(), &domain.User{
		ID:          id,
		Email:       id + "@example.com",
		DisplayName: "User",
		AgeBand:     domain.AgeBand19To22,
		Timezone:    "UTC",
		Languages:   []string{"English"},
		Role:        role,
	}))
}

func str(s string) *string { return &s }

func TestUpsertUserPreservesEmail(t *testing.T) {
	uc, userRepo := newProfileUseCase(t)
	seedUser(t, userRepo, "u1", domain.RoleFounder)

	user, err := uc.UpsertUser(context.Background(), "u1", &UserInfoRequest{
		DisplayName: "Alex Chen",
		AgeBand:     "23-26",
		Timezone:    "America/Los_Angeles",
		Languages:   []string{"English", "Mandarin"},
		Role:        "founder",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alex Chen", user.DisplayName)
	assert.Equal(t, domain.AgeBand23To26, user.AgeBand)
	assert.Equal(t, "u1@example.com", user.Email, "email is owned by auth, not onboarding")
}

func TestUpsertUserUnknownID(t *testing.T) {
	uc, _ := newProfileUseCase(t)
	_, err := uc.UpsertUser(context.Background(), "ghost", &UserInfoRequest{
		DisplayName: "Ghost", AgeBand: "19-22", Timezone: "UTC", Role: "founder",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpsertProfileRequiresUser(t *testing.T) {
	uc, _ := newProfileUseCase(t)
	_, err := uc.UpsertProfile(context.Background(), "ghost", &ProfileRequest{
		Domains: []string{"fintech"},
		Skills:  []string{"go"},
	})
	assert.ErrorIs(t, err, domain.ErrUserRequired)
	assert.ErrorIs(t, err, domain.ErrPrerequisiteMissing)
}

func TestUpsertProfileResubmission(t *testing.T) {
	uc, userRepo := newProfileUseCase(t)
	seedUser(t, userRepo, "u1", domain.RoleFounder)
	ctx := context.Background()

	_, err := uc.UpsertProfile(ctx, "u1", &ProfileRequest{
		Headline: str("Building payments infra"),
		Domains:  []string{"fintech"},
		Skills:   []string{"go"},
		Stage:    str("idea"),
	})
	require.NoError(t, err)

	updated, err := uc.UpsertProfile(ctx, "u1", &ProfileRequest{
		Headline: str("Building payments infra v2"),
		Domains:  []string{"fintech", "ai"},
		Skills:   []string{"go", "sql"},
		Stage:    str("prototype"),
	})
	require.NoError(t, err)

	got, err := uc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, updated.Headline, got.Profile.Headline)
	assert.Equal(t, []string{"fintech", "ai"}, got.Profile.Domains)
	require.NotNil(t, got.Profile.Stage)
	assert.Equal(t, domain.StagePrototype, *got.Profile.Stage)
}

func TestUpsertIntentInvestorFieldsRejectedForFounder(t *testing.T) {
	uc, userRepo := newProfileUseCase(t)
	seedUser(t, userRepo, "u1", domain.RoleFounder)

	_, err := uc.UpsertIntent(context.Background(), "u1", &IntentRequest{
		Seeking:        "cofounder",
		InvestmentType: str("angel"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestUpsertIntentInvestorFields(t *testing.T) {
	uc, userRepo := newProfileUseCase(t)
	seedUser(t, userRepo, "inv", domain.RoleInvestor)

	intent, err := uc.UpsertIntent(context.Background(), "inv", &IntentRequest{
		Seeking:        "founder",
		InvestmentType: str("angel"),
		PortfolioSize:  str("10-20"),
	})
	require.NoError(t, err)
	require.NotNil(t, intent.Investor)
	assert.Equal(t, "angel", intent.Investor.InvestmentType)
}

func TestUpsertIntentRequiresUser(t *testing.T) {
	uc, _ := newProfileUseCase(t)
	_, err := uc.UpsertIntent(context.Background(), "ghost", &IntentRequest{Seeking: "cofounder"})
	assert.ErrorIs(t, err, domain.ErrUserRequired)
}

func TestStatusProgression(t *testing.T) {
	uc, userRepo := newProfileUseCase(t)
	ctx := context.Background()

	status, err := uc.Status(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, status.HasUser)
	assert.False(t, status.IsComplete)

	seedUser(t, userRepo, "u1", domain.RoleFounder)
	_, err = uc.UpsertProfile(ctx, "u1", &ProfileRequest{Domains: []string{"fintech"}, Skills: []string{"go"}})
	require.NoError(t, err)

	status, err = uc.Status(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, status.HasUser)
	assert.True(t, status.HasProfile)
	assert.False(t, status.HasIntent)
	assert.False(t, status.IsComplete)

	_, err = uc.UpsertIntent(ctx, "u1", &IntentRequest{Seeking: "cofounder"})
	require.NoError(t, err)

	status, err = uc.Status(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, status.IsComplete)
}

func TestGetWithoutProfile(t *testing.T) {
	uc, userRepo := newProfileUseCase(t)
	seedUser(t, userRepo, "u1", domain.RoleFounder)

	bundle, err := uc.Get(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, bundle.Profile)
	assert.Equal(t, "u1", bundle.Profile.UserID)
	assert.Nil(t, bundle.Intent)
}
