package feed

import (
	"context"
	"testing"
	"time"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/repository"
	"github.com/JSharma2K/cofounded/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type feedEnv struct {
	uc          *UseCase
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	intentRepo  repository.IntentRepository
	swipeRepo   repository.SwipeRepository
	clock       time.Time
}

func newFeedEnv(t *testing.T) *feedEnv {
	t.Helper()
	swipeRepo := memory.NewSwipeRepository()
	userRepo := memory.NewUserRepository(swipeRepo)
	profileRepo := memory.NewProfileRepository()
	intentRepo := memory.NewIntentRepository()

	return &feedEnv{
		uc:          NewUseCase(userRepo, profileRepo, intentRepo),
		userRepo:    userRepo,
		profileRepo: profileRepo,
		intentRepo:  intentRepo,
		swipeRepo:   swipeRepo,
		clock:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// seedUser registers a user one minute newer than the previous one so the
// feed order is deterministic.
func (e *feedEnv) seedUser(t *testing.T, id string, band domain.AgeBand) {
	t.Helper()
	e.clock = e.clock.Add(time.Minute)
	err := e.userRepo.Upsert(context.Background(), &domain.User{
		ID:          id,
		Email:       id + "@example.com",
		DisplayName: id,
		AgeBand:     band,
		Timezone:    "UTC",
		Languages:   []string{"English"},
		Role:        domain.RoleFounder,
		CreatedAt:   e.clock,
	})
	require.NoError(t, err)
}

func (e *feedEnv) swipe(t *testing.T, swiperID, targetID string) {
	t.Helper()
	err := e.swipeRepo.Upsert(context.Background(), &domain.Swipe{
		SwiperID:  swiperID,
		TargetID:  targetID,
		Direction: domain.DirectionPass,
	})
	require.NoError(t, err)
}

func ids(candidates []*domain.Candidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.User.ID)
	}
	return out
}

func TestCandidatesExcludesSelfAndSwiped(t *testing.T) {
	env := newFeedEnv(t)
	env.seedUser(t, "me", domain.AgeBand23To26)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		env.seedUser(t, id, domain.AgeBand23To26)
	}
	env.swipe(t, "me", "b")
	env.swipe(t, "me", "d")

	candidates, err := env.uc.Candidates(context.Background(), "me", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"e", "c", "a"}, ids(candidates))
}

func TestCandidatesNewestFirst(t *testing.T) {
	env := newFeedEnv(t)
	env.seedUser(t, "me", domain.AgeBand23To26)
	env.seedUser(t, "older", domain.AgeBand23To26)
	env.seedUser(t, "newer", domain.AgeBand23To26)

	candidates, err := env.uc.Candidates(context.Background(), "me", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"newer", "older"}, ids(candidates))
}

func TestCandidatesLimit(t *testing.T) {
	env := newFeedEnv(t)
	env.seedUser(t, "me", domain.AgeBand23To26)
	for _, id := range []string{"a", "b", "c"} {
		env.seedUser(t, id, domain.AgeBand23To26)
	}

	candidates, err := env.uc.Candidates(context.Background(), "me", 2, nil)
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
}

func TestCandidatesEmptyFeed(t *testing.T) {
	env := newFeedEnv(t)
	env.seedUser(t, "me", domain.AgeBand23To26)

	candidates, err := env.uc.Candidates(context.Background(), "me", 0, nil)
	require.NoError(t, err)
	assert.NotNil(t, candidates)
	assert.Empty(t, candidates)
}

func TestCandidatesIncludesUnfinishedOnboarding(t *testing.T) {
	env := newFeedEnv(t)
	env.seedUser(t, "me", domain.AgeBand23To26)
	env.seedUser(t, "bare", domain.AgeBand19To22)

	candidates, err := env.uc.Candidates(context.Background(), "me", 0, nil)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	require.NotNil(t, candidates[0].Profile)
	assert.Equal(t, "bare", candidates[0].Profile.UserID)
	assert.Nil(t, candidates[0].Intent)
}

func stagePtr(s domain.Stage) *domain.Stage { return &s }
func strPtr(s string) *string               { return &s }

func seedCandidate(t *testing.T, env *feedEnv, id string, band domain.AgeBand, domains []string, stage *domain.Stage, seeking domain.Seeking) {
	t.Helper()
	env.seedUser(t, id, band)
	require.NoError(t, env.profileRepo.Upsert(context.Background(), &domain.Profile{
		UserID:  id,
		Domains: domains,
		Skills:  []string{"go"},
		Stage:   stage,
	}))
	require.NoError(t, env.intentRepo.Upsert(context.Background(), &domain.Intent{
		UserID:  id,
		Seeking: seeking,
	}))
}

func TestCandidatesFiltered(t *testing.T) {
	env := newFeedEnv(t)
	env.seedUser(t, "me", domain.AgeBand23To26)
	seedCandidate(t, env, "fintech-idea", domain.AgeBand19To22, []string{"fintech"}, stagePtr(domain.StageIdea), domain.SeekingCofounder)
	seedCandidate(t, env, "fintech-launched", domain.AgeBand23To26, []string{"fintech"}, stagePtr(domain.StageLaunched), domain.SeekingCofounder)
	seedCandidate(t, env, "health-idea", domain.AgeBand19To22, []string{"healthtech"}, stagePtr(domain.StageIdea), domain.SeekingCofounder)
	seedCandidate(t, env, "fintech-mentor", domain.AgeBand27Plus, []string{"fintech"}, stagePtr(domain.StageIdea), domain.SeekingMentor)
	seedCandidate(t, env, "fintech-old", domain.AgeBand27Plus, []string{"fintech"}, stagePtr(domain.StageIdea), domain.SeekingCofounder)

	candidates, err := env.uc.Candidates(context.Background(), "me", 0, &FilterParams{
		MaxAge:  26,
		Domains: []string{"fintech"},
		Stage:   stagePtr(domain.StageIdea),
		Seeking: []domain.Seeking{domain.SeekingCofounder},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"fintech-idea"}, ids(candidates))
}

func TestFilterPredicates(t *testing.T) {
	base := &domain.Candidate{
		User: &domain.PublicUser{ID: "x", AgeBand: domain.AgeBand23To26},
		Profile: &domain.Profile{
			UserID:  "x",
			Domains: []string{"fintech", "ai"},
			Skills:  []string{"go", "design"},
			Stage:   stagePtr(domain.StagePrototype),
		},
		Intent: &domain.Intent{
			UserID:          "x",
			Seeking:         domain.SeekingCofounder,
			ExpertiseAreas:  []string{"payments"},
			ExperienceLevel: strPtr("senior"),
		},
	}
	in := []*domain.Candidate{base}

	tests := []struct {
		name   string
		filter FilterParams
		want   int
	}{
		{"empty passes", FilterParams{}, 1},
		{"max age inclusive", FilterParams{MaxAge: 26}, 1},
		{"max age excludes", FilterParams{MaxAge: 22}, 0},
		{"seeking match", FilterParams{Seeking: []domain.Seeking{domain.SeekingCofounder}}, 1},
		{"seeking mismatch", FilterParams{Seeking: []domain.Seeking{domain.SeekingInvestor}}, 0},
		{"domain overlap", FilterParams{Domains: []string{"ai", "robotics"}}, 1},
		{"domain disjoint", FilterParams{Domains: []string{"robotics"}}, 0},
		{"skill overlap", FilterParams{Skills: []string{"design"}}, 1},
		{"expertise overlap", FilterParams{Expertise: []string{"payments"}}, 1},
		{"expertise disjoint", FilterParams{Expertise: []string{"ml"}}, 0},
		{"stage match", FilterParams{Stage: stagePtr(domain.StagePrototype)}, 1},
		{"stage mismatch", FilterParams{Stage: stagePtr(domain.StageLaunched)}, 0},
		{"experience match", FilterParams{ExperienceLevel: strPtr("senior")}, 1},
		{"experience mismatch", FilterParams{ExperienceLevel: strPtr("junior")}, 0},
		{"investor type without investor intent", FilterParams{InvestorType: strPtr("angel")}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Filter(in, &tt.filter), tt.want)
		})
	}
}

func TestFilterMissingIntent(t *testing.T) {
	in := []*domain.Candidate{{
		User:    &domain.PublicUser{ID: "x", AgeBand: domain.AgeBand19To22},
		Profile: &domain.Profile{UserID: "x"},
	}}

	// Intent-dependent filters exclude candidates without one; the others
	// do not care.
	assert.Len(t, Filter(in, &FilterParams{Seeking: []domain.Seeking{domain.SeekingCofounder}}), 0)
	assert.Len(t, Filter(in, &FilterParams{MaxAge: 26}), 1)
}
