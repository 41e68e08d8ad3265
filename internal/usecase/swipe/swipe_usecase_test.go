package swipe

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/repository"
	"github.com/JSharma2K/cofounded/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	uc        *UseCase
	userRepo  repository.UserRepository
	swipeRepo repository.SwipeRepository
	matchRepo repository.MatchRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	swipeRepo := memory.NewSwipeRepository()
	userRepo := memory.NewUserRepository(swipeRepo)
	profileRepo := memory.NewProfileRepository()
	matchRepo := memory.NewMatchRepository()

	return &testEnv{
		uc:        NewUseCase(swipeRepo, matchRepo, userRepo, profileRepo, nil, nil),
		userRepo:  userRepo,
		swipeRepo: swipeRepo,
		matchRepo: matchRepo,
	}
}

func (e *testEnv) seedUser(t *testing.T, id, name string) {
	t.Helper()
	err := e.userRepo.Upsert(context.Background(), &domain.User{
		ID:          id,
		Email:       id + "@example.com",
		DisplayName: name,
		AgeBand:     domain.AgeBand23To26,
		Timezone:    "UTC",
		Languages:   []string{"English"},
		Role:        domain.RoleFounder,
	})
	require.NoError(t, err)
}

func TestRecordLikeWithoutReciprocal(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alex", "Alex Chen")
	env.seedUser(t, "priya", "Priya Patel")

	result, err := env.uc.Record(context.Background(), "alex", "priya", domain.DirectionLike)
	require.NoError(t, err)
	require.NotNil(t, result.Swipe)
	assert.Equal(t, domain.DirectionLike, result.Swipe.Direction)
	assert.Nil(t, result.Match, "one-sided like must not create a match")
}

func TestMutualLikeCreatesMatch(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alex", "Alex Chen")
	env.seedUser(t, "priya", "Priya Patel")
	ctx := context.Background()

	first, err := env.uc.Record(ctx, "alex", "priya", domain.DirectionLike)
	require.NoError(t, err)
	assert.Nil(t, first.Match)

	second, err := env.uc.Record(ctx, "priya", "alex", domain.DirectionLike)
	require.NoError(t, err)
	require.NotNil(t, second.Match, "reciprocal like must complete the match")
	assert.Equal(t, domain.MatchReasonMutualLike, second.Match.Reason)

	// Pair is stored in canonical order regardless of who swiped last.
	assert.Equal(t, "alex", second.Match.UserA)
	assert.Equal(t, "priya", second.Match.UserB)
}

func TestMutualLikeIdempotent(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alex", "Alex Chen")
	env.seedUser(t, "priya", "Priya Patel")
	ctx := context.Background()

	_, err := env.uc.Record(ctx, "alex", "priya", domain.DirectionLike)
	require.NoError(t, err)
	second, err := env.uc.Record(ctx, "priya", "alex", domain.DirectionLike)
	require.NoError(t, err)
	require.NotNil(t, second.Match)

	// Re-submitting the like must return the existing match, not fail and
	// not create a second row.
	again, err := env.uc.Record(ctx, "priya", "alex", domain.DirectionLike)
	require.NoError(t, err)
	require.NotNil(t, again.Match)
	assert.Equal(t, second.Match.ID, again.Match.ID)
}

func TestPassThenLikeUpgrade(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "sarah", "Sarah Johnson")
	env.seedUser(t, "marcus", "Marcus Williams")
	ctx := context.Background()

	_, err := env.uc.Record(ctx, "sarah", "marcus", domain.DirectionLike)
	require.NoError(t, err)

	passed, err := env.uc.Record(ctx, "marcus", "sarah", domain.DirectionPass)
	require.NoError(t, err)
	assert.Nil(t, passed.Match, "a pass never matches")

	// Changing the decision overwrites the same swipe row and runs the
	// match check as if it were a fresh like.
	upgraded, err := env.uc.Record(ctx, "marcus", "sarah", domain.DirectionLike)
	require.NoError(t, err)
	require.NotNil(t, upgraded.Match)
	assert.Equal(t, passed.Swipe.ID, upgraded.Swipe.ID)

	stored, err := env.swipeRepo.GetByUsers(ctx, "marcus", "sarah")
	require.NoError(t, err)
	assert.Equal(t, domain.DirectionLike, stored.Direction)
}

func TestLikeThenPassOverwrites(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alex", "Alex Chen")
	env.seedUser(t, "priya", "Priya Patel")
	ctx := context.Background()

	_, err := env.uc.Record(ctx, "alex", "priya", domain.DirectionLike)
	require.NoError(t, err)
	_, err = env.uc.Record(ctx, "alex", "priya", domain.DirectionPass)
	require.NoError(t, err)

	// The earlier like edge is gone, so the other side liking back does
	// not match.
	result, err := env.uc.Record(ctx, "priya", "alex", domain.DirectionLike)
	require.NoError(t, err)
	assert.Nil(t, result.Match)
}

func TestRecordValidation(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alex", "Alex Chen")
	ctx := context.Background()

	_, err := env.uc.Record(ctx, "alex", "alex", domain.DirectionLike)
	assert.ErrorIs(t, err, domain.ErrCannotSwipeSelf)

	_, err = env.uc.Record(ctx, "alex", "priya", domain.SwipeDirection("superlike"))
	assert.ErrorIs(t, err, domain.ErrInvalidDirection)

	_, err = env.uc.Record(ctx, "", "priya", domain.DirectionLike)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = env.uc.Record(ctx, "alex", "ghost", domain.DirectionLike)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestConcurrentMutualLike(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alex", "Alex Chen")
	env.seedUser(t, "priya", "Priya Patel")
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]*Result, 2)
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		results[0], errs[0] = env.uc.Record(ctx, "alex", "priya", domain.DirectionLike)
	}()
	go func() {
		defer wg.Done()
		results[1], errs[1] = env.uc.Record(ctx, "priya", "alex", domain.DirectionLike)
	}()
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	// Exactly one match row exists whichever way the race went.
	match, err := env.matchRepo.GetByUsers(ctx, "alex", "priya")
	require.NoError(t, err)

	// At least one caller observed the completed match, and anyone who did
	// saw the same row.
	seen := 0
	for _, r := range results {
		if r.Match != nil {
			seen++
			assert.Equal(t, match.ID, r.Match.ID)
		}
	}
	assert.GreaterOrEqual(t, seen, 1)
}

func TestLikesReceived(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alex", "Alex Chen")
	env.seedUser(t, "priya", "Priya Patel")
	env.seedUser(t, "david", "David Kim")
	ctx := context.Background()

	_, err := env.uc.Record(ctx, "priya", "alex", domain.DirectionLike)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = env.uc.Record(ctx, "david", "alex", domain.DirectionLike)
	require.NoError(t, err)

	likes, err := env.uc.LikesReceived(ctx, "alex", 20, 0)
	require.NoError(t, err)
	require.Len(t, likes, 2)

	// Newest first, with the sender's public data attached.
	assert.Equal(t, "david", likes[0].Swipe.SwiperID)
	assert.Equal(t, "David Kim", likes[0].User.DisplayName)
	assert.Equal(t, "priya", likes[1].Swipe.SwiperID)
}

func TestLikesReceivedSkipsVanishedSender(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alex", "Alex Chen")
	env.seedUser(t, "priya", "Priya Patel")
	ctx := context.Background()

	_, err := env.uc.Record(ctx, "priya", "alex", domain.DirectionLike)
	require.NoError(t, err)
	require.NoError(t, env.userRepo.Delete(ctx, "priya"))

	likes, err := env.uc.LikesReceived(ctx, "alex", 20, 0)
	require.NoError(t, err)
	assert.Empty(t, likes)
}
