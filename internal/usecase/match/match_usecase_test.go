package match

import (
	"context"
	"testing"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/repository"
	"github.com/JSharma2K/cofounded/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type matchEnv struct {
	uc        *UseCase
	userRepo  repository.UserRepository
	matchRepo repository.MatchRepository
}

func newMatchEnv(t *testing.T) *matchEnv {
	t.Helper()
	userRepo := memory.NewUserRepository(memory.NewSwipeRepository())
	matchRepo := memory.NewMatchRepository()
	uc := NewUseCase(matchRepo, memory.NewMessageRepository(), userRepo, memory.NewProfileRepository(), nil)
	return &matchEnv{uc: uc, userRepo: userRepo, matchRepo: matchRepo}
}

func (e *matchEnv) seedUser(t *testing.T, id, name string) {
	t.Helper()
	require.NoError(t, e.userRepo.Upsert(context.Background(), &domain.User{
		ID:          id,
		Email:       id + "@example.com",
		DisplayName: name,
		AgeBand:     domain.AgeBand23To26,
		Timezone:    "UTC",
		Role:        domain.RoleFounder,
	}))
}

func (e *matchEnv) seedMatch(t *testing.T, userA, userB string) *domain.Match {
	t.Helper()
	m := &domain.Match{UserA: userA, UserB: userB, Reason: domain.MatchReasonMutualLike}
	require.NoError(t, e.matchRepo.Create(context.Background(), m))
	return m
}

func TestMatchesEnrichesBothSides(t *testing.T) {
	env := newMatchEnv(t)
	env.seedUser(t, "alex", "Alex Chen")
	env.seedUser(t, "priya", "Priya Patel")
	env.seedMatch(t, "alex", "priya")

	matches, err := env.uc.Matches(context.Background(), "alex")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	require.NotNil(t, m.UserAData)
	require.NotNil(t, m.UserBData)
	assert.Equal(t, "Alex Chen", m.UserAData.User.DisplayName)
	assert.Equal(t, "Priya Patel", m.UserBData.User.DisplayName)
	assert.NotNil(t, m.UserBData.Profile, "missing profile defaults to empty, not nil")
}

func TestMatchesEmpty(t *testing.T) {
	env := newMatchEnv(t)
	env.seedUser(t, "alex", "Alex Chen")

	matches, err := env.uc.Matches(context.Background(), "alex")
	require.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestSendAndListMessages(t *testing.T) {
	env := newMatchEnv(t)
	env.seedUser(t, "alex", "Alex Chen")
	env.seedUser(t, "priya", "Priya Patel")
	m := env.seedMatch(t, "alex", "priya")
	ctx := context.Background()

	sent, err := env.uc.SendMessage(ctx, "alex", m.ID, &SendMessageRequest{Body: "hey, love the payments idea"})
	require.NoError(t, err)
	assert.Equal(t, "alex", sent.SenderID)

	_, err = env.uc.SendMessage(ctx, "priya", m.ID, &SendMessageRequest{Body: "thanks! want to chat?"})
	require.NoError(t, err)

	messages, err := env.uc.Messages(ctx, "priya", m.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "hey, love the payments idea", messages[0].Body)
}

func TestMessagesRequiresParticipant(t *testing.T) {
	env := newMatchEnv(t)
	env.seedUser(t, "alex", "Alex Chen")
	env.seedUser(t, "priya", "Priya Patel")
	env.seedUser(t, "mallory", "Mallory")
	m := env.seedMatch(t, "alex", "priya")
	ctx := context.Background()

	_, err := env.uc.Messages(ctx, "mallory", m.ID)
	assert.ErrorIs(t, err, domain.ErrNotParticipant)

	_, err = env.uc.SendMessage(ctx, "mallory", m.ID, &SendMessageRequest{Body: "hi"})
	assert.ErrorIs(t, err, domain.ErrNotParticipant)
}

func TestMessagesUnknownMatch(t *testing.T) {
	env := newMatchEnv(t)
	env.seedUser(t, "alex", "Alex Chen")

	_, err := env.uc.Messages(context.Background(), "alex", 404)
	assert.ErrorIs(t, err, domain.ErrMatchNotFound)
}

func TestSendMessageEmptyBody(t *testing.T) {
	env := newMatchEnv(t)
	env.seedUser(t, "alex", "Alex Chen")
	env.seedUser(t, "priya", "Priya Patel")
	m := env.seedMatch(t, "alex", "priya")

	_, err := env.uc.SendMessage(context.Background(), "alex", m.ID, &SendMessageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestMessagesEmptyHistory(t *testing.T) {
	env := newMatchEnv(t)
	env.seedUser(t, "alex", "Alex Chen")
	env.seedUser(t, "priya", "Priya Patel")
	m := env.seedMatch(t, "alex", "priya")

	messages, err := env.uc.Messages(context.Background(), "alex", m.ID)
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}
