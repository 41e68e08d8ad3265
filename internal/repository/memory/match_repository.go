package memory

import (
	"context"
	"sync"
	"time"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/repository"
)

type matchRepository struct {
	mu      sync.Mutex
	matches map[pairKey]*domain.Match
	byID    map[int64]*domain.Match
	nextID  int64
}

func NewMatchRepository() repository.MatchRepository {
	return &matchRepository{
		matches: make(map[pairKey]*domain.Match),
		byID:    make(map[int64]*domain.Match),
	}
}

// Create emulates the unique constraint on the canonical pair: exactly one
// caller wins, everyone else gets domain.ErrConflict.
func (r *matchRepository) Create(_ context.Context, match *domain.Match) error {
	match.UserA, match.UserB = domain.CanonicalPair(match.UserA, match.UserB)

	r.mu.Lock()
	defer r.mu.Unlock()
	key := pairKey{match.UserA, match.UserB}
	if _, ok := r.matches[key]; ok {
		return domain.ErrConflict
	}
	r.nextID++
	match.ID = r.nextID
	match.CreatedAt = time.Now()
	clone := *match
	r.matches[key] = &clone
	r.byID[match.ID] = &clone
	return nil
}

func (r *matchRepository) GetByID(_ context.Context, id int64) (*domain.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	match, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	clone := *match
	return &clone, nil
}

func (r *matchRepository) GetByUsers(_ context.Context, userA, userB string) (*domain.Match, error) {
	userA, userB = domain.CanonicalPair(userA, userB)
	r.mu.Lock()
	defer r.mu.Unlock()
	match, ok := r.matches[pairKey{userA, userB}]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	clone := *match
	return &clone, nil
}

func (r *matchRepository) GetUserMatches(_ context.Context, userID string) ([]*domain.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Match
	for _, match := range r.matches {
		if match.HasUser(userID) {
			clone := *match
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *matchRepository) UpdateIntros(_ context.Context, matchID int64, intros []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	match, ok := r.byID[matchID]
	if !ok {
		return domain.ErrMatchNotFound
	}
	match.Intros = intros
	return nil
}
