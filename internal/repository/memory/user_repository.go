// Package memory holds in-memory repository implementations. They mirror
// the postgres semantics, including the uniqueness constraints the match
// resolver depends on, and back the use case tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/repository"
)

type userRepository struct {
	mu     sync.RWMutex
	users  map[string]*domain.User
	swipes *swipeRepository
}

// NewUserRepository returns an in-memory user store. The swipe repository
// is consulted by ListCandidates to exclude already swiped users; it may
// be nil when feed behavior is not under test.
func NewUserRepository(swipes repository.SwipeRepository) repository.UserRepository {
	sr, _ := swipes.(*swipeRepository)
	return &userRepository{
		users:  make(map[string]*domain.User),
		swipes: sr,
	}
}

func (r *userRepository) Upsert(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.users[user.ID]; ok {
		user.CreatedAt = existing.CreatedAt
	} else if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *userRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *userRepository) GetByIDs(_ context.Context, ids []string) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			clone := *user
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *userRepository) ListCandidates(_ context.Context, userID string, limit int) ([]*domain.User, error) {
	r.mu.RLock()
	var out []*domain.User
	for id, user := range r.users {
		if id == userID {
			continue
		}
		clone := *user
		out = append(out, &clone)
	}
	r.mu.RUnlock()

	if r.swipes != nil {
		filtered := out[:0]
		for _, user := range out {
			if !r.swipes.hasSwipe(userID, user.ID) {
				filtered = append(filtered, user)
			}
		}
		out = filtered
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *userRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}
