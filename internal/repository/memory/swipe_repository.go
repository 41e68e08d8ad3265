package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/repository"
)

type pairKey struct {
	swiperID string
	targetID string
}

type swipeRepository struct {
	mu     sync.RWMutex
	swipes map[pairKey]*domain.Swipe
	nextID int64
}

func NewSwipeRepository() repository.SwipeRepository {
	return &swipeRepository{swipes: make(map[pairKey]*domain.Swipe)}
}

func (r *swipeRepository) Upsert(_ context.Context, swipe *domain.Swipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	key := pairKey{swipe.SwiperID, swipe.TargetID}
	if existing, ok := r.swipes[key]; ok {
		existing.Direction = swipe.Direction
		existing.UpdatedAt = now
		*swipe = *existing
		return nil
	}
	r.nextID++
	swipe.ID = r.nextID
	swipe.CreatedAt = now
	swipe.UpdatedAt = now
	clone := *swipe
	r.swipes[key] = &clone
	return nil
}

func (r *swipeRepository) GetByUsers(_ context.Context, swiperID, targetID string) (*domain.Swipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	swipe, ok := r.swipes[pairKey{swiperID, targetID}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *swipe
	return &clone, nil
}

func (r *swipeRepository) HasLike(_ context.Context, swiperID, targetID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	swipe, ok := r.swipes[pairKey{swiperID, targetID}]
	return ok && swipe.Direction == domain.DirectionLike, nil
}

func (r *swipeRepository) GetLikesReceived(_ context.Context, userID string, limit, offset int) ([]*domain.Swipe, error) {
	r.mu.RLock()
	var likes []*domain.Swipe
	for _, swipe := range r.swipes {
		if swipe.TargetID == userID && swipe.Direction == domain.DirectionLike {
			clone := *swipe
			likes = append(likes, &clone)
		}
	}
	r.mu.RUnlock()

	sort.Slice(likes, func(i, j int) bool {
		return likes[i].UpdatedAt.After(likes[j].UpdatedAt)
	})

	if offset >= len(likes) {
		return nil, nil
	}
	likes = likes[offset:]
	if limit > 0 && len(likes) > limit {
		likes = likes[:limit]
	}
	return likes, nil
}

func (r *swipeRepository) hasSwipe(swiperID, targetID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.swipes[pairKey{swiperID, targetID}]
	return ok
}
