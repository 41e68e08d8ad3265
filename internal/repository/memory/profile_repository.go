package memory

import (
	"context"
	"sync"
	"time"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/repository"
)

type profileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*domain.Profile
}

func NewProfileRepository() repository.ProfileRepository {
	return &profileRepository{profiles: make(map[string]*domain.Profile)}
}

func (r *profileRepository) Upsert(_ context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	if existing, ok := r.profiles[profile.UserID]; ok {
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	clone := *profile
	r.profiles[profile.UserID] = &clone
	return nil
}

func (r *profileRepository) GetByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	clone := *profile
	return &clone, nil
}

func (r *profileRepository) GetByUserIDs(_ context.Context, userIDs []string) ([]*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Profile, 0, len(userIDs))
	for _, id := range userIDs {
		if profile, ok := r.profiles[id]; ok {
			clone := *profile
			out = append(out, &clone)
		}
	}
	return out, nil
}

type intentRepository struct {
	mu      sync.RWMutex
	intents map[string]*domain.Intent
}

func NewIntentRepository() repository.IntentRepository {
	return &intentRepository{intents: make(map[string]*domain.Intent)}
}

func (r *intentRepository) Upsert(_ context.Context, intent *domain.Intent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *intent
	r.intents[intent.UserID] = &clone
	return nil
}

func (r *intentRepository) GetByUserID(_ context.Context, userID string) (*domain.Intent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	intent, ok := r.intents[userID]
	if !ok {
		return nil, domain.ErrIntentNotFound
	}
	clone := *intent
	return &clone, nil
}

func (r *intentRepository) GetByUserIDs(_ context.Context, userIDs []string) ([]*domain.Intent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Intent, 0, len(userIDs))
	for _, id := range userIDs {
		if intent, ok := r.intents[id]; ok {
			clone := *intent
			out = append(out, &clone)
		}
	}
	return out, nil
}
