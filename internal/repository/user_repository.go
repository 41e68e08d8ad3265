package repository

import (
	"context"

	"github.com/JSharma2K/cofounded/internal/domain"
)

type UserRepository interface {
	Upsert(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
	// ListCandidates returns users other than userID with no swipe row from
	// userID, newest first with id as tiebreak so paging is stable.
	ListCandidates(ctx context.Context, userID string, limit int) ([]*domain.User, error)
	// Delete removes the user; profile, intent, swipes, matches and messages
	// go with it via cascading constraints.
	Delete(ctx context.Context, id string) error
}
