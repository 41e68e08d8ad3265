package repository

import (
	"context"
	"time"
)

// CodeRepository stores one-time login codes (hashed) with a TTL.
type CodeRepository interface {
	Store(ctx context.Context, email, codeHash string, ttl time.Duration) error
	// Consume compares the hash and deletes the code on success so a code
	// can be used at most once. Returns false for wrong or expired codes.
	Consume(ctx context.Context, email, codeHash string) (bool, error)
}

// SessionRepository tracks live sessions so sign-out revokes a token before
// its JWT expiry.
type SessionRepository interface {
	Create(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}
