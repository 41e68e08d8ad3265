package memory

import (
	"context"
	"sync"
	"time"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/JSharma2K/cofounded/internal/repository"
)

type storedCode struct {
	hash      string
	expiresAt time.Time
}

type codeRepository struct {
	mu    sync.Mutex
	codes map[string]storedCode
}

func NewCodeRepository() repository.CodeRepository {
	return &codeRepository{codes: make(map[string]storedCode)}
}

func (r *codeRepository) Store(_ context.Context, email, codeHash string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes[email] = storedCode{hash: codeHash, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (r *codeRepository) Consume(_ context.Context, email, codeHash string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.codes[email]
	if !ok || time.Now().After(stored.expiresAt) || stored.hash != codeHash {
		return false, nil
	}
	delete(r.codes, email)
	return true, nil
}

type storedSession struct {
	userID    string
	expiresAt time.Time
}

type sessionRepository struct {
	mu       sync.Mutex
	sessions map[string]storedSession
}

func NewSessionRepository() repository.SessionRepository {
	return &sessionRepository{sessions: make(map[string]storedSession)}
}

func (r *sessionRepository) Create(_ context.Context, sessionID, userID string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sessionID] = storedSession{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (r *sessionRepository) Get(_ context.Context, sessionID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok || time.Now().After(session.expiresAt) {
		return "", domain.ErrNotFound
	}
	return session.userID, nil
}

func (r *sessionRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}
