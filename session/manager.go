package session

import (
	"context"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-contest-portal/storage"
)

// Manager opens the session belonging to a browser. It is created once at
// process start and shared by all handlers.
type Manager struct {
	repo storage.Repo
}

func NewManager(repo storage.Repo) *Manager {
	return &Manager{repo: repo}
}

// NewID returns a fresh browser session identifier
func (m *Manager) NewID() string {
	return uuid.NewString()
}

// Open returns the persisted session for sessionID
func (m *Manager) Open(ctx context.Context, sessionID string) (*Persisted, error) {
	return Open(ctx, m.repo, Key(sessionID))
}

// Discard removes the stored record for sessionID
func (m *Manager) Discard(ctx context.Context, sessionID string) error {
	return m.repo.Delete(ctx, Key(sessionID))
}
