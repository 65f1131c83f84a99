package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jrsteele09/go-contest-portal/internal/errors"
	"github.com/jrsteele09/go-contest-portal/storage"
	"github.com/rs/zerolog/log"
)

const keyPrefix = "session:"

// Key is the storage key for a browser session ID
func Key(sessionID string) string {
	return keyPrefix + sessionID
}

// Persisted wraps a Store: state is loaded once when opened and saved after every mutation.
type Persisted struct {
	store *Store
	repo  storage.Repo
	key   string
}

// Open loads the session stored under key. A missing or unreadable record opens
// as an unauthenticated session; only repo failures are returned.
func Open(ctx context.Context, repo storage.Repo, key string) (*Persisted, error) {
	p := &Persisted{store: New(), repo: repo, key: key}

	data, err := repo.Get(ctx, key)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return p, nil
	case errors.Is(err, errors.ErrSealBroken):
		log.Warn().Err(err).Str("key", key).Msg("Discarding unreadable session")
		return p, nil
	case err != nil:
		return nil, fmt.Errorf("[session Open] %s: %w", key, err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Discarding corrupt session")
		return p, nil
	}
	p.store.restore(state)
	return p, nil
}

// Login overwrites the session and saves it
func (p *Persisted) Login(ctx context.Context, identity Identity, token string) error {
	p.store.Login(identity, token)
	return p.save(ctx)
}

// Logout clears the session and removes the stored record
func (p *Persisted) Logout(ctx context.Context) error {
	p.store.Logout()
	if err := p.repo.Delete(ctx, p.key); err != nil {
		return fmt.Errorf("[session Logout] %s: %w", p.key, err)
	}
	return nil
}

func (p *Persisted) Snapshot() State {
	return p.store.Snapshot()
}

func (p *Persisted) Subscribe(fn func(State)) func() {
	return p.store.Subscribe(fn)
}

func (p *Persisted) save(ctx context.Context) error {
	data, err := json.Marshal(p.store.Snapshot())
	if err != nil {
		return fmt.Errorf("[session save] encode: %w", err)
	}
	if err := p.repo.Set(ctx, p.key, data); err != nil {
		return fmt.Errorf("[session save] %s: %w", p.key, err)
	}
	return nil
}
