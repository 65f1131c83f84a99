package theme

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-contest-portal/internal/errors"
	"github.com/jrsteele09/go-contest-portal/storage"
	"github.com/rs/zerolog/log"
)

// StorageKey is the fixed key the preference is persisted under, scoped per browser by Key
const StorageKey = "theme-variant"

const storageVersion = 0

// Key is the storage key of the preference belonging to browserID
func Key(browserID string) string {
	return StorageKey + ":" + browserID
}

// stored is the persisted shape: {"state":{"darkVariant":"purple"},"version":0}
type stored struct {
	State   State `json:"state"`
	Version int   `json:"version"`
}

// Store is one browser's theme preference. It loads once on Open and saves
// after every mutation; a failed save leaves the previous value in place.
type Store struct {
	mu    sync.RWMutex
	state State
	repo  storage.Repo
	key   string
}

// Open loads the preference stored under key. Missing, unparsable or unknown values load as Default.
func Open(ctx context.Context, repo storage.Repo, key string) (*Store, error) {
	s := &Store{state: State{DarkVariant: Default}, repo: repo, key: key}

	data, err := repo.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("[theme Open] %s: %w", key, err)
	}

	var v stored
	if err := json.Unmarshal(data, &v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Resetting unreadable theme preference")
		return s, nil
	}
	if !v.State.DarkVariant.Valid() {
		log.Warn().Str("key", key).Str("variant", string(v.State.DarkVariant)).Msg("Resetting unknown theme variant")
	}
	s.state = v.State.normalize()
	return s, nil
}

func (s *Store) DarkVariant() Variant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.DarkVariant
}

// SetDarkVariant overwrites the preference with v
func (s *Store) SetDarkVariant(ctx context.Context, v Variant) error {
	if !v.Valid() {
		return fmt.Errorf("%q: %w", v, errors.ErrInvalidVariant)
	}
	_, err := s.update(ctx, func(st State) State { return st.Set(v) })
	return err
}

// ToggleDarkVariant flips the preference and returns the new value
func (s *Store) ToggleDarkVariant(ctx context.Context) (Variant, error) {
	st, err := s.update(ctx, State.Toggle)
	return st.DarkVariant, err
}

func (s *Store) update(ctx context.Context, fn func(State) State) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := fn(s.state)
	data, err := json.Marshal(stored{State: next, Version: storageVersion})
	if err != nil {
		return s.state, fmt.Errorf("[theme save] encode: %w", err)
	}
	if err := s.repo.Set(ctx, s.key, data); err != nil {
		return s.state, fmt.Errorf("[theme save] %w", err)
	}
	s.state = next
	return next, nil
}

// Manager opens the preference belonging to a browser. It shares the storage
// backend with sessions but not their records or cookie.
type Manager struct {
	repo storage.Repo
}

func NewManager(repo storage.Repo) *Manager {
	return &Manager{repo: repo}
}

// NewID returns a fresh browser identifier
func (m *Manager) NewID() string {
	return uuid.NewString()
}

// Open returns the preference for browserID
func (m *Manager) Open(ctx context.Context, browserID string) (*Store, error) {
	return Open(ctx, m.repo, Key(browserID))
}
