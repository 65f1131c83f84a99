package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jrsteele09/go-contest-portal/session"
	"github.com/jrsteele09/go-contest-portal/storage"
	"github.com/stretchr/testify/require"
)

type failingRepo struct {
	storage.Repo
	err error
}

func (f failingRepo) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingRepo) Set(context.Context, string, []byte) error   { return f.err }

func TestPersisted_SaveAndReload(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewInMemoryRepo()
	manager := session.NewManager(repo)
	id := manager.NewID()

	p, err := manager.Open(ctx, id)
	require.NoError(t, err)
	require.False(t, p.Snapshot().Authenticated())

	require.NoError(t, p.Login(ctx, testIdentity, "abc"))

	t.Run("stored under session key", func(t *testing.T) {
		_, err := repo.Get(ctx, session.Key(id))
		require.NoError(t, err)
	})

	t.Run("reopen restores state", func(t *testing.T) {
		reopened, err := manager.Open(ctx, id)
		require.NoError(t, err)
		snap := reopened.Snapshot()
		require.True(t, snap.Authenticated())
		require.Equal(t, testIdentity, *snap.Identity)
		require.Equal(t, "abc", snap.Token)
	})

	t.Run("other browser is isolated", func(t *testing.T) {
		other, err := manager.Open(ctx, manager.NewID())
		require.NoError(t, err)
		require.False(t, other.Snapshot().Authenticated())
	})

	t.Run("logout removes record", func(t *testing.T) {
		require.NoError(t, p.Logout(ctx))
		_, err := repo.Get(ctx, session.Key(id))
		require.ErrorIs(t, err, storage.ErrNotFound)

		reopened, err := manager.Open(ctx, id)
		require.NoError(t, err)
		require.False(t, reopened.Snapshot().Authenticated())
	})
}

func TestPersisted_UnreadableRecords(t *testing.T) {
	ctx := context.Background()

	t.Run("corrupt json opens empty", func(t *testing.T) {
		repo := storage.NewInMemoryRepo()
		require.NoError(t, repo.Set(ctx, "session:x", []byte("{broken")))
		p, err := session.Open(ctx, repo, "session:x")
		require.NoError(t, err)
		require.False(t, p.Snapshot().Authenticated())
	})

	t.Run("identity without token opens empty", func(t *testing.T) {
		repo := storage.NewInMemoryRepo()
		require.NoError(t, repo.Set(ctx, "session:x", []byte(`{"user":{"id":"1"}}`)))
		p, err := session.Open(ctx, repo, "session:x")
		require.NoError(t, err)
		require.Nil(t, p.Snapshot().Identity)
	})

	t.Run("sealed with another secret opens empty", func(t *testing.T) {
		inner := storage.NewInMemoryRepo()
		p, err := session.Open(ctx, storage.NewSealedRepo(inner, "one"), "session:x")
		require.NoError(t, err)
		require.NoError(t, p.Login(ctx, testIdentity, "abc"))

		rotated, err := session.Open(ctx, storage.NewSealedRepo(inner, "two"), "session:x")
		require.NoError(t, err)
		require.False(t, rotated.Snapshot().Authenticated())
	})
}

func TestPersisted_RepoFailures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := session.Open(ctx, failingRepo{Repo: storage.NewInMemoryRepo(), err: boom}, "session:x")
	require.ErrorIs(t, err, boom)

	repo := &switchableRepo{Repo: storage.NewInMemoryRepo()}
	p, err := session.Open(ctx, repo, "session:x")
	require.NoError(t, err)
	repo.fail = boom
	require.ErrorIs(t, p.Login(ctx, testIdentity, "abc"), boom)
}

type switchableRepo struct {
	storage.Repo
	fail error
}

func (s *switchableRepo) Set(ctx context.Context, key string, value []byte) error {
	if s.fail != nil {
		return s.fail
	}
	return s.Repo.Set(ctx, key, value)
}

func TestManager_Discard(t *testing.T) {
	ctx := context.Background()
	manager := session.NewManager(storage.NewInMemoryRepo())

	id := manager.NewID()
	require.NotEqual(t, id, manager.NewID())

	p, err := manager.Open(ctx, id)
	require.NoError(t, err)
	require.NoError(t, p.Login(ctx, session.Identity{ID: "u1", Role: session.RoleAdmin}, "abc"))

	require.NoError(t, manager.Discard(ctx, id))
	require.NoError(t, manager.Discard(ctx, id))

	reopened, err := manager.Open(ctx, id)
	require.NoError(t, err)
	require.False(t, reopened.Snapshot().Authenticated())
}
