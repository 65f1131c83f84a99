package theme_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	portalerrors "github.com/jrsteele09/go-contest-portal/internal/errors"
	"github.com/jrsteele09/go-contest-portal/storage"
	"github.com/jrsteele09/go-contest-portal/theme"
	"github.com/stretchr/testify/require"
)

func TestState_ToggleIsItsOwnInverse(t *testing.T) {
	for _, start := range []theme.Variant{theme.Purple, theme.Blue} {
		t.Run(string(start), func(t *testing.T) {
			s := theme.State{DarkVariant: start}
			require.NotEqual(t, start, s.Toggle().DarkVariant)
			require.Equal(t, start, s.Toggle().Toggle().DarkVariant)
		})
	}
}

func TestState_ToggleUnknownGoesToPurple(t *testing.T) {
	s := theme.State{DarkVariant: "green"}
	require.Equal(t, theme.Purple, s.Toggle().DarkVariant)
}

func TestParse(t *testing.T) {
	v, err := theme.Parse("blue")
	require.NoError(t, err)
	require.Equal(t, theme.Blue, v)

	_, err = theme.Parse("Blue")
	require.ErrorIs(t, err, portalerrors.ErrInvalidVariant)
}

func TestStore_DefaultToggleAndRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "portal.json")

	repo, err := storage.NewFileRepo(path)
	require.NoError(t, err)
	s, err := theme.Open(ctx, repo, theme.Key("b1"))
	require.NoError(t, err)
	require.Equal(t, theme.Purple, s.DarkVariant())

	v, err := s.ToggleDarkVariant(ctx)
	require.NoError(t, err)
	require.Equal(t, theme.Blue, v)

	// Simulate a process restart with a fresh repo over the same file.
	restarted, err := storage.NewFileRepo(path)
	require.NoError(t, err)
	s2, err := theme.Open(ctx, restarted, theme.Key("b1"))
	require.NoError(t, err)
	require.Equal(t, theme.Blue, s2.DarkVariant())

	raw, err := restarted.Get(ctx, "theme-variant:b1")
	require.NoError(t, err)
	require.JSONEq(t, `{"state":{"darkVariant":"blue"},"version":0}`, string(raw))
}

func TestStore_Set(t *testing.T) {
	ctx := context.Background()
	s, err := theme.Open(ctx, storage.NewInMemoryRepo(), theme.Key("b1"))
	require.NoError(t, err)

	require.NoError(t, s.SetDarkVariant(ctx, theme.Blue))
	require.Equal(t, theme.Blue, s.DarkVariant())
	require.NoError(t, s.SetDarkVariant(ctx, theme.Blue))
	require.Equal(t, theme.Blue, s.DarkVariant())

	err = s.SetDarkVariant(ctx, "green")
	require.ErrorIs(t, err, portalerrors.ErrInvalidVariant)
	require.Equal(t, theme.Blue, s.DarkVariant())
}

func TestStore_NormalizesOnLoad(t *testing.T) {
	ctx := context.Background()

	for name, raw := range map[string]string{
		"unknown variant": `{"state":{"darkVariant":"green"},"version":0}`,
		"not json":        `purple`,
		"empty object":    `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			repo := storage.NewInMemoryRepo()
			require.NoError(t, repo.Set(ctx, theme.Key("b1"), []byte(raw)))

			s, err := theme.Open(ctx, repo, theme.Key("b1"))
			require.NoError(t, err)
			require.Equal(t, theme.Default, s.DarkVariant())

			v, err := s.ToggleDarkVariant(ctx)
			require.NoError(t, err)
			require.Equal(t, theme.Blue, v)
		})
	}
}

type brokenRepo struct {
	storage.Repo
}

func (brokenRepo) Set(context.Context, string, []byte) error { return errors.New("disk full") }

func TestStore_FailedSaveKeepsValue(t *testing.T) {
	ctx := context.Background()
	s, err := theme.Open(ctx, brokenRepo{Repo: storage.NewInMemoryRepo()}, theme.Key("b1"))
	require.NoError(t, err)

	_, err = s.ToggleDarkVariant(ctx)
	require.Error(t, err)
	require.Equal(t, theme.Purple, s.DarkVariant())
}

func TestManager_BrowsersAreIndependent(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewInMemoryRepo()
	m := theme.NewManager(repo)

	first, second := m.NewID(), m.NewID()
	require.NotEqual(t, first, second)

	a, err := m.Open(ctx, first)
	require.NoError(t, err)
	v, err := a.ToggleDarkVariant(ctx)
	require.NoError(t, err)
	require.Equal(t, theme.Blue, v)

	b, err := m.Open(ctx, second)
	require.NoError(t, err)
	require.Equal(t, theme.Purple, b.DarkVariant())

	reopened, err := m.Open(ctx, first)
	require.NoError(t, err)
	require.Equal(t, theme.Blue, reopened.DarkVariant())
}
