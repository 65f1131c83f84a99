package session_test

import (
	"testing"

	"github.com/jrsteele09/go-contest-portal/session"
	"github.com/stretchr/testify/require"
)

var testIdentity = session.Identity{ID: "42", Email: "a@b.com", Role: session.RoleStudent}

func TestStore_Lifecycle(t *testing.T) {
	s := session.New()

	t.Run("starts unauthenticated", func(t *testing.T) {
		snap := s.Snapshot()
		require.False(t, snap.Authenticated())
		require.Nil(t, snap.Identity)
		require.Empty(t, snap.Token)
	})

	t.Run("login sets identity and token together", func(t *testing.T) {
		s.Login(testIdentity, "abc")
		snap := s.Snapshot()
		require.True(t, snap.Authenticated())
		require.Equal(t, testIdentity, *snap.Identity)
		require.Equal(t, "abc", snap.Token)
	})

	t.Run("login overwrites", func(t *testing.T) {
		s.Login(session.Identity{ID: "7", Role: session.RoleAlumni}, "def")
		snap := s.Snapshot()
		require.Equal(t, "7", snap.Identity.ID)
		require.Empty(t, snap.Identity.Email)
		require.Equal(t, "def", snap.Token)
	})

	t.Run("logout clears both", func(t *testing.T) {
		s.Logout()
		snap := s.Snapshot()
		require.False(t, snap.Authenticated())
		require.Nil(t, snap.Identity)
		require.Empty(t, snap.Token)
	})
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	s := session.New()
	s.Login(testIdentity, "abc")

	snap := s.Snapshot()
	snap.Identity.Role = session.RoleAdmin

	require.Equal(t, session.RoleStudent, s.Snapshot().Identity.Role)
}

func TestStore_Subscribe(t *testing.T) {
	s := session.New()
	var seen []session.State
	unsubscribe := s.Subscribe(func(st session.State) { seen = append(seen, st) })

	s.Login(testIdentity, "abc")
	s.Login(testIdentity, "abc")
	s.Logout()
	require.Len(t, seen, 3, "identical logins are not deduplicated")
	require.Equal(t, "abc", seen[1].Token)
	require.False(t, seen[2].Authenticated())

	unsubscribe()
	s.Login(testIdentity, "abc")
	require.Len(t, seen, 3)
}

func TestRole_Valid(t *testing.T) {
	for _, r := range session.Roles {
		require.True(t, r.Valid(), r)
	}
	require.False(t, session.Role("").Valid())
	require.False(t, session.Role("student").Valid())
	require.Equal(t, session.RoleStudent, session.DefaultRole)
}
