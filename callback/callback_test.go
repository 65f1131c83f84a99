package callback_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jrsteele09/go-contest-portal/callback"
	"github.com/jrsteele09/go-contest-portal/session"
	"github.com/jrsteele09/go-contest-portal/storage"
	"github.com/stretchr/testify/require"
)

type recordingStore struct {
	calls    int
	identity session.Identity
	token    string
	err      error
}

func (r *recordingStore) Login(_ context.Context, identity session.Identity, token string) error {
	r.calls++
	r.identity = identity
	r.token = token
	return r.err
}

func resolve(t *testing.T, rawQuery string) (callback.Result, *recordingStore) {
	t.Helper()
	store := &recordingStore{}
	res, err := callback.NewRouter(callback.DefaultDestinations).Resolve(context.Background(), rawQuery, store)
	require.NoError(t, err)
	return res, store
}

func TestResolve_RoleGoesToDashboard(t *testing.T) {
	res, store := resolve(t, "token=abc&userId=42&email=a@b.com&role=STUDENT")

	require.Equal(t, callback.OutcomeDashboard, res.Outcome)
	require.Equal(t, "/dashboard", res.Target)
	require.Equal(t, callback.PhaseAuthenticating, res.Phase)
	require.Equal(t, 1, store.calls)
	require.Equal(t, session.Identity{ID: "42", Email: "a@b.com", Role: session.RoleStudent}, store.identity)
	require.Equal(t, "abc", store.token)
}

func TestResolve_NoRoleGoesToRoleSelection(t *testing.T) {
	res, store := resolve(t, "token=abc&userId=42")

	require.Equal(t, callback.OutcomeSelectRole, res.Outcome)
	require.Equal(t, "/select-role?token=abc&userId=42", res.Target)
	require.Equal(t, 1, store.calls)
	require.Equal(t, session.Identity{ID: "42", Email: "", Role: session.RoleStudent}, store.identity)
	require.Equal(t, "abc", store.token)
}

func TestResolve_EmptyRoleStoresDefaultButStillSelectsRole(t *testing.T) {
	res, store := resolve(t, "token=abc&userId=42&role=")

	require.Equal(t, callback.OutcomeSelectRole, res.Outcome)
	require.Equal(t, session.RoleStudent, store.identity.Role)
}

func TestResolve_MissingCredentials(t *testing.T) {
	for name, q := range map[string]string{
		"no token":       "userId=42&role=STUDENT",
		"empty token":    "token=&userId=42",
		"no user":        "token=abc&email=a@b.com",
		"nothing":        "",
		"unrelated only": "foo=bar",
	} {
		t.Run(name, func(t *testing.T) {
			res, store := resolve(t, q)
			require.Equal(t, callback.OutcomeMissingCredentials, res.Outcome)
			require.Equal(t, "/login", res.Target)
			require.False(t, res.Login)
			require.Zero(t, store.calls)
		})
	}
}

func TestResolve_UnparsableQueryStaysLoading(t *testing.T) {
	res, store := resolve(t, "token=%zz&userId=42")

	require.Equal(t, callback.PhaseLoading, res.Phase)
	require.Equal(t, "/login", res.Target)
	require.Zero(t, store.calls)
}

func TestResolve_ForwardsValuesVerbatim(t *testing.T) {
	res, _ := resolve(t, "token=a%2Bb%3D%3D&userId=user%2042")
	require.Equal(t, "/select-role?token=a%2Bb%3D%3D&userId=user+42", res.Target)
}

func TestResolve_RevisitLogsInAgain(t *testing.T) {
	store := &recordingStore{}
	router := callback.NewRouter(callback.DefaultDestinations)
	for i := 0; i < 2; i++ {
		_, err := router.Resolve(context.Background(), "token=abc&userId=42&role=ALUMNI", store)
		require.NoError(t, err)
	}
	require.Equal(t, 2, store.calls)
}

func TestResolve_LoginFailure(t *testing.T) {
	boom := errors.New("storage down")
	store := &recordingStore{err: boom}

	_, err := callback.NewRouter(callback.DefaultDestinations).Resolve(context.Background(), "token=abc&userId=42", store)
	require.ErrorIs(t, err, boom)
}

func TestResolve_WithPersistedSession(t *testing.T) {
	ctx := context.Background()
	s, err := session.NewManager(storage.NewInMemoryRepo()).Open(ctx, "browser-1")
	require.NoError(t, err)

	_, err = callback.NewRouter(callback.DefaultDestinations).Resolve(ctx, "token=abc&userId=42&email=a@b.com&role=STUDENT", s)
	require.NoError(t, err)

	snap := s.Snapshot()
	require.Equal(t, session.Identity{ID: "42", Email: "a@b.com", Role: session.RoleStudent}, *snap.Identity)
	require.Equal(t, "abc", snap.Token)
}

func TestDecide_UnknownRoleIsStoredAsGiven(t *testing.T) {
	d := callback.Decide(callback.Params{Token: "t", UserID: "u", Role: "MENTOR"}, callback.DefaultDestinations)
	require.Equal(t, callback.OutcomeDashboard, d.Outcome)
	require.Equal(t, session.Role("MENTOR"), d.Identity.Role)
}

func TestPhase_Placeholder(t *testing.T) {
	require.Equal(t, "Loading...", callback.PhaseLoading.Placeholder())
	require.Equal(t, "Authenticating...", callback.PhaseAuthenticating.Placeholder())
	require.Equal(t, "authenticating", callback.PhaseAuthenticating.String())
}
