package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gophledger/internal/client/models"
	"github.com/dmitrijs2005/gophledger/internal/common"
	"github.com/dmitrijs2005/gophledger/internal/cryptox"
	"github.com/dmitrijs2005/gophledger/internal/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_ThenLogin_EmptyLedger(t *testing.T) {
	auth, _, store := newServices(t)
	ctx := context.Background()

	require.NoError(t, auth.Register(ctx, "alice", []byte("pw")))

	rec, err := store.Load(ctx, "alice")
	require.NoError(t, err)
	want, _ := cryptox.Digest("pw")
	assert.Equal(t, want, rec.PasswordHash)
	assert.Empty(t, rec.Values)

	s, err := auth.Login(ctx, "alice", []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, "alice", s.Username)
	assert.Equal(t, Authenticated, s.State())
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, []float64{}, s.Values())
}

func TestRegister_DoesNotAuthenticate(t *testing.T) {
	auth, _, store := newServices(t)
	require.NoError(t, auth.Register(context.Background(), "alice", []byte("pw")))
	assert.Equal(t, 1, store.saves)
}

func TestRegister_EmptyFields(t *testing.T) {
	auth, _, store := newServices(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "pw"},
		{"blank username", "   ", "pw"},
		{"empty password", "alice", ""},
		{"blank password", "alice", " \t "},
		{"both empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := auth.Register(ctx, tc.username, []byte(tc.password))
			require.ErrorIs(t, err, common.ErrInvalidInput)

			_, err = auth.Login(ctx, tc.username, []byte(tc.password))
			require.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
	assert.Zero(t, store.saves)
}

func TestRegister_Duplicate_LeavesOriginal(t *testing.T) {
	auth, ledger, store := newServices(t)
	ctx := context.Background()

	s := loggedIn(t, auth, "alice")
	_, err := ledger.AddValue(ctx, s, "7")
	require.NoError(t, err)

	before, err := store.Load(ctx, "alice")
	require.NoError(t, err)

	err = auth.Register(ctx, "alice", []byte("other"))
	require.ErrorIs(t, err, common.ErrUserAlreadyExists)

	after, err := store.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRegister_OverEmptyDigestIsAllowed(t *testing.T) {
	auth, _, store := newServices(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "ghost", models.AccountRecord{Values: []float64{1}}))
	require.NoError(t, auth.Register(ctx, "ghost", []byte("pw")))

	rec, err := store.Load(ctx, "ghost")
	require.NoError(t, err)
	assert.True(t, rec.Exists())
	assert.Empty(t, rec.Values)
}

func TestRegister_TrimsCredentials(t *testing.T) {
	auth, _, _ := newServices(t)
	ctx := context.Background()

	require.NoError(t, auth.Register(ctx, "  alice ", []byte(" pw\n")))
	s, err := auth.Login(ctx, "alice", []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, "alice", s.Username)
}

func TestLogin_Failures_LeaveDataUnchanged(t *testing.T) {
	auth, _, store := newServices(t)
	ctx := context.Background()
	require.NoError(t, auth.Register(ctx, "alice", []byte("pw")))
	before, err := store.Load(ctx, "alice")
	require.NoError(t, err)
	saves := store.saves

	s, err := auth.Login(ctx, "alice", []byte("wrong"))
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Nil(t, s)

	s, err = auth.Login(ctx, "bob", []byte("pw"))
	require.ErrorIs(t, err, common.ErrUserNotFound)
	assert.Nil(t, s)

	after, err := store.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, saves, store.saves)

	_, err = store.Load(ctx, "bob")
	require.NoError(t, err)
}

func TestLogin_EmptyStoredDigestIsNotAnAccount(t *testing.T) {
	auth, _, store := newServices(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "ghost", models.NewAccountRecord("")))

	_, err := auth.Login(ctx, "ghost", []byte("pw"))
	require.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestDigestUnavailable_AbortsAuth(t *testing.T) {
	store := newStore(t)
	a := &authService{
		accounts: store,
		log:      logging.Discard(),
		digest: func(string) (string, error) {
			return "", common.ErrDigestUnavailable
		},
	}
	ctx := context.Background()

	err := a.Register(ctx, "alice", []byte("pw"))
	require.ErrorIs(t, err, common.ErrDigestUnavailable)
	assert.Zero(t, store.saves)

	rec, err := store.Load(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, rec.Exists())

	// An existing account must not be matched by a failing digest either.
	require.NoError(t, store.Save(ctx, "bob", models.NewAccountRecord("abc")))
	_, err = a.Login(ctx, "bob", []byte("pw"))
	require.ErrorIs(t, err, common.ErrDigestUnavailable)
}

func TestStorageFailure_Propagates(t *testing.T) {
	auth, _, store := newServices(t)
	ctx := context.Background()

	store.failSave = true
	err := auth.Register(ctx, "alice", []byte("pw"))
	require.ErrorIs(t, err, common.ErrStorageFailure)
	require.ErrorIs(t, err, errDisk)

	store.failSave = false
	store.failLoad = true
	err = auth.Register(ctx, "alice", []byte("pw"))
	require.ErrorIs(t, err, common.ErrStorageFailure)

	_, err = auth.Login(ctx, "alice", []byte("pw"))
	require.ErrorIs(t, err, common.ErrStorageFailure)
}

func TestLogout(t *testing.T) {
	auth, ledger, _ := newServices(t)
	ctx := context.Background()

	s := loggedIn(t, auth, "alice")
	_, err := ledger.AddValue(ctx, s, "1")
	require.NoError(t, err)

	auth.Logout(ctx, s)
	assert.Equal(t, Anonymous, s.State())
	assert.Empty(t, s.Values())

	// idempotent, nil-safe
	auth.Logout(ctx, s)
	auth.Logout(ctx, nil)

	// durable data survives the logout
	s2, err := auth.Login(ctx, "alice", []byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, s2.Values())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "anonymous", Anonymous.String())
	assert.Equal(t, "authenticated", Authenticated.String())

	var s *Session
	assert.Equal(t, Anonymous, s.State())
}
