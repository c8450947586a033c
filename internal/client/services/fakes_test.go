package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/gophledger/internal/client/models"
	"github.com/dmitrijs2005/gophledger/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/gophledger/internal/client/repositories/kv"
	"github.com/dmitrijs2005/gophledger/internal/common"
	"github.com/dmitrijs2005/gophledger/internal/logging"
)

var errDisk = errors.New("disk failure")

// flakyStore wraps a real account store and fails on demand.
type flakyStore struct {
	accounts.Repository

	failLoad bool
	failSave bool
	saves    int
}

func (f *flakyStore) Load(ctx context.Context, username string) (models.AccountRecord, error) {
	if f.failLoad {
		return models.AccountRecord{}, errors.Join(common.ErrStorageFailure, errDisk)
	}
	return f.Repository.Load(ctx, username)
}

func (f *flakyStore) Save(ctx context.Context, username string, record models.AccountRecord) error {
	f.saves++
	if f.failSave {
		return errors.Join(common.ErrStorageFailure, errDisk)
	}
	return f.Repository.Save(ctx, username, record)
}

func newStore(t *testing.T) *flakyStore {
	t.Helper()
	return &flakyStore{Repository: accounts.NewKVRepository(kv.NewMemoryRepository())}
}

func newServices(t *testing.T) (AuthService, LedgerService, *flakyStore) {
	t.Helper()
	store := newStore(t)
	log := logging.Discard()
	return NewAuthService(store, log), NewLedgerService(store, log), store
}

// loggedIn registers username and opens a session for it.
func loggedIn(t *testing.T, auth AuthService, username string) *Session {
	t.Helper()
	ctx := context.Background()
	if err := auth.Register(ctx, username, []byte("secret")); err != nil {
		t.Fatalf("register: %v", err)
	}
	s, err := auth.Login(ctx, username, []byte("secret"))
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	return s
}
