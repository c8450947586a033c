// Package accounts maps a username to its persisted AccountRecord on top of
// an opaque kv.Repository.
package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophledger/internal/client/models"
	"github.com/dmitrijs2005/gophledger/internal/client/repositories/kv"
	"github.com/dmitrijs2005/gophledger/internal/common"
)

// Repository loads and saves account records by username.
type Repository interface {
	// Load returns the record for username. An unknown username yields a
	// record with an empty hash and no values, not an error.
	Load(ctx context.Context, username string) (models.AccountRecord, error)

	// Save overwrites the record for username (last writer wins).
	Save(ctx context.Context, username string, record models.AccountRecord) error
}

// Key returns the storage key for username. Prefix concatenation is
// injective, so two usernames never share a key.
func Key(username string) string {
	return common.UserDataKeyPrefix + username
}

// KVRepository is the Repository over a kv.Repository, storing records as JSON.
type KVRepository struct {
	kv kv.Repository
}

func NewKVRepository(store kv.Repository) *KVRepository {
	return &KVRepository{kv: store}
}

func (r *KVRepository) Load(ctx context.Context, username string) (models.AccountRecord, error) {
	raw, ok, err := r.kv.Get(ctx, Key(username))
	if err != nil {
		return models.AccountRecord{}, storageFailure("load account", err)
	}
	if !ok {
		return models.NewAccountRecord(""), nil
	}

	var rec models.AccountRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return models.AccountRecord{}, storageFailure("decode account", err)
	}
	if rec.Values == nil {
		rec.Values = []float64{}
	}
	return rec, nil
}

func (r *KVRepository) Save(ctx context.Context, username string, record models.AccountRecord) error {
	if record.Values == nil {
		record.Values = []float64{}
	}

	b, err := json.Marshal(record)
	if err != nil {
		return storageFailure("encode account", err)
	}
	if err := r.kv.Set(ctx, Key(username), string(b)); err != nil {
		return storageFailure("save account", err)
	}
	return nil
}

func storageFailure(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(common.ErrStorageFailure, err))
}

var _ Repository = (*KVRepository)(nil)
