// Package models defines the client-side data models of the ledger.
package models

import "slices"

// AccountRecord is the durable per-user state: the password digest plus the
// user's ledger values in insertion order.
type AccountRecord struct {
	// PasswordHash is the hex digest of the password. Empty means the account
	// does not exist.
	PasswordHash string `json:"passwordHash"`

	// Values never is nil once loaded or created through the services.
	Values []float64 `json:"values"`
}

// NewAccountRecord returns a fresh record with no values.
func NewAccountRecord(passwordHash string) AccountRecord {
	return AccountRecord{PasswordHash: passwordHash, Values: []float64{}}
}

// Exists reports whether the record represents a registered account.
func (r AccountRecord) Exists() bool {
	return r.PasswordHash != ""
}

// Clone returns a deep copy so callers can mutate Values freely.
func (r AccountRecord) Clone() AccountRecord {
	values := slices.Clone(r.Values)
	if values == nil {
		values = []float64{}
	}
	return AccountRecord{PasswordHash: r.PasswordHash, Values: values}
}
