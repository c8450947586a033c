// Package cryptox implements the password digest stored in account records.
package cryptox

import (
	"crypto"
	_ "crypto/sha256" // registers crypto.SHA256
	"encoding/hex"

	"github.com/dmitrijs2005/gophledger/internal/common"
)

// ErrDigestUnavailable is returned when the hash primitive is not linked in.
var ErrDigestUnavailable = common.ErrDigestUnavailable

// digestHash is the primitive behind Digest. Tests swap it for an unlinked
// hash to exercise the failure path.
var digestHash = crypto.SHA256

// DigestSize is the length of a Digest result in hex characters.
const DigestSize = 64

// Digest returns the lowercase hex SHA-256 of the UTF-8 bytes of password.
// The result is deterministic and unsalted. It never returns an empty string
// with a nil error: if the primitive is missing, ErrDigestUnavailable is
// returned instead.
func Digest(password string) (string, error) {
	if !digestHash.Available() {
		return "", ErrDigestUnavailable
	}
	h := digestHash.New()
	h.Write([]byte(password))
	return hex.EncodeToString(h.Sum(nil)), nil
}
