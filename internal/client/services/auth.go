// Package services contains the application services of the ledger client:
// account registration and login (AuthService) and value bookkeeping for a
// logged-in user (LedgerService).
package services

import (
	"bytes"
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophledger/internal/client/models"
	"github.com/dmitrijs2005/gophledger/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/gophledger/internal/common"
	"github.com/dmitrijs2005/gophledger/internal/cryptox"
	"github.com/dmitrijs2005/gophledger/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account; does not log the user in.
//   - Login: verify credentials and open a Session.
//   - Logout: end a Session. Durable data is already saved.
//
// Usernames and passwords are trimmed of surrounding whitespace first.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) (*Session, error)
	Logout(ctx context.Context, session *Session)
}

type authService struct {
	accounts accounts.Repository
	log      logging.Logger
	digest   func(string) (string, error)
}

// NewAuthService constructs an AuthService over the given account store.
func NewAuthService(repo accounts.Repository, log logging.Logger) AuthService {
	return &authService{accounts: repo, log: log.With("service", "auth"), digest: cryptox.Digest}
}

func normalize(username string, password []byte) (string, []byte, error) {
	username = strings.TrimSpace(username)
	password = bytes.TrimSpace(password)
	if username == "" || len(password) == 0 {
		return "", nil, fmt.Errorf("%w: username and password are required", common.ErrInvalidInput)
	}
	return username, password, nil
}

// Register creates a new account with an empty ledger. An existing record
// with a non-empty digest is never overwritten.
func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	username, password, err := normalize(username, password)
	if err != nil {
		return err
	}

	existing, err := a.accounts.Load(ctx, username)
	if err != nil {
		return err
	}
	if existing.Exists() {
		a.log.Info(ctx, "registration rejected", "user", username)
		return common.ErrUserAlreadyExists
	}

	digest, err := a.digest(string(password))
	if err != nil {
		return err
	}

	if err := a.accounts.Save(ctx, username, models.NewAccountRecord(digest)); err != nil {
		return err
	}

	a.log.Info(ctx, "account registered", "user", username)
	return nil
}

// Login verifies the password against the stored digest and returns an
// authenticated Session holding a working copy of the record.
func (a *authService) Login(ctx context.Context, username string, password []byte) (*Session, error) {
	username, password, err := normalize(username, password)
	if err != nil {
		return nil, err
	}

	record, err := a.accounts.Load(ctx, username)
	if err != nil {
		return nil, err
	}
	if !record.Exists() {
		a.log.Info(ctx, "login failed", "user", username, "reason", "not found")
		return nil, common.ErrUserNotFound
	}

	candidate, err := a.digest(string(password))
	if err != nil {
		return nil, err
	}

	if candidate == "" || subtle.ConstantTimeCompare([]byte(record.PasswordHash), []byte(candidate)) == 0 {
		a.log.Info(ctx, "login failed", "user", username, "reason", "bad credentials")
		return nil, common.ErrInvalidCredentials
	}

	s := newSession(username, record)
	a.log.Info(ctx, "login succeeded", "user", username, "session", s.ID.String())
	return s, nil
}

// Logout ends the session unconditionally. Calling it on a nil or already
// ended session is a no-op.
func (a *authService) Logout(ctx context.Context, session *Session) {
	if !session.Authenticated() {
		return
	}
	a.log.Info(ctx, "logged out", "user", session.Username, "session", session.ID.String())
	session.end()
}
