// Package common defines the sentinel errors and shared constants used across
// the ledger client layers. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Input validation errors.
	ErrInvalidInput  = errors.New("invalid input")
	ErrEmptyInput    = fmt.Errorf("%w: empty value", ErrInvalidInput)
	ErrInvalidNumber = errors.New("invalid number")

	// Account errors.
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoSession is returned when a ledger operation gets a nil or
	// logged-out session.
	ErrNoSession = errors.New("no active session")

	// Infrastructure errors.
	ErrDigestUnavailable = errors.New("digest unavailable")
	ErrStorageFailure    = errors.New("storage failure")
)
