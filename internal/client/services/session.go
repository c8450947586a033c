package services

import (
	"slices"

	"github.com/dmitrijs2005/gophledger/internal/client/models"
	"github.com/google/uuid"
)

// State is the authentication state of a Session.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Session is the in-memory working context of one logged-in user. It is
// created by AuthService.Login and handed to every LedgerService call.
// A Session is not safe for concurrent use.
type Session struct {
	ID       uuid.UUID
	Username string

	record models.AccountRecord
	state  State
}

func newSession(username string, record models.AccountRecord) *Session {
	return &Session{
		ID:       uuid.New(),
		Username: username,
		record:   record.Clone(),
		state:    Authenticated,
	}
}

// State reports the session state. A nil session is Anonymous.
func (s *Session) State() State {
	if s == nil {
		return Anonymous
	}
	return s.state
}

// Authenticated is a shorthand for State() == Authenticated.
func (s *Session) Authenticated() bool {
	return s.State() == Authenticated
}

// Values returns a copy of the user's values in insertion order.
func (s *Session) Values() []float64 {
	if !s.Authenticated() {
		return []float64{}
	}
	values := slices.Clone(s.record.Values)
	if values == nil {
		values = []float64{}
	}
	return values
}

func (s *Session) end() {
	s.state = Anonymous
	s.record = models.AccountRecord{}
}
