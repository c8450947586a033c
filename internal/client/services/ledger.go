package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophledger/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/gophledger/internal/common"
	"github.com/dmitrijs2005/gophledger/internal/logging"
	"github.com/shopspring/decimal"
)

// LedgerService records and summarizes the values of a logged-in user.
// Every mutation is saved before it becomes visible in the Session.
type LedgerService interface {
	AddValue(ctx context.Context, session *Session, raw string) (float64, error)
	ListValues(session *Session) []float64
	TotalSum(session *Session) float64
	ClearAll(ctx context.Context, session *Session) error
}

type ledgerService struct {
	accounts accounts.Repository
	log      logging.Logger
}

func NewLedgerService(repo accounts.Repository, log logging.Logger) LedgerService {
	return &ledgerService{accounts: repo, log: log.With("service", "ledger")}
}

// ParseValue parses a user-typed number. Only plain decimal notation with an
// optional exponent is accepted; NaN, infinities and hex floats are not.
func ParseValue(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, common.ErrEmptyInput
	}

	if _, err := decimal.NewFromString(s); err != nil {
		return 0, fmt.Errorf("%w: %q", common.ErrInvalidNumber, s)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q is out of range", common.ErrInvalidNumber, s)
	}
	return v, nil
}

// AddValue parses raw, appends it to the user's values and saves the record.
func (l *ledgerService) AddValue(ctx context.Context, session *Session, raw string) (float64, error) {
	if !session.Authenticated() {
		return 0, common.ErrNoSession
	}

	v, err := ParseValue(raw)
	if err != nil {
		return 0, err
	}

	next := session.record.Clone()
	next.Values = append(next.Values, v)
	if err := l.accounts.Save(ctx, session.Username, next); err != nil {
		return 0, err
	}
	session.record = next

	l.log.Debug(ctx, "value added", "user", session.Username, "session", session.ID.String(), "count", len(next.Values))
	return v, nil
}

func (l *ledgerService) ListValues(session *Session) []float64 {
	return session.Values()
}

// TotalSum adds the values in insertion order. The sum of nothing is 0.
func (l *ledgerService) TotalSum(session *Session) float64 {
	var total float64
	for _, v := range session.Values() {
		total += v
	}
	return total
}

// ClearAll removes every value and saves the empty ledger. Clearing an empty
// ledger succeeds.
func (l *ledgerService) ClearAll(ctx context.Context, session *Session) error {
	if !session.Authenticated() {
		return common.ErrNoSession
	}

	next := session.record.Clone()
	next.Values = []float64{}
	if err := l.accounts.Save(ctx, session.Username, next); err != nil {
		return err
	}
	session.record = next

	l.log.Info(ctx, "values cleared", "user", session.Username, "session", session.ID.String())
	return nil
}
