package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophledger/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/gophledger/internal/client/repositories/kv"
	"github.com/dmitrijs2005/gophledger/internal/client/services"
	"github.com/dmitrijs2005/gophledger/internal/logging"
)

// newTestApp returns an App over repo (or a fresh in-memory one) writing to
// the returned buffer.
func newTestApp(t *testing.T, repo accounts.Repository) (*App, *bytes.Buffer) {
	t.Helper()
	if repo == nil {
		repo = accounts.NewKVRepository(kv.NewMemoryRepository())
	}
	log := logging.Discard()
	out := &bytes.Buffer{}
	return &App{
		authService:   services.NewAuthService(repo, log),
		ledgerService: services.NewLedgerService(repo, log),
		reader:        bufio.NewReader(strings.NewReader("")),
		out:           out,
		log:           log,
		now:           func() time.Time { return time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC) },
	}, out
}

// stubInputs makes every text prompt answer text and every password prompt
// answer password.
func stubInputs(t *testing.T, text string, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return text, nil }
	getPassword = func(_ *bufio.Reader, _ io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func stubConfirm(t *testing.T, answer bool) {
	t.Helper()
	orig := getConfirm
	getConfirm = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) { return answer, nil }
	t.Cleanup(func() { getConfirm = orig })
}

// capturePrintln redirects printlnFn into a buffer.
func capturePrintln(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) { return buf.WriteString(fmt.Sprintln(a...)) }
	t.Cleanup(func() { printlnFn = orig })
	return &buf
}
