package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/gophledger/internal/client/config"
	"github.com/dmitrijs2005/gophledger/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/gophledger/internal/client/services"
	"github.com/dmitrijs2005/gophledger/internal/client/storage"
	"github.com/dmitrijs2005/gophledger/internal/logging"
)

// dateLayout renders the banner date as dd/MM/yyyy.
const dateLayout = "02/01/2006"

type App struct {
	authService   services.AuthService
	ledgerService services.LedgerService
	session       *services.Session
	reader        *bufio.Reader
	out           io.Writer
	log           logging.Logger
	closer        io.Closer
	now           func() time.Time
}

// NewApp opens the storage configured in c and builds the services on top
// of it. The caller must Close the App.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, closer, err := storage.Open(ctx, c.StorageDriver, c.StoragePath)
	if err != nil {
		log.Error(ctx, "error opening storage", "driver", c.StorageDriver, "path", c.StoragePath, "error", err)
		return nil, err
	}
	log.Debug(ctx, "storage opened", "driver", c.StorageDriver, "path", c.StoragePath)

	repo := accounts.NewKVRepository(store)

	return &App{
		authService:   services.NewAuthService(repo, log),
		ledgerService: services.NewLedgerService(repo, log),
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
		log:           log,
		closer:        closer,
		now:           time.Now,
	}, nil
}

// Close ends the current session, if any, and releases the storage.
func (a *App) Close(ctx context.Context) error {
	a.authService.Logout(ctx, a.session)
	a.session = nil
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.session.Username)
}

// Run shows the banner and blocks in the REPL until the user exits or
// stdin is closed.
func (a *App) Run(ctx context.Context) {
	printlnFn(fmt.Sprintf("Ledger CLI, %s (type 'help' for commands)", a.now().Format(dateLayout)))
	runREPL(ctx, a, a.getStatus, a.reader)
}
