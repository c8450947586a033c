package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophledger/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	AddValue(ctx context.Context, raw string) error
	List(ctx context.Context) error
	Sum(ctx context.Context) error
	Clear(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the ledger CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user types
// "exit" or "quit".
//
//	Not logged in:
//	  - help           - show available commands
//	  - register       - create an account
//	  - login          - authenticate
//	  - exit | quit    - leave the program
//
//	Logged in:
//	  - help           - show available commands
//	  - add [value]    - record a value (prompts when omitted)
//	  - (l)ist         - list recorded values
//	  - sum            - show the total
//	  - clear          - remove all values after confirmation
//	  - logout         - log out
//	  - exit | quit    - leave the program
//
// Errors returned by handlers are rendered with describe and the loop goes on.
// Canceling ctx (Ctrl-C) ends the loop, also while it waits for input.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			printlnFn("Bye!")
			return
		}

		printlnFn(fmt.Sprintf("ledger %s> ", statusFn()))

		r, ok := readLineCtx(ctx, reader)
		if !ok {
			printlnFn("Bye!")
			return
		}
		line, err := r.line, r.err
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: add [value], (l)ist, sum, clear, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register", "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in. Use 'logout' first.")
				break
			}
			if cmd == "register" {
				report(a.Register(ctx))
			} else {
				report(a.Login(ctx))
			}

		case "add", "l", "list", "sum", "clear", "logout":
			if !a.isLoggedIn() {
				report(common.ErrNoSession)
				break
			}
			switch cmd {
			case "add":
				report(a.AddValue(ctx, strings.Join(args, " ")))
			case "l", "list":
				report(a.List(ctx))
			case "sum":
				report(a.Sum(ctx))
			case "clear":
				report(a.Clear(ctx))
			case "logout":
				report(a.Logout(ctx))
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			// EOF after a final unterminated line
			return
		}
	}
}

type lineResult struct {
	line string
	err  error
}

// readLineCtx reads one line unless ctx is canceled first; ok is false in
// that case. Only one read is in flight at a time so handler prompts keep
// sharing reader.
func readLineCtx(ctx context.Context, reader *bufio.Reader) (lineResult, bool) {
	ch := make(chan lineResult, 1)
	go func() {
		line, err := reader.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return lineResult{}, false
	case r := <-ch:
		return r, true
	}
}

func report(err error) {
	if err != nil {
		printlnFn(describe(err))
	}
}
