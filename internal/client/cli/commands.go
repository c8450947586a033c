package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophledger/internal/buildinfo"
	"github.com/dmitrijs2005/gophledger/internal/common"
	"github.com/google/subcommands"
)

// Opener builds the App a command runs against. It is passed as the first
// argument of subcommands.Commander.Execute so that help and flag listing
// never touch storage.
type Opener func(ctx context.Context) (*App, error)

// Commands lists the ledger subcommands in display order.
var Commands = []subcommands.Command{
	&shellCmd{},
	&registerCmd{},
	&addCmd{},
	&listCmd{},
	&sumCmd{},
	&clearCmd{},
	&versionCmd{},
}

// stdout and stderr are where commands without an App write.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// run opens the App, lets fn use it and closes it again.
func run(ctx context.Context, args []interface{}, fn func(app *App) error) subcommands.ExitStatus {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "internal error: no app opener")
		return subcommands.ExitFailure
	}
	open, ok := args[0].(Opener)
	if !ok {
		fmt.Fprintln(stderr, "internal error: bad app opener")
		return subcommands.ExitFailure
	}

	app, err := open(ctx)
	if err != nil {
		fmt.Fprintln(stderr, describe(err))
		return subcommands.ExitFailure
	}
	defer func() {
		if err := app.Close(context.WithoutCancel(ctx)); err != nil {
			app.log.Error(ctx, "error closing storage", "error", err)
		}
	}()

	if err := fn(app); err != nil {
		fmt.Fprintln(stderr, describe(err))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// userCmd is embedded by commands that act on one account.
type userCmd struct {
	username string
}

func (u *userCmd) setUserFlag(f *flag.FlagSet) {
	f.StringVar(&u.username, "u", "", "username (prompted when omitted)")
}

// login resolves the username and logs in with a prompted password.
func (u *userCmd) login(ctx context.Context, app *App) error {
	name := u.username
	if name == "" {
		var err error
		name, err = getSimpleText(app.reader, "Enter username", app.out)
		if err != nil {
			return err
		}
	}
	return app.loginAs(ctx, name)
}

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "start the interactive shell (default)" }
func (*shellCmd) Usage() string {
	return `shell

  Starts an interactive session: register, log in, then add, list, sum and
  clear values. Type 'help' inside the shell for the command list.
`
}
func (*shellCmd) SetFlags(*flag.FlagSet) {}

func (*shellCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return run(ctx, args, func(app *App) error {
		app.Run(ctx)
		return nil
	})
}

type registerCmd struct{ userCmd }

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create an account" }
func (*registerCmd) Usage() string {
	return `register [-u <username>]

  Creates an account with an empty ledger. The password is prompted for.
`
}
func (c *registerCmd) SetFlags(f *flag.FlagSet) { c.setUserFlag(f) }

func (c *registerCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return run(ctx, args, func(app *App) error {
		if c.username == "" {
			return app.Register(ctx)
		}
		password, err := getPassword(app.reader, app.out)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(password)
		if err := app.authService.Register(ctx, c.username, password); err != nil {
			return err
		}
		app.println("Registration successful!")
		return nil
	})
}

type addCmd struct{ userCmd }

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a value" }
func (*addCmd) Usage() string {
	return `add [-u <username>] <value>

  Logs in and appends <value> to the ledger. Use '--' before negative
  values: add -u bob -- -4.5
`
}
func (c *addCmd) SetFlags(f *flag.FlagSet) { c.setUserFlag(f) }

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	return run(ctx, args, func(app *App) error {
		if err := c.login(ctx, app); err != nil {
			return err
		}
		return app.AddValue(ctx, f.Arg(0))
	})
}

type listCmd struct{ userCmd }

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list recorded values" }
func (*listCmd) Usage() string {
	return `list [-u <username>]

  Logs in and prints the values in the order they were added.
`
}
func (c *listCmd) SetFlags(f *flag.FlagSet) { c.setUserFlag(f) }

func (c *listCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return run(ctx, args, func(app *App) error {
		if err := c.login(ctx, app); err != nil {
			return err
		}
		return app.List(ctx)
	})
}

type sumCmd struct{ userCmd }

func (*sumCmd) Name() string     { return "sum" }
func (*sumCmd) Synopsis() string { return "show the total of recorded values" }
func (*sumCmd) Usage() string {
	return `sum [-u <username>]

  Logs in and prints the sum of all values.
`
}
func (c *sumCmd) SetFlags(f *flag.FlagSet) { c.setUserFlag(f) }

func (c *sumCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return run(ctx, args, func(app *App) error {
		if err := c.login(ctx, app); err != nil {
			return err
		}
		return app.Sum(ctx)
	})
}

type clearCmd struct {
	userCmd
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "remove all recorded values" }
func (*clearCmd) Usage() string {
	return `clear [-u <username>] [-y]

  Logs in and removes every value after a confirmation prompt.
`
}
func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	c.setUserFlag(f)
	f.BoolVar(&c.yes, "y", false, "do not ask for confirmation")
}

func (c *clearCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return run(ctx, args, func(app *App) error {
		if err := c.login(ctx, app); err != nil {
			return err
		}
		if c.yes {
			return app.clearAll(ctx)
		}
		return app.Clear(ctx)
	})
}

type versionCmd struct{}

func (*versionCmd) Name() string           { return "version" }
func (*versionCmd) Synopsis() string       { return "print build information" }
func (*versionCmd) Usage() string          { return "version\n" }
func (*versionCmd) SetFlags(*flag.FlagSet) {}

func (*versionCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	buildinfo.PrintBuildData(stdout)
	return subcommands.ExitSuccess
}
