package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophledger/internal/common"
)

// getSimpleText, getPassword and getConfirm are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getConfirm    = Confirm
)

// Register prompts the user for a username and password and attempts to
// create a new account. Registration does not log the user in.
//
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, userName, password); err != nil {
		return err
	}

	a.println("Registration successful! You can now log in.")
	return nil
}

// Login prompts the user for credentials and opens a session.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	if err := a.loginAs(ctx, userName); err != nil {
		return err
	}

	a.println(fmt.Sprintf("Welcome, %s!", a.session.Username))
	return nil
}

// loginAs prompts for the password of userName only.
func (a *App) loginAs(ctx context.Context, userName string) error {
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.authService.Login(ctx, userName, password)
	if err != nil {
		return err
	}

	a.session = session
	return nil
}

// Logout ends the current session. Values are already saved.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx, a.session)
	a.session = nil
	a.println("Logged out.")
	return nil
}
