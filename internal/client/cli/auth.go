package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskease/internal/client/client"
	"github.com/dmitrijs2005/taskease/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Register navigates to the register view and, when admitted, prompts for
// name, email and password and creates the account. The new session is
// started right away and the current view is re-evaluated, which takes the
// user to the task list.
//
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	ok, err := a.enter(ctx, common.RegisterPath)
	if err != nil || !ok {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, name, email, password); err != nil {
		return authFailure("registration", err)
	}

	fmt.Fprintln(a.out, styles.Success.Render("Account created. Welcome, "+a.userName()+"!"))
	return a.reevaluate(ctx)
}

// Login navigates to the login view and, when admitted, prompts for
// credentials and starts the session. Once the profile is loaded the login
// view is re-evaluated by the gate and the user lands on the task list.
//
// The password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	ok, err := a.enter(ctx, common.LoginPath)
	if err != nil || !ok {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, email, password); err != nil {
		return authFailure("login", err)
	}

	a.log.Info(ctx, "login successful")
	fmt.Fprintln(a.out, styles.Success.Render("Welcome back, "+a.userName()+"!"))
	return a.reevaluate(ctx)
}

// Logout ends the session locally and returns to the landing view.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return a.Go(ctx, common.LandingPath)
}

func (a *App) WhoAmI(ctx context.Context) error {
	s := a.session.Snapshot()
	switch {
	case s.Loading:
		fmt.Fprintln(a.out, styles.Muted.Render("Loading session..."))
	case s.Authenticated():
		fmt.Fprintln(a.out, renderProfile(*s.Profile))
	default:
		fmt.Fprintln(a.out, "Not logged in.")
	}
	return nil
}

// authFailure keeps a 401 from the auth endpoints from reading as an expired
// session.
func authFailure(op string, err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		return fmt.Errorf("%s failed: %s", op, client.Message(err))
	}
	return err
}

func (a *App) userName() string {
	if p := a.session.Snapshot().Profile; p != nil {
		return p.Name
	}
	return ""
}
