package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/jobkeeper/internal/client/nav"
	"github.com/dmitrijs2005/jobkeeper/internal/client/session"
)

func (a *App) login(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}

	sess, err := a.sess.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			a.printf("Invalid credentials\n")
		} else {
			a.printf("Login failed: %v\n", err)
		}
		return
	}

	a.printf("Logged in as %s\n", sess.User.Username)
	a.afterLogin(ctx)
}

func (a *App) register(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}

	sess, err := a.sess.Register(ctx, username, password)
	if err != nil {
		if errors.Is(err, session.ErrUsernameTaken) {
			a.printf("Username already taken\n")
		} else {
			a.printf("Registration failed: %v\n", err)
		}
		return
	}

	a.printf("Registered and logged in as %s\n", sess.User.Username)
	a.afterLogin(ctx)
}

// afterLogin restores the destination recorded on the login address, if
// any, and fetches the list for it.
func (a *App) afterLogin(ctx context.Context) {
	if dest, ok := nav.ConsumeRedirect(a.nav.Location()); ok {
		a.nav.Replace(dest)
	} else if a.nav.Location().Path == "/login" {
		a.nav.Replace(nav.NewLocation("/jobs"))
	}
	if err := a.ctrl.Refresh(ctx); err != nil {
		a.printf("Failed to load jobs: %v\n", err)
	}
}

func (a *App) logout(ctx context.Context) {
	if err := a.sess.Logout(ctx); err != nil {
		a.printf("Logout failed: %v\n", err)
		return
	}
	a.ctrl.Reset()
	a.printf("Logged out\n")
}
