package cli

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/coffeetime/internal/common"
	"github.com/dmitrijs2005/coffeetime/internal/cryptox"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// ErrPasswordMismatch is returned by Register when the confirmation differs.
var ErrPasswordMismatch = errors.New("passwords do not match")

// Register prompts for username, display name, password and its
// confirmation, then creates the account. The password buffers are wiped
// before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	displayName, err := getSimpleText(a.reader, "Enter display name (optional)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if !bytes.Equal(password, confirm) {
		a.println("Passwords do not match.")
		return ErrPasswordMismatch
	}

	if _, err := a.authService.Register(ctx, userName, string(password), displayName); err != nil {
		switch {
		case errors.Is(err, cryptox.ErrPasswordTooLong):
			a.println("Password is too long, use at most 72 bytes.")
		case errors.Is(err, common.ErrorValidation):
			a.println("Enter a username and a password.")
		case errors.Is(err, common.ErrorAlreadyExists):
			a.println("That username already exists.")
		default:
			a.reportError(ctx, "register", err)
		}
		return err
	}

	a.println("Account created, you can log in now.")
	return nil
}

// Login prompts for credentials and, on success, makes the new session the
// current one, replacing any previous session.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.authService.Login(ctx, userName, string(password))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			a.println("Enter a username and a password.")
		case errors.Is(err, common.ErrorUnauthorized):
			a.println("Wrong username or password.")
		default:
			a.reportError(ctx, "login", err)
		}
		return err
	}

	if a.session != nil {
		_ = a.authService.Logout(ctx, a.session.Token)
	}
	a.session = session
	a.printf("Hello, %s\n", session.Name())
	return nil
}

// Logout ends the current session. The local session is cleared even when
// revoking the token fails.
func (a *App) Logout(ctx context.Context) error {
	if a.session == nil {
		return nil
	}
	err := a.authService.Logout(ctx, a.session.Token)
	a.session = nil
	if err != nil {
		a.logger.Warn(ctx, "logout failed", "error", err)
	}
	a.println("Logged out.")
	return err
}

func (a *App) WhoAmI(ctx context.Context) error {
	s := a.session
	if s.DisplayName != "" {
		a.printf("%s (%s)\n", s.Username, s.DisplayName)
	} else {
		a.println(s.Username)
	}
	a.printf("Session valid until %s\n", s.ExpiresAt.Local().Format(time.DateTime))
	return nil
}
