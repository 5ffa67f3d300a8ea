package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/staffscore/internal/client/client"
	"github.com/dmitrijs2005/staffscore/internal/common"
)

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// fail reports err to the user and returns it unchanged.
func (a *App) fail(err error) error {
	switch {
	case errors.Is(err, client.ErrUnavailable):
		a.println("Server unavailable, try again later")
	case errors.Is(err, client.ErrNotLoggedIn):
		a.println("Please login first")
	default:
		a.println("error:", err)
	}
	return err
}

func (a *App) Signup(ctx context.Context) error {
	fullName, err := GetSimpleText(a.reader, "-Enter full name", a.out)
	if err != nil {
		return a.fail(err)
	}
	email, err := GetSimpleText(a.reader, "-Enter email", a.out)
	if err != nil {
		return a.fail(err)
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return a.fail(err)
	}
	defer clear(password)

	birthday, err := GetSimpleText(a.reader, "-Enter birthday (DD/MM/YYYY)", a.out)
	if err != nil {
		return a.fail(err)
	}

	storeID, err := a.pickStore(ctx)
	if err != nil {
		return a.fail(err)
	}

	id, err := a.api.Signup(ctx, client.SignupRequest{
		FullName: fullName,
		Email:    email,
		Password: string(password),
		Birthday: birthday,
		StoreID:  storeID,
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			a.println("This email is already registered")
			return err
		}
		return a.fail(err)
	}

	a.println(fmt.Sprintf("Signup successful, your staff ID is %d", id))
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "-Enter email", a.out)
	if err != nil {
		return a.fail(err)
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return a.fail(err)
	}
	defer clear(password)

	if err := a.api.Login(ctx, email, string(password)); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.println("Login unsuccessful: invalid email or password")
			return err
		}
		return a.fail(err)
	}

	a.email = email
	a.println("Login successful")
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	if err := a.api.Refresh(ctx); err != nil {
		return a.fail(err)
	}
	a.println("Access token refreshed")
	return nil
}

func (a *App) Me(ctx context.Context) error {
	p, err := a.api.Me(ctx)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "ID:       %d\nName:     %s\nEmail:    %s\nBirthday: %s\nStore:    %d\n",
		p.ID, p.FullName, p.Email, p.Birthday, p.StoreID)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.api.Logout()
	a.email = ""
	a.println("Logged out")
	return nil
}
