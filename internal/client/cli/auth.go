package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/folio/internal/client/api"
	"github.com/dmitrijs2005/folio/internal/client/store"
)

// Login prompts for credentials, authenticates and persists the session.
func (a *App) Login(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	res, err := a.client.Login(ctx, userName, password)
	if err != nil {
		// A rejected login leaves the current session alone.
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && errors.Is(err, api.ErrUnauthorized) {
			return errors.New(apiErr.Message)
		}
		return err
	}

	if err := a.store.Save(ctx, store.Saved{
		ServerURL: a.config.ServerURL,
		UserID:    res.ID,
		UserName:  res.UserName,
		Token:     res.Token,
	}); err != nil {
		a.println("Warning: session not saved:", err)
	}

	a.println("Logged in as", res.UserName)
	return nil
}

// Logout forgets the token locally; tokens are stateless on the server.
func (a *App) Logout(ctx context.Context) error {
	a.client.Session().Clear()
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	a.println("Logged out")
	return nil
}

// Register creates another admin account.
func (a *App) Register(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "New username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	res, err := a.client.Register(ctx, userName, password)
	if err != nil {
		return err
	}
	a.println(fmt.Sprintf("Registered %s (id=%s)", res.UserName, res.ID))
	return nil
}

func (a *App) Health(ctx context.Context) error {
	if err := a.client.Health(ctx); err != nil {
		return err
	}
	a.println("Server is up at", a.config.ServerURL)
	return nil
}
