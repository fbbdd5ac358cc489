package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/folio/internal/client/api"
	"github.com/dmitrijs2005/folio/internal/client/config"
	"github.com/dmitrijs2005/folio/internal/client/store"
)

// sessionStore is the part of store.SessionStore the App needs.
type sessionStore interface {
	Save(ctx context.Context, v store.Saved) error
	Load(ctx context.Context) (store.Saved, bool, error)
	Clear(ctx context.Context) error
	Close() error
}

type App struct {
	config *config.Config
	client *api.Client
	store  sessionStore
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	st, err := store.Open(ctx, c.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing session database: %w", err)
	}

	client := api.New(c.ServerURL, c.RequestTimeout, &api.Session{})
	return newApp(c, client, st, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, client *api.Client, st sessionStore, in io.Reader, out io.Writer) *App {
	return &App{config: c, client: client, store: st, reader: bufio.NewReader(in), out: out}
}

// Run restores the saved session, if it belongs to the configured server,
// and runs the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	a.println("Welcome to folio admin CLI (type 'help' for commands)")
	a.restoreSession(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) restoreSession(ctx context.Context) {
	saved, ok, err := a.store.Load(ctx)
	if err != nil {
		a.printErr(err)
		return
	}
	if !ok || saved.ServerURL != a.config.ServerURL {
		return
	}
	a.client.Session().Set(saved.UserID, saved.UserName, saved.Token)
	a.println("Restored session of", saved.UserName)
}

func (a *App) isLoggedIn() bool {
	return a.client.Session().LoggedIn()
}

func (a *App) getStatus() string {
	if name := a.client.Session().UserName(); name != "" {
		return "(" + name + ")"
	}
	return ""
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// printErr reports a command failure. A rejected token ends the session so
// the user is asked to log in again.
func (a *App) printErr(err error) {
	var apiErr *api.APIError
	switch {
	case errors.As(err, &apiErr):
		a.println("Error:", apiErr.Message)
	case errors.Is(err, api.ErrUnavailable):
		a.println("Server unavailable:", err)
	default:
		a.println("Error:", err)
	}

	if errors.Is(err, api.ErrUnauthorized) && a.isLoggedIn() {
		a.client.Session().Clear()
		_ = a.store.Clear(context.Background())
		a.println("Session expired, please log in again")
	}
}
