// Package cli implements the interactive terminal application for browsing
// and managing archaeological sites, artifacts and researchers.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/archeolens/archeolens-server/internal/client/api"
	"github.com/archeolens/archeolens-server/internal/client/session"
)

// App holds the terminal application state: the API client, the saved session
// and the current user when logged in.
type App struct {
	api      *api.Client
	sessions *session.Store
	reader   *bufio.Reader
	out      io.Writer
	user     api.User
	loggedIn bool
}

// NewApp creates an App talking to the given API client, reading commands
// from in and writing output to out.
func NewApp(client *api.Client, sessions *session.Store, in io.Reader, out io.Writer) *App {
	return &App{
		api:      client,
		sessions: sessions,
		reader:   bufio.NewReader(in),
		out:      out,
	}
}

// Run restores a saved session if one is still valid, then enters the command
// loop until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	a.restoreSession(ctx)
	return a.repl(ctx)
}

// restoreSession loads the saved token and validates it against the server.
// A stale or missing session leaves the app logged out.
func (a *App) restoreSession(ctx context.Context) {
	sess, err := a.sessions.Load()
	if err != nil {
		return
	}

	a.api.SetToken(sess.AccessToken)
	user, err := a.api.Session(ctx)
	if err != nil {
		a.api.SetToken("")
		_ = a.sessions.Clear()
		fmt.Fprintln(a.out, "Sessão expirada, faça login novamente.")
		return
	}

	a.user = user
	a.loggedIn = true
	fmt.Fprintf(a.out, "Sessão restaurada: %s <%s>\n", user.Name, user.Email)
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) printErr(err error) {
	if apiErr, ok := err.(*api.Error); ok {
		fmt.Fprintln(a.out, apiErr.Message)
		return
	}
	fmt.Fprintf(a.out, "erro: %v\n", err)
}
