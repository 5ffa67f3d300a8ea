package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/staffscore/internal/client/client"
	"github.com/dmitrijs2005/staffscore/internal/client/config"
)

type App struct {
	config *config.Config
	api    client.Client
	reader *bufio.Reader
	out    io.Writer
	email  string
}

func NewApp(c *config.Config) *App {
	api := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	return &App{config: c, api: api, reader: bufio.NewReader(os.Stdin), out: os.Stdout}
}

// Run blocks in the REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to staffscore CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.api.LoggedIn()
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return "(" + a.email + ")"
	}
	return ""
}
