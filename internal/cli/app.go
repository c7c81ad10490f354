// Package cli implements the interactive CampusHire host application: a
// small REPL over the session, directory, filter and workflow components.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vijay-pawar-99/CampusHire/internal/config"
	"github.com/vijay-pawar-99/CampusHire/internal/directory"
	"github.com/vijay-pawar-99/CampusHire/internal/logging"
	"github.com/vijay-pawar-99/CampusHire/internal/models"
	"github.com/vijay-pawar-99/CampusHire/internal/session"
	"github.com/vijay-pawar-99/CampusHire/internal/workflow"
)

type App struct {
	config  *config.Config
	session *session.Manager
	flow    *workflow.Service
	dir     *directory.Store
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp wires the host application from already-constructed components.
// The store handle, session manager and workflow service are built and torn
// down by the caller (cmd/cli).
func NewApp(cfg *config.Config, dir *directory.Store, sess *session.Manager, flow *workflow.Service, log logging.Logger) *App {
	return &App{
		config:  cfg,
		session: sess,
		flow:    flow,
		dir:     dir,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.statusLine, scanner)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.Current()
	return ok
}

func (a *App) statusLine() string {
	u, ok := a.session.Current()
	if !ok {
		return "not logged in"
	}
	return fmt.Sprintf("%s (%s)", u.Name, u.Role)
}

func (a *App) currentUser() (models.User, bool) {
	return a.session.Current()
}
