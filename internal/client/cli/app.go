// Package cli is the interactive shell of the jobkeeper client. It wires the
// stores together and drives them from a small REPL; all real behavior lives
// in the session, querystate and sync packages.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/jobkeeper/internal/client/config"
	"github.com/dmitrijs2005/jobkeeper/internal/client/localdb"
	"github.com/dmitrijs2005/jobkeeper/internal/client/nav"
	"github.com/dmitrijs2005/jobkeeper/internal/client/querystate"
	"github.com/dmitrijs2005/jobkeeper/internal/client/remote"
	"github.com/dmitrijs2005/jobkeeper/internal/client/repositories/snapshots"
	"github.com/dmitrijs2005/jobkeeper/internal/client/session"
	syncctl "github.com/dmitrijs2005/jobkeeper/internal/client/sync"
	"github.com/dmitrijs2005/jobkeeper/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger

	db    *sql.DB
	snaps snapshots.Repository
	nav   *nav.Memory
	sess  *session.Store
	query *querystate.Store
	ctrl  *syncctl.Controller
	jobs  *remote.JobsAPI

	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the full object graph: local snapshot DB, remote APIs, the
// three stores and the sync controller. The stores are constructed once here
// and passed by reference; nothing else holds mutable state.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := localdb.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "initializing snapshot database failed", "error", err)
		return nil, err
	}
	snaps := snapshots.NewSQLiteRepository(db)

	api := remote.NewClient(c.ServerURL, c.RequestTimeout, log)
	users := remote.NewUsersAPI(api)
	jobs := remote.NewJobsAPI(api)

	navigator := nav.NewMemory(nav.NewLocation("/jobs"))
	sess := session.NewStore(users, snaps, log)
	query := querystate.NewStore(navigator, snaps, log)
	ctrl := syncctl.NewController(jobs, sess, query, log)

	return &App{
		config: c,
		log:    log,
		db:     db,
		snaps:  snaps,
		nav:    navigator,
		sess:   sess,
		query:  query,
		ctrl:   ctrl,
		jobs:   jobs,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run restores persisted state and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	if err := a.sess.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
	a.ctrl.Watch(ctx)
	if _, ok := a.sess.Current(); ok {
		_ = a.ctrl.Refresh(ctx)
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.sess.Current()
	return ok
}

// requireLogin reports whether a session is active. When it is not, the
// current destination is recorded on the login address so it can be restored
// after a successful login.
func (a *App) requireLogin(ctx context.Context) bool {
	if a.isLoggedIn() {
		return true
	}
	loc := a.nav.Location()
	if loc.Path != "/login" {
		a.nav.Push(nav.LoginLocation(loc))
	}
	a.printf("Please login first (or register).\n")
	return false
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
