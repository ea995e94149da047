package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/jobkeeper/internal/client/models"
	"github.com/dmitrijs2005/jobkeeper/internal/client/nav"
	"github.com/dmitrijs2005/jobkeeper/internal/client/querystate"
	"github.com/dmitrijs2005/jobkeeper/internal/client/repositories/snapshots"
	"github.com/dmitrijs2005/jobkeeper/internal/dbx"
)

// search sets the free-text filter. `search` with no argument clears it.
func (a *App) search(ctx context.Context, args []string) {
	if !a.requireLogin(ctx) {
		return
	}
	text := strings.Join(args, " ")
	next := a.query.Update(ctx, models.QueryPatch{Search: &text})
	a.printf("Now showing %s\n", querystate.Describe(next))
	a.render(a.ctrl.Visible())
}

func (a *App) filter(ctx context.Context, args []string) {
	if !a.requireLogin(ctx) {
		return
	}
	if len(args) == 0 {
		a.printf("Usage: filter <All|Applied|Interviewed|Rejected>\n")
		return
	}
	status := models.StatusFilter(args[0])
	switch status {
	case models.FilterAll, models.FilterApplied, models.FilterInterviewed, models.FilterRejected:
	default:
		a.printf("Unknown status filter: %s\n", args[0])
		return
	}
	next := a.query.Update(ctx, models.QueryPatch{Status: &status})
	a.printf("Now showing %s\n", querystate.Describe(next))
	a.render(a.ctrl.Visible())
}

func (a *App) sort(ctx context.Context, args []string) {
	if !a.requireLogin(ctx) {
		return
	}
	if len(args) == 0 {
		a.printf("Usage: sort <asc|desc>\n")
		return
	}
	var order models.SortOrder
	switch args[0] {
	case "asc":
		order = models.SortDateAsc
	case "desc":
		order = models.SortDateDesc
	default:
		a.printf("Unknown sort order: %s\n", args[0])
		return
	}
	next := a.query.Update(ctx, models.QueryPatch{Sort: &order})
	a.printf("Now showing %s\n", querystate.Describe(next))
	a.render(a.ctrl.Visible())
}

// back and forward step through filter history; the list is re-issued for
// the address the step lands on.
func (a *App) back(ctx context.Context) {
	if !a.nav.Back() {
		a.printf("Already at the oldest entry\n")
		return
	}
	a.printf("%s\n", a.nav.Location().String())
	if a.isLoggedIn() {
		_ = a.ctrl.Refresh(ctx)
		a.render(a.ctrl.Visible())
	}
}

func (a *App) forward(ctx context.Context) {
	if !a.nav.Forward() {
		a.printf("Already at the newest entry\n")
		return
	}
	a.printf("%s\n", a.nav.Location().String())
	if a.isLoggedIn() {
		_ = a.ctrl.Refresh(ctx)
		a.render(a.ctrl.Visible())
	}
}

// reset wipes all persisted client state in one transaction, ends the
// session and returns to the login address with defaults.
func (a *App) reset(ctx context.Context) {
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := snapshots.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, snapshots.KeySession); err != nil {
			return err
		}
		return repo.Delete(ctx, snapshots.KeyQuery)
	})
	if err != nil {
		a.printf("Reset failed: %v\n", err)
		return
	}

	a.sess.Forget()
	a.ctrl.Reset()
	a.nav.Replace(nav.NewLocation("/login"))
	a.printf("Local state cleared\n")
}
