package cli

import (
	"bufio"
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/jobkeeper/internal/client/localdb"
	"github.com/dmitrijs2005/jobkeeper/internal/client/models"
	"github.com/dmitrijs2005/jobkeeper/internal/client/nav"
	"github.com/dmitrijs2005/jobkeeper/internal/client/querystate"
	"github.com/dmitrijs2005/jobkeeper/internal/client/remote"
	"github.com/dmitrijs2005/jobkeeper/internal/client/repositories/snapshots"
	"github.com/dmitrijs2005/jobkeeper/internal/client/session"
	syncctl "github.com/dmitrijs2005/jobkeeper/internal/client/sync"
	"github.com/dmitrijs2005/jobkeeper/internal/logging"
	"github.com/dmitrijs2005/jobkeeper/internal/stubstore"
)

// newTestApp builds a full App against an in-memory snapshot database and an
// httptest server backed by the stub store. input is the script fed to the
// REPL reader.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer, *stubstore.Store) {
	t.Helper()

	store := stubstore.New()
	srv := httptest.NewServer(stubstore.Router(store))
	t.Cleanup(srv.Close)

	db, err := localdb.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logging.NewDiscard()
	snaps := snapshots.NewSQLiteRepository(db)
	api := remote.NewClient(srv.URL, 2*time.Second, log)
	navigator := nav.NewMemory(nav.NewLocation("/jobs"))
	sess := session.NewStore(remote.NewUsersAPI(api), snaps, log)
	query := querystate.NewStore(navigator, snaps, log)
	ctrl := syncctl.NewController(remote.NewJobsAPI(api), sess, query, log)
	ctrl.Watch(context.Background())

	var out bytes.Buffer
	app := &App{
		log:    log,
		db:     db,
		snaps:  snaps,
		nav:    navigator,
		sess:   sess,
		query:  query,
		ctrl:   ctrl,
		jobs:   remote.NewJobsAPI(api),
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    &out,
	}
	return app, &out, store
}

func stubPassword(t *testing.T, pw string) func() {
	t.Helper()
	orig := readPassword
	readPassword = func(int) ([]byte, error) { return []byte(pw), nil }
	return func() { readPassword = orig }
}

func loginTestUser(t *testing.T, a *App, store *stubstore.Store) models.User {
	t.Helper()
	rec := store.CreateUser("alice", "secret")
	sess, err := a.sess.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	return models.User{ID: rec.ID, Username: sess.User.Username}
}

func TestCommandsRequireLogin(t *testing.T) {
	a, out, _ := newTestApp(t, "")
	a.list(context.Background())

	require.Contains(t, out.String(), "Please login first")
	// the intended destination is recorded on the login address
	loc := a.nav.Location()
	require.Equal(t, "/login", loc.Path)
	require.Equal(t, "/jobs", loc.Query.Get(nav.RedirectParam))
}

func TestListRendersVisibleJobs(t *testing.T) {
	a, out, store := newTestApp(t, "")
	user := loginTestUser(t, a, store)
	store.CreateJob(models.Job{UserID: user.ID, Company: "Acme", Role: "Dev", Status: models.StatusApplied, DateApplied: "2024-03-01"})
	store.CreateJob(models.Job{UserID: user.ID, Company: "Initech", Role: "SRE", Status: models.StatusRejected, DateApplied: "2024-04-01"})

	a.list(context.Background())

	got := out.String()
	require.Contains(t, got, "Acme")
	require.Contains(t, got, "Initech")
	// date_desc default: newest first
	require.Less(t, strings.Index(got, "Initech"), strings.Index(got, "Acme"))
}

func TestAddValidatesInput(t *testing.T) {
	// blank company aborts before anything reaches the store
	a, out, store := newTestApp(t, "\nDev\nApplied\n2024-01-02\n\n")
	user := loginTestUser(t, a, store)

	a.add(context.Background())

	require.Contains(t, out.String(), "company must not be empty")
	require.Empty(t, store.FindJobs(stubstore.JobFilter{UserID: user.ID, HasUserID: true}))
}

func TestAddCreatesAndRefreshes(t *testing.T) {
	a, out, store := newTestApp(t, "Acme\nDev\nApplied\n2024-01-02\nreferral\n")
	user := loginTestUser(t, a, store)

	a.add(context.Background())

	jobs := store.FindJobs(stubstore.JobFilter{UserID: user.ID, HasUserID: true})
	require.Len(t, jobs, 1)
	require.True(t, jobs[0].Saved())
	require.Contains(t, out.String(), "Added job 1")
	require.Len(t, a.ctrl.Visible(), 1)
}

func TestEditUnknownID(t *testing.T) {
	a, out, store := newTestApp(t, "NewCo\n\n\n\n\n")
	loginTestUser(t, a, store)

	a.edit(context.Background(), []string{"42"})

	require.Contains(t, out.String(), "Job 42 not found")
}

func TestEditKeepsUnspecifiedFields(t *testing.T) {
	// only the status answer is non-empty
	a, _, store := newTestApp(t, "\n\nInterviewed\n\n\n")
	user := loginTestUser(t, a, store)
	created := store.CreateJob(models.Job{UserID: user.ID, Company: "Acme", Role: "Dev", Status: models.StatusApplied, DateApplied: "2024-01-02"})

	a.edit(context.Background(), []string{"1"})

	got, ok := store.GetJob(created.ID)
	require.True(t, ok)
	require.Equal(t, models.StatusInterviewed, got.Status)
	require.Equal(t, "Acme", got.Company)
	require.Equal(t, "2024-01-02", got.DateApplied)
}

func TestDeleteRemovesJob(t *testing.T) {
	a, out, store := newTestApp(t, "")
	user := loginTestUser(t, a, store)
	created := store.CreateJob(models.Job{UserID: user.ID, Company: "Acme", Role: "Dev", Status: models.StatusApplied, DateApplied: "2024-01-02"})

	a.delete(context.Background(), []string{"1"})

	require.Contains(t, out.String(), "Deleted job 1")
	_, ok := store.GetJob(created.ID)
	require.False(t, ok)
}

func TestShowPushesDetailAddress(t *testing.T) {
	a, out, store := newTestApp(t, "")
	user := loginTestUser(t, a, store)
	store.CreateJob(models.Job{UserID: user.ID, Company: "Acme", Role: "Dev", Status: models.StatusApplied, DateApplied: "2024-01-02", Details: "referral"})

	a.show(context.Background(), []string{"1"})

	require.Contains(t, out.String(), "Acme")
	require.Contains(t, out.String(), "referral")
	require.Equal(t, "/jobs/1", a.nav.Location().Path)
}

func TestShowInvalidID(t *testing.T) {
	a, out, store := newTestApp(t, "")
	loginTestUser(t, a, store)

	a.show(context.Background(), []string{"zero"})
	require.Contains(t, out.String(), "Invalid id")
}

func TestSearchFilterSortUpdateAddress(t *testing.T) {
	a, _, store := newTestApp(t, "")
	user := loginTestUser(t, a, store)
	store.CreateJob(models.Job{UserID: user.ID, Company: "Acme", Role: "Go Dev", Status: models.StatusApplied, DateApplied: "2024-01-02"})
	store.CreateJob(models.Job{UserID: user.ID, Company: "Initech", Role: "SRE", Status: models.StatusRejected, DateApplied: "2024-02-02"})

	ctx := context.Background()
	a.search(ctx, []string{"go"})
	require.Len(t, a.ctrl.Visible(), 1)

	a.search(ctx, nil) // clears the text
	a.filter(ctx, []string{"Rejected"})
	require.Len(t, a.ctrl.Visible(), 1)
	require.Equal(t, "Initech", a.ctrl.Visible()[0].Company)

	a.sort(ctx, []string{"asc"})
	loc := a.nav.Location()
	require.Equal(t, "Rejected", loc.Query.Get(models.ParamStatus))
	require.Equal(t, "date_asc", loc.Query.Get(models.ParamSort))
}

func TestFilterRejectsUnknownValue(t *testing.T) {
	a, out, store := newTestApp(t, "")
	loginTestUser(t, a, store)

	a.filter(context.Background(), []string{"Ghosted"})
	require.Contains(t, out.String(), "Unknown status filter")
}

func TestBackRefetchesForPreviousAddress(t *testing.T) {
	a, _, store := newTestApp(t, "")
	user := loginTestUser(t, a, store)
	store.CreateJob(models.Job{UserID: user.ID, Company: "Acme", Role: "Dev", Status: models.StatusApplied, DateApplied: "2024-01-02"})
	store.CreateJob(models.Job{UserID: user.ID, Company: "Initech", Role: "SRE", Status: models.StatusRejected, DateApplied: "2024-02-02"})

	ctx := context.Background()
	a.filter(ctx, []string{"Applied"})
	require.Len(t, a.ctrl.Visible(), 1)

	a.back(ctx)
	require.Equal(t, models.FilterAll, a.query.Current(ctx).Status)
	require.Len(t, a.ctrl.Visible(), 2)
}

func TestResetClearsPersistedState(t *testing.T) {
	a, out, store := newTestApp(t, "")
	loginTestUser(t, a, store)
	a.query.Update(context.Background(), models.QueryPatch{})

	ctx := context.Background()
	a.reset(ctx)

	require.Contains(t, out.String(), "Local state cleared")
	_, ok := a.sess.Current()
	require.False(t, ok)
	require.Empty(t, a.ctrl.Visible())
	require.Equal(t, "/login", a.nav.Location().Path)

	raw, err := a.snaps.Get(ctx, snapshots.KeySession)
	require.NoError(t, err)
	require.Nil(t, raw)
	raw, err = a.snaps.Get(ctx, snapshots.KeyQuery)
	require.NoError(t, err)
	require.Nil(t, raw)
}

func TestRootLoop_HelpAndQuit(t *testing.T) {
	a, out, _ := newTestApp(t, "help\nbogus\nquit\n")
	a.Root(context.Background())

	got := out.String()
	require.Contains(t, got, "register, login, exit")
	require.Contains(t, got, "Unknown command: bogus")
	require.Contains(t, got, "Bye!")
}

func TestRegisterLoginLogoutFlow(t *testing.T) {
	a, out, _ := newTestApp(t, "bob\n")
	restore := stubPassword(t, "hunter2")
	defer restore()

	a.register(context.Background())
	require.Contains(t, out.String(), "Registered and logged in as bob")
	require.True(t, a.isLoggedIn())

	a.logout(context.Background())
	require.False(t, a.isLoggedIn())
	require.Contains(t, out.String(), "Logged out")
}

func TestCountsSummarizesVisibleList(t *testing.T) {
	a, out, store := newTestApp(t, "")
	user := loginTestUser(t, a, store)
	store.CreateJob(models.Job{UserID: user.ID, Company: "A", Role: "r", Status: models.StatusApplied, DateApplied: "2024-01-01"})
	store.CreateJob(models.Job{UserID: user.ID, Company: "B", Role: "r", Status: models.StatusApplied, DateApplied: "2024-01-02"})
	store.CreateJob(models.Job{UserID: user.ID, Company: "C", Role: "r", Status: models.StatusInterviewed, DateApplied: "2024-01-03"})

	ctx := context.Background()
	require.NoError(t, a.ctrl.Refresh(ctx))
	a.counts(ctx)

	require.Contains(t, out.String(), "Applied: 2  Interviewed: 1  Rejected: 0")
}
