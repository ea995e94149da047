// Package sync keeps the in-memory job list consistent with the remote
// collection. It re-derives the list request from the session and query
// stores, re-issues it after every mutation, and applies results under a
// last-request-wins policy so a stale fetch can never overwrite a newer one.
package sync

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/jobkeeper/internal/client/models"
	"github.com/dmitrijs2005/jobkeeper/internal/client/querystate"
	"github.com/dmitrijs2005/jobkeeper/internal/client/remote"
	"github.com/dmitrijs2005/jobkeeper/internal/client/session"
	"github.com/dmitrijs2005/jobkeeper/internal/logging"
)

// Controller orchestrates the visible job list.
//
// Every list issue takes a monotonically increasing sequence number; on
// completion the outcome is applied only if no later-issued request has
// completed already. In-flight requests are not cancelled; stale results are
// discarded silently. A failed fetch keeps the previous visible list and
// raises the error flag instead.
type Controller struct {
	jobs  remote.Jobs
	sess  *session.Store
	query *querystate.Store
	log   logging.Logger

	mu      sync.Mutex
	issued  uint64
	applied uint64
	visible []models.Job
	lastErr error
}

func NewController(jobs remote.Jobs, sess *session.Store, query *querystate.Store, log logging.Logger) *Controller {
	return &Controller{jobs: jobs, sess: sess, query: query, log: log.With("component", "sync")}
}

// Watch subscribes the controller to query-state changes so the list is
// re-issued automatically whenever the search, filter or sort changes.
func (c *Controller) Watch(ctx context.Context) {
	c.query.Subscribe(func(models.QueryState) {
		_ = c.Refresh(ctx)
	})
}

// Refresh issues a list request for the active session and current query
// state and applies the outcome under last-request-wins. Without an active
// session the visible state is reset instead. The returned error is this
// call's own fetch error; a discarded stale outcome returns nil.
func (c *Controller) Refresh(ctx context.Context) error {
	sess, ok := c.sess.Current()
	if !ok {
		c.Reset()
		return nil
	}
	qs := c.query.Current(ctx)

	c.mu.Lock()
	c.issued++
	seq := c.issued
	c.mu.Unlock()

	jobs, err := c.jobs.List(ctx, remote.JobQuery{UserID: sess.User.ID, State: qs})

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq <= c.applied {
		c.log.Debug(ctx, "discarding stale list result", "seq", seq, "applied", c.applied)
		return nil
	}
	c.applied = seq

	if err != nil {
		// previous visible list stays in place, flagged
		c.lastErr = err
		c.log.Warn(ctx, "list fetch failed", "seq", seq, "error", err)
		return err
	}

	c.visible = jobs
	c.lastErr = nil
	c.log.Debug(ctx, "visible list updated", "seq", seq, "count", len(jobs))
	return nil
}

// Create persists a new job and, on success, issues exactly one follow-up
// refresh so the visible list reflects the mutation.
func (c *Controller) Create(ctx context.Context, job models.Job) (models.Job, error) {
	created, err := c.jobs.Create(ctx, job)
	if err != nil {
		return models.Job{}, err
	}
	_ = c.Refresh(ctx)
	return created, nil
}

// Update applies a partial patch to an existing job and refreshes on
// success. A nonexistent id surfaces remote.ErrNotFound and leaves the
// visible list untouched.
func (c *Controller) Update(ctx context.Context, id int64, patch models.JobPatch) (models.Job, error) {
	updated, err := c.jobs.Update(ctx, id, patch)
	if err != nil {
		return models.Job{}, err
	}
	_ = c.Refresh(ctx)
	return updated, nil
}

// Delete removes a job and refreshes on success. A nonexistent id surfaces
// remote.ErrNotFound and leaves the visible list untouched.
func (c *Controller) Delete(ctx context.Context, id int64) error {
	if err := c.jobs.Delete(ctx, id); err != nil {
		return err
	}
	_ = c.Refresh(ctx)
	return nil
}

// Visible returns a copy of the currently visible job list.
func (c *Controller) Visible() []models.Job {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Job(nil), c.visible...)
}

// Err reports the error flag of the most recent applied fetch, or nil.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Counts derives the status summary of the visible list. It is recomputed
// on demand and never persisted.
func (c *Controller) Counts() models.StatusCounts {
	c.mu.Lock()
	defer c.mu.Unlock()
	return models.CountByStatus(c.visible)
}

// Reset clears the visible state and invalidates any in-flight request, so
// a fetch issued before the reset can no longer apply. Used on logout.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.applied = c.issued
	c.visible = nil
	c.lastErr = nil
}
