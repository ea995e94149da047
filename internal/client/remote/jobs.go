package remote

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/jobkeeper/internal/client/models"
)

const jobsPath = "/jobs"

// Jobs is the typed job-collection surface of the record store.
//
// Contract:
//   - List: fetch the owner's jobs constrained and ordered by the query.
//   - Create: persist a new job, returning it with an assigned id.
//   - Update: apply a partial patch to an existing job.
//   - Delete: remove a job by id.
//
// Update and Delete surface ErrNotFound when the id does not exist.
type Jobs interface {
	List(ctx context.Context, q JobQuery) ([]models.Job, error)
	Create(ctx context.Context, job models.Job) (models.Job, error)
	Update(ctx context.Context, id int64, patch models.JobPatch) (models.Job, error)
	Delete(ctx context.Context, id int64) error
}

// JobQuery describes one list request: the owning user plus the current
// query state.
type JobQuery struct {
	UserID int64
	State  models.QueryState
}

// wireValues builds the store's query parameters: always constrain to the
// owner and sort on dateApplied; include the free-text and status
// constraints only when they narrow the result.
func (q JobQuery) wireValues() url.Values {
	v := url.Values{}
	v.Set("userId", strconv.FormatInt(q.UserID, 10))
	if q.State.Search != "" {
		v.Set("q", q.State.Search)
	}
	if q.State.Status != models.FilterAll {
		v.Set("status", string(q.State.Status))
	}
	v.Set("_sort", "dateApplied")
	if q.State.Sort == models.SortDateAsc {
		v.Set("_order", "asc")
	} else {
		v.Set("_order", "desc")
	}
	return v
}

// JobsAPI implements Jobs over a Client.
type JobsAPI struct {
	c *Client
}

func NewJobsAPI(c *Client) *JobsAPI {
	return &JobsAPI{c: c}
}

// Get reads a single job by id, for the detail view. Surfaces ErrNotFound
// for an unknown id.
func (a *JobsAPI) Get(ctx context.Context, id int64) (models.Job, error) {
	var job models.Job
	if err := a.c.List(ctx, fmt.Sprintf("%s/%d", jobsPath, id), nil, &job); err != nil {
		return models.Job{}, err
	}
	return job, nil
}

func (a *JobsAPI) List(ctx context.Context, q JobQuery) ([]models.Job, error) {
	var jobs []models.Job
	if err := a.c.List(ctx, jobsPath, q.wireValues(), &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (a *JobsAPI) Create(ctx context.Context, job models.Job) (models.Job, error) {
	var created models.Job
	if err := a.c.Create(ctx, jobsPath, job, &created); err != nil {
		return models.Job{}, err
	}
	return created, nil
}

func (a *JobsAPI) Update(ctx context.Context, id int64, patch models.JobPatch) (models.Job, error) {
	var updated models.Job
	if err := a.c.Patch(ctx, fmt.Sprintf("%s/%d", jobsPath, id), patch, &updated); err != nil {
		return models.Job{}, err
	}
	return updated, nil
}

func (a *JobsAPI) Delete(ctx context.Context, id int64) error {
	return a.c.Delete(ctx, fmt.Sprintf("%s/%d", jobsPath, id))
}
