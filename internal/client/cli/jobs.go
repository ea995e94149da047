package cli

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/client/models"
	"github.com/dmitrijs2005/jobkeeper/internal/client/remote"
)

func (a *App) list(ctx context.Context) {
	if !a.requireLogin(ctx) {
		return
	}
	if err := a.ctrl.Refresh(ctx); err != nil {
		a.printf("Failed to load jobs: %v (showing last known list)\n", err)
	}
	a.render(a.ctrl.Visible())
}

func (a *App) render(jobs []models.Job) {
	if len(jobs) == 0 {
		a.printf("No jobs match your criteria.\n")
		return
	}
	for _, j := range jobs {
		// unsaved jobs carry no id and are never rendered as addressable
		ref := "-"
		if j.Saved() {
			ref = strconv.FormatInt(j.ID, 10)
		}
		a.printf("[%s] %s  %s | %s | %s\n", ref, j.DateApplied, j.Company, j.Role, j.Status)
	}
}

func (a *App) counts(ctx context.Context) {
	if !a.requireLogin(ctx) {
		return
	}
	c := a.ctrl.Counts()
	a.printf("Applied: %d  Interviewed: %d  Rejected: %d\n", c.Applied, c.Interviewed, c.Rejected)
}

func (a *App) add(ctx context.Context) {
	if !a.requireLogin(ctx) {
		return
	}
	sess, _ := a.sess.Current()

	job, err := a.promptJob()
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}
	job.UserID = sess.User.ID

	created, err := a.ctrl.Create(ctx, job)
	if err != nil {
		a.printf("Failed to add job: %v\n", err)
		return
	}
	a.printf("Added job %d (%s, %s)\n", created.ID, created.Company, created.Role)
	a.render(a.ctrl.Visible())
}

func (a *App) promptJob() (models.Job, error) {
	company, err := GetSimpleText(a.reader, "Company", a.out)
	if err != nil {
		return models.Job{}, err
	}
	role, err := GetSimpleText(a.reader, "Role", a.out)
	if err != nil {
		return models.Job{}, err
	}
	status, err := GetSimpleText(a.reader, "Status (Applied/Interviewed/Rejected)", a.out)
	if err != nil {
		return models.Job{}, err
	}
	date, err := GetSimpleText(a.reader, "Date applied (YYYY-MM-DD)", a.out)
	if err != nil {
		return models.Job{}, err
	}
	details, err := GetSimpleText(a.reader, "Details (optional)", a.out)
	if err != nil {
		return models.Job{}, err
	}

	job := models.Job{
		Company:     company,
		Role:        role,
		Status:      models.JobStatus(status),
		DateApplied: date,
		Details:     details,
	}
	return job, validateJob(job)
}

func validateJob(j models.Job) error {
	if j.Company == "" {
		return errors.New("company must not be empty")
	}
	if j.Role == "" {
		return errors.New("role must not be empty")
	}
	if !models.ValidStatus(j.Status) {
		return errors.New("status must be Applied, Interviewed or Rejected")
	}
	if _, err := time.Parse("2006-01-02", j.DateApplied); err != nil {
		return errors.New("date must be a valid YYYY-MM-DD date")
	}
	return nil
}

func (a *App) edit(ctx context.Context, args []string) {
	if !a.requireLogin(ctx) {
		return
	}
	id, ok := a.parseID(args, "edit")
	if !ok {
		return
	}

	patch, err := a.promptPatch()
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}

	updated, err := a.ctrl.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			a.printf("Job %d not found\n", id)
		} else {
			a.printf("Failed to update job: %v\n", err)
		}
		return
	}
	a.printf("Updated job %d (%s, %s)\n", updated.ID, updated.Company, updated.Role)
}

// promptPatch reads the optional fields of a partial update; an empty answer
// leaves the field unchanged.
func (a *App) promptPatch() (models.JobPatch, error) {
	var patch models.JobPatch

	company, err := GetSimpleText(a.reader, "Company (empty = keep)", a.out)
	if err != nil {
		return patch, err
	}
	if company != "" {
		patch.Company = &company
	}

	role, err := GetSimpleText(a.reader, "Role (empty = keep)", a.out)
	if err != nil {
		return patch, err
	}
	if role != "" {
		patch.Role = &role
	}

	statusText, err := GetSimpleText(a.reader, "Status (empty = keep)", a.out)
	if err != nil {
		return patch, err
	}
	if statusText != "" {
		status := models.JobStatus(statusText)
		if !models.ValidStatus(status) {
			return patch, errors.New("status must be Applied, Interviewed or Rejected")
		}
		patch.Status = &status
	}

	date, err := GetSimpleText(a.reader, "Date applied (empty = keep)", a.out)
	if err != nil {
		return patch, err
	}
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return patch, errors.New("date must be a valid YYYY-MM-DD date")
		}
		patch.DateApplied = &date
	}

	details, err := GetSimpleText(a.reader, "Details (empty = keep)", a.out)
	if err != nil {
		return patch, err
	}
	if details != "" {
		patch.Details = &details
	}

	return patch, nil
}

func (a *App) delete(ctx context.Context, args []string) {
	if !a.requireLogin(ctx) {
		return
	}
	id, ok := a.parseID(args, "delete")
	if !ok {
		return
	}

	if err := a.ctrl.Delete(ctx, id); err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			a.printf("Job %d not found\n", id)
		} else {
			a.printf("Failed to delete job: %v\n", err)
		}
		return
	}
	a.printf("Deleted job %d\n", id)
}

func (a *App) show(ctx context.Context, args []string) {
	if !a.requireLogin(ctx) {
		return
	}
	id, ok := a.parseID(args, "show")
	if !ok {
		return
	}

	job, err := a.jobs.Get(ctx, id)
	if err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			a.printf("Job %d not found\n", id)
		} else {
			a.printf("Failed to load job: %v\n", err)
		}
		return
	}

	// the detail view is addressable: its identity is a path segment
	loc := a.nav.Location()
	loc.Path = "/jobs/" + strconv.FormatInt(id, 10)
	a.nav.Push(loc)

	a.printf("Company:      %s\n", job.Company)
	a.printf("Role:         %s\n", job.Role)
	a.printf("Status:       %s\n", job.Status)
	a.printf("Date applied: %s\n", job.DateApplied)
	if job.Details != "" {
		a.printf("Details:      %s\n", job.Details)
	}
}

func (a *App) parseID(args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		a.printf("Usage: %s <id>\n", usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		a.printf("Invalid id: %s\n", args[0])
		return 0, false
	}
	return id, true
}
