// Package models defines the domain types shared by the jobkeeper client:
// job records, users and sessions, and the query state describing which
// subset of jobs the user currently wants to see.
package models

// JobStatus is the lifecycle stage of a job application.
type JobStatus string

const (
	StatusApplied     JobStatus = "Applied"
	StatusInterviewed JobStatus = "Interviewed"
	StatusRejected    JobStatus = "Rejected"
)

// ValidStatus reports whether s is one of the known job statuses.
func ValidStatus(s JobStatus) bool {
	switch s {
	case StatusApplied, StatusInterviewed, StatusRejected:
		return true
	}
	return false
}

// Job is a single job application record. A zero ID means the record has not
// been persisted yet; unsaved jobs must never be addressed by id.
type Job struct {
	ID          int64     `json:"id,omitempty"`
	UserID      int64     `json:"userId"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	Status      JobStatus `json:"status"`
	DateApplied string    `json:"dateApplied"` // ISO calendar date, YYYY-MM-DD
	Details     string    `json:"details,omitempty"`
}

// Saved reports whether the job has been assigned an identity by the store.
func (j Job) Saved() bool {
	return j.ID != 0
}

// JobPatch is a partial update for a job record. Nil fields are left
// unchanged by the store; set fields replace the stored value.
type JobPatch struct {
	Company     *string    `json:"company,omitempty"`
	Role        *string    `json:"role,omitempty"`
	Status      *JobStatus `json:"status,omitempty"`
	DateApplied *string    `json:"dateApplied,omitempty"`
	Details     *string    `json:"details,omitempty"`
}

// StatusCounts summarizes the visible list by status.
type StatusCounts struct {
	Applied     int `json:"applied"`
	Interviewed int `json:"interviewed"`
	Rejected    int `json:"rejected"`
}

// CountByStatus derives the status summary for a list of jobs. It is a pure
// function of its input and is recomputed whenever the visible list changes.
func CountByStatus(jobs []Job) StatusCounts {
	var c StatusCounts
	for _, j := range jobs {
		switch j.Status {
		case StatusApplied:
			c.Applied++
		case StatusInterviewed:
			c.Interviewed++
		case StatusRejected:
			c.Rejected++
		}
	}
	return c
}
