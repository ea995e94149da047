// Package stubstore is an in-memory stand-in for the remote record store,
// used for local development and tests. It speaks the same four-verb dialect
// the client expects: GET with equality/full-text/sort parameters, POST,
// PATCH and DELETE over the users and jobs collections.
package stubstore

import (
	"sort"
	"strings"
	"sync"

	"github.com/dmitrijs2005/jobkeeper/internal/client/models"
)

// UserRecord is the stored shape of a user, including the plaintext
// password. This mirrors the toy record store the client was written
// against; it has no security value.
type UserRecord struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Store holds the collections. All access goes through the mutex; iteration
// order of jobs is insertion order, which makes the dateApplied sort stable
// with undefined tie-breaking beyond that.
type Store struct {
	mu       sync.Mutex
	users    []UserRecord
	jobs     []models.Job
	nextUser int64
	nextJob  int64
}

func New() *Store {
	return &Store{nextUser: 1, nextJob: 1}
}

// UserFilter selects users by field equality. Empty fields match anything,
// except Password which only applies when CheckPassword is set (a query can
// legitimately search for an empty password).
type UserFilter struct {
	Username      string
	Password      string
	CheckPassword bool
}

func (s *Store) FindUsers(f UserFilter) []UserRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []UserRecord{}
	for _, u := range s.users {
		if f.Username != "" && u.Username != f.Username {
			continue
		}
		if f.CheckPassword && u.Password != f.Password {
			continue
		}
		out = append(out, u)
	}
	return out
}

func (s *Store) CreateUser(username, password string) UserRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := UserRecord{ID: s.nextUser, Username: username, Password: password}
	s.nextUser++
	s.users = append(s.users, u)
	return u
}

// JobFilter mirrors the list query parameters: owner equality, optional
// full-text constraint, optional status equality, and the sort direction on
// dateApplied.
type JobFilter struct {
	UserID     int64
	HasUserID  bool
	Text       string
	Status     string
	Descending bool
}

func (s *Store) FindJobs(f JobFilter) []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Job{}
	text := strings.ToLower(f.Text)
	for _, j := range s.jobs {
		if f.HasUserID && j.UserID != f.UserID {
			continue
		}
		if f.Status != "" && string(j.Status) != f.Status {
			continue
		}
		if text != "" && !matchesText(j, text) {
			continue
		}
		out = append(out, j)
	}

	// ISO dates compare correctly as strings; stable keeps insertion order
	// on ties
	sort.SliceStable(out, func(a, b int) bool {
		if f.Descending {
			return out[a].DateApplied > out[b].DateApplied
		}
		return out[a].DateApplied < out[b].DateApplied
	})
	return out
}

func matchesText(j models.Job, lowered string) bool {
	for _, field := range []string{j.Company, j.Role, j.Details} {
		if strings.Contains(strings.ToLower(field), lowered) {
			return true
		}
	}
	return false
}

func (s *Store) CreateJob(j models.Job) models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	j.ID = s.nextJob
	s.nextJob++
	s.jobs = append(s.jobs, j)
	return j
}

func (s *Store) GetJob(id int64) (models.Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return models.Job{}, false
}

// PatchJob applies the partial update to the identified job. The second
// result is false when the id does not exist.
func (s *Store) PatchJob(id int64, patch models.JobPatch) (models.Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.jobs {
		if s.jobs[i].ID != id {
			continue
		}
		j := &s.jobs[i]
		if patch.Company != nil {
			j.Company = *patch.Company
		}
		if patch.Role != nil {
			j.Role = *patch.Role
		}
		if patch.Status != nil {
			j.Status = *patch.Status
		}
		if patch.DateApplied != nil {
			j.DateApplied = *patch.DateApplied
		}
		if patch.Details != nil {
			j.Details = *patch.Details
		}
		return *j, true
	}
	return models.Job{}, false
}

func (s *Store) DeleteJob(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, j := range s.jobs {
		if j.ID == id {
			s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
			return true
		}
	}
	return false
}
