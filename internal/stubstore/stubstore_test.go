package stubstore

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/jobkeeper/internal/client/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func seedJobs(s *Store) {
	s.CreateJob(models.Job{UserID: 1, Company: "Acme", Role: "Backend Engineer", Status: models.StatusApplied, DateApplied: "2026-01-15"})
	s.CreateJob(models.Job{UserID: 1, Company: "Globex", Role: "SRE", Status: models.StatusInterviewed, DateApplied: "2026-02-01"})
	s.CreateJob(models.Job{UserID: 1, Company: "Initech", Role: "Go Developer", Status: models.StatusApplied, DateApplied: "2026-01-20", Details: "referral"})
	s.CreateJob(models.Job{UserID: 2, Company: "Acme", Role: "Designer", Status: models.StatusRejected, DateApplied: "2026-01-10"})
}

func TestFindJobs_FiltersByOwner(t *testing.T) {
	s := New()
	seedJobs(s)

	jobs := s.FindJobs(JobFilter{UserID: 1, HasUserID: true, Descending: true})
	require.Len(t, jobs, 3)
	for _, j := range jobs {
		require.Equal(t, int64(1), j.UserID)
	}
}

func TestFindJobs_SortOnDateApplied(t *testing.T) {
	s := New()
	seedJobs(s)

	asc := s.FindJobs(JobFilter{UserID: 1, HasUserID: true})
	require.Equal(t, []string{"2026-01-15", "2026-01-20", "2026-02-01"},
		[]string{asc[0].DateApplied, asc[1].DateApplied, asc[2].DateApplied})

	desc := s.FindJobs(JobFilter{UserID: 1, HasUserID: true, Descending: true})
	require.Equal(t, "2026-02-01", desc[0].DateApplied)
	require.Equal(t, "2026-01-15", desc[2].DateApplied)
}

func TestFindJobs_SortIsStableOnTies(t *testing.T) {
	s := New()
	first := s.CreateJob(models.Job{UserID: 1, Company: "A", Role: "r", Status: models.StatusApplied, DateApplied: "2026-03-01"})
	second := s.CreateJob(models.Job{UserID: 1, Company: "B", Role: "r", Status: models.StatusApplied, DateApplied: "2026-03-01"})

	jobs := s.FindJobs(JobFilter{UserID: 1, HasUserID: true})
	require.Equal(t, []int64{first.ID, second.ID}, []int64{jobs[0].ID, jobs[1].ID})
}

func TestFindJobs_FullTextMatchesCompanyRoleDetails(t *testing.T) {
	s := New()
	seedJobs(s)

	tests := []struct {
		text string
		want int
	}{
		{"acme", 1},      // company, case-insensitive, owner-scoped
		{"go dev", 1},    // role substring
		{"referral", 1},  // details
		{"nonsense", 0},
	}
	for _, tc := range tests {
		got := s.FindJobs(JobFilter{UserID: 1, HasUserID: true, Text: tc.text})
		require.Len(t, got, tc.want, "text=%q", tc.text)
	}
}

func TestFindJobs_StatusFilter(t *testing.T) {
	s := New()
	seedJobs(s)

	jobs := s.FindJobs(JobFilter{UserID: 1, HasUserID: true, Status: "Applied"})
	require.Len(t, jobs, 2)
}

func TestPatchJob_AppliesOnlySetFields(t *testing.T) {
	s := New()
	created := s.CreateJob(models.Job{UserID: 1, Company: "Acme", Role: "Dev", Status: models.StatusApplied, DateApplied: "2026-01-15"})

	status := models.StatusInterviewed
	patched, ok := s.PatchJob(created.ID, models.JobPatch{Status: &status})
	require.True(t, ok)
	require.Equal(t, models.StatusInterviewed, patched.Status)
	require.Equal(t, "Acme", patched.Company, "unset fields stay unchanged")
	require.Equal(t, "2026-01-15", patched.DateApplied)
}

func TestPatchJob_UnknownID(t *testing.T) {
	s := New()
	_, ok := s.PatchJob(42, models.JobPatch{})
	require.False(t, ok)
}

func TestDeleteJob(t *testing.T) {
	s := New()
	created := s.CreateJob(models.Job{UserID: 1, Company: "Acme", Role: "Dev", Status: models.StatusApplied, DateApplied: "2026-01-15"})

	require.True(t, s.DeleteJob(created.ID))
	require.False(t, s.DeleteJob(created.ID))
	require.Empty(t, s.FindJobs(JobFilter{}))
}

func TestFindUsers_PasswordOnlyCheckedWhenPresent(t *testing.T) {
	s := New()
	s.CreateUser("alice", "secret")

	require.Len(t, s.FindUsers(UserFilter{Username: "alice"}), 1)
	require.Len(t, s.FindUsers(UserFilter{Username: "alice", Password: "secret", CheckPassword: true}), 1)
	require.Empty(t, s.FindUsers(UserFilter{Username: "alice", Password: "wrong", CheckPassword: true}))
	require.Empty(t, s.FindUsers(UserFilter{Username: "bob"}))
}

func TestApplySeed(t *testing.T) {
	s := New()
	err := ApplySeed(s, []byte(`
users:
  - username: alice
    password: secret
  - username: bob
    password: hunter2
jobs:
  - username: alice
    company: Acme
    role: Backend Engineer
    status: Applied
    dateApplied: "2026-01-15"
  - username: bob
    company: Globex
    role: SRE
    status: Interviewed
    dateApplied: "2026-02-01"
    details: phone screen done
`))
	require.NoError(t, err)

	require.Len(t, s.FindUsers(UserFilter{}), 2)

	alice := s.FindUsers(UserFilter{Username: "alice"})[0]
	jobs := s.FindJobs(JobFilter{UserID: alice.ID, HasUserID: true})
	require.Len(t, jobs, 1)
	require.Equal(t, "Acme", jobs[0].Company)
}

func TestApplySeed_UnknownUserOrStatus(t *testing.T) {
	s := New()
	err := ApplySeed(s, []byte(`
jobs:
  - username: ghost
    company: Acme
    role: Dev
    status: Applied
    dateApplied: "2026-01-15"
`))
	require.ErrorContains(t, err, "unknown user")

	err = ApplySeed(s, []byte(`
users:
  - username: alice
    password: x
jobs:
  - username: alice
    company: Acme
    role: Dev
    status: Ghosted
    dateApplied: "2026-01-15"
`))
	require.ErrorContains(t, err, "unknown status")
}
