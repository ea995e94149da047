package stubstore

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/jobkeeper/internal/client/models"
)

// Seed is the YAML fixture format for pre-populating the stub store, e.g.:
//
//	users:
//	  - username: alice
//	    password: secret
//	jobs:
//	  - username: alice
//	    company: Acme
//	    role: Backend Engineer
//	    status: Applied
//	    dateApplied: 2026-01-15
type Seed struct {
	Users []SeedUser `yaml:"users"`
	Jobs  []SeedJob  `yaml:"jobs"`
}

type SeedUser struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// SeedJob references its owner by username so fixtures stay readable.
type SeedJob struct {
	Username    string `yaml:"username"`
	Company     string `yaml:"company"`
	Role        string `yaml:"role"`
	Status      string `yaml:"status"`
	DateApplied string `yaml:"dateApplied"`
	Details     string `yaml:"details"`
}

// LoadSeed populates the store from a YAML fixture file.
func LoadSeed(s *Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading seed file: %w", err)
	}
	return ApplySeed(s, data)
}

// ApplySeed populates the store from raw YAML.
func ApplySeed(s *Store, data []byte) error {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("parsing seed: %w", err)
	}

	owners := make(map[string]int64, len(seed.Users))
	for _, u := range seed.Users {
		created := s.CreateUser(u.Username, u.Password)
		owners[u.Username] = created.ID
	}

	for _, j := range seed.Jobs {
		ownerID, ok := owners[j.Username]
		if !ok {
			return fmt.Errorf("seed job for unknown user %q", j.Username)
		}
		status := models.JobStatus(j.Status)
		if !models.ValidStatus(status) {
			return fmt.Errorf("seed job with unknown status %q", j.Status)
		}
		s.CreateJob(models.Job{
			UserID:      ownerID,
			Company:     j.Company,
			Role:        j.Role,
			Status:      status,
			DateApplied: j.DateApplied,
			Details:     j.Details,
		})
	}
	return nil
}
