// Package persistence stores finished runs so the death menu can show the best ones.
package persistence

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a run ID is unknown
var ErrNotFound = errors.New("run not found")

// RunRecord is the outcome of one life of the player
type RunRecord struct {
	ID         string        `json:"id"`
	Seed       int64         `json:"seed"`
	Kills      int           `json:"kills"`
	SpawnLimit int           `json:"spawnLimit"`
	Duration   time.Duration `json:"duration"`
	EndedAt    time.Time     `json:"endedAt"`
}

// NewRunRecord creates a record with a fresh ID
func NewRunRecord(seed int64, kills, spawnLimit int, duration time.Duration, endedAt time.Time) RunRecord {
	return RunRecord{
		ID:         uuid.NewString(),
		Seed:       seed,
		Kills:      kills,
		SpawnLimit: spawnLimit,
		Duration:   duration,
		EndedAt:    endedAt.UTC(),
	}
}

// Storage defines the interface for run persistence
type Storage interface {
	SaveRun(run RunRecord) error
	LoadRun(id string) (RunRecord, error)
	TopRuns(n int) ([]RunRecord, error)
	Close() error
}

// rankRuns orders runs by kills, then by survival time, then by who got there first
func rankRuns(runs []RunRecord) {
	sort.SliceStable(runs, func(i, j int) bool {
		a, b := runs[i], runs[j]
		if a.Kills != b.Kills {
			return a.Kills > b.Kills
		}
		if a.Duration != b.Duration {
			return a.Duration > b.Duration
		}
		return a.EndedAt.Before(b.EndedAt)
	})
}
