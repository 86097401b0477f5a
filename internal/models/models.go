// package models defines the persistent data model for generation runs
package models

import (
	"fmt"
	"time"
)

// Run records one fixture generation run.
type Run struct {
	ID             string     // UUID
	StartedAt      time.Time  // When the run began
	FinishedAt     *time.Time // When the run finished (nil while in progress)
	Total          int        // Fixtures attempted
	NewCount       int        // Fixtures written for the first time
	ChangedCount   int        // Fixtures whose content changed
	UnchangedCount int        // Fixtures identical to the prior generation
	FailedCount    int        // Fixtures that errored
}

// Validate checks if the run's data is valid and returns an error if not.
func (r *Run) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("run ID is required")
	}
	if r.StartedAt.IsZero() {
		return fmt.Errorf("run start time is required")
	}
	if r.NewCount+r.ChangedCount+r.UnchangedCount+r.FailedCount > r.Total {
		return fmt.Errorf("status counts exceed total")
	}
	return nil
}

// RunFixture records the outcome of a single fixture within a run.
type RunFixture struct {
	RunID    string // Parent run UUID
	Path     string // Fixture path, e.g. "tracks/own_videos.json"
	TypeName string // Recorded response type name ("" when undetected)
	Status   string // new | changed | unchanged | failed
	Diff     string // Unified diff text (changed fixtures only)
	Error    string // Failure message (failed fixtures only)
}

// Validate checks if the fixture record's data is valid and returns an error if not.
func (f *RunFixture) Validate() error {
	if f.RunID == "" {
		return fmt.Errorf("run ID is required")
	}
	if f.Path == "" {
		return fmt.Errorf("fixture path is required")
	}
	switch f.Status {
	case "new", "changed", "unchanged", "failed":
	default:
		return fmt.Errorf("invalid fixture status: %q", f.Status)
	}
	return nil
}
