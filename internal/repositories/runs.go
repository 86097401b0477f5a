package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/models"
	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/shared"
)

// RunRepository handles database operations for runs and their fixtures.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new RunRepository with the given database connection.
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create inserts a new run.
func (r *RunRepository) Create(run *models.Run) error {
	if err := run.Validate(); err != nil {
		return fmt.Errorf("invalid run: %w", err)
	}

	_, err := r.db.Exec(`
		INSERT INTO runs (id, started_at, finished_at, total, new_count, changed_count, unchanged_count, failed_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt, run.FinishedAt, run.Total,
		run.NewCount, run.ChangedCount, run.UnchangedCount, run.FailedCount,
	)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	return nil
}

// Finish updates a run's counters and sets its finish time.
func (r *RunRepository) Finish(run *models.Run) error {
	now := time.Now()
	run.FinishedAt = &now

	result, err := r.db.Exec(`
		UPDATE runs
		SET finished_at = ?, total = ?, new_count = ?, changed_count = ?, unchanged_count = ?, failed_count = ?
		WHERE id = ?`,
		run.FinishedAt, run.Total, run.NewCount, run.ChangedCount,
		run.UnchangedCount, run.FailedCount, run.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrRunNotFound, run.ID)
	}

	return nil
}

// Get retrieves a run by its ID.
func (r *RunRepository) Get(id string) (*models.Run, error) {
	run := &models.Run{}

	err := r.db.QueryRow(`
		SELECT id, started_at, finished_at, total, new_count, changed_count, unchanged_count, failed_count
		FROM runs WHERE id = ?`, id,
	).Scan(&run.ID, &run.StartedAt, &run.FinishedAt, &run.Total,
		&run.NewCount, &run.ChangedCount, &run.UnchangedCount, &run.FailedCount)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", shared.ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return run, nil
}

// Latest retrieves the most recently started run, or ErrRunNotFound when
// no runs exist.
func (r *RunRepository) Latest() (*models.Run, error) {
	run := &models.Run{}

	err := r.db.QueryRow(`
		SELECT id, started_at, finished_at, total, new_count, changed_count, unchanged_count, failed_count
		FROM runs ORDER BY started_at DESC LIMIT 1`,
	).Scan(&run.ID, &run.StartedAt, &run.FinishedAt, &run.Total,
		&run.NewCount, &run.ChangedCount, &run.UnchangedCount, &run.FailedCount)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: no runs recorded", shared.ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest run: %w", err)
	}

	return run, nil
}

// List retrieves runs ordered most recent first, up to limit (0 for all).
func (r *RunRepository) List(limit int) ([]models.Run, error) {
	query := `
		SELECT id, started_at, finished_at, total, new_count, changed_count, unchanged_count, failed_count
		FROM runs ORDER BY started_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		var run models.Run
		if err := rows.Scan(&run.ID, &run.StartedAt, &run.FinishedAt, &run.Total,
			&run.NewCount, &run.ChangedCount, &run.UnchangedCount, &run.FailedCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// AddFixture records the outcome of a single fixture for a run.
func (r *RunRepository) AddFixture(fixture *models.RunFixture) error {
	if err := fixture.Validate(); err != nil {
		return fmt.Errorf("invalid run fixture: %w", err)
	}

	_, err := r.db.Exec(`
		INSERT OR REPLACE INTO run_fixtures (run_id, path, type_name, status, diff, error)
		VALUES (?, ?, ?, ?, ?, ?)`,
		fixture.RunID, fixture.Path, fixture.TypeName, fixture.Status, fixture.Diff, fixture.Error,
	)
	if err != nil {
		return fmt.Errorf("failed to add run fixture: %w", err)
	}

	return nil
}

// Fixtures retrieves all fixture outcomes for a run, ordered by path.
func (r *RunRepository) Fixtures(runID string) ([]models.RunFixture, error) {
	rows, err := r.db.Query(`
		SELECT run_id, path, type_name, status, diff, error
		FROM run_fixtures WHERE run_id = ? ORDER BY path`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list run fixtures: %w", err)
	}
	defer rows.Close()

	var fixtures []models.RunFixture
	for rows.Next() {
		var f models.RunFixture
		if err := rows.Scan(&f.RunID, &f.Path, &f.TypeName, &f.Status, &f.Diff, &f.Error); err != nil {
			return nil, fmt.Errorf("failed to scan run fixture: %w", err)
		}
		fixtures = append(fixtures, f)
	}

	return fixtures, rows.Err()
}
