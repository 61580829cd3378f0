package results

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the SQLite database connection
type DB struct {
	conn *sql.DB
}

// Open opens or creates a SQLite database and initializes the schema
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	// WAL allows multiple readers while one writer is active
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// If database is locked, retry for up to 5 seconds before failing
	if _, err := conn.Exec("PRAGMA busy_timeout=5000"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// CreateRun creates a new catalog run record and fills in its ID
func (db *DB) CreateRun(run *CatalogRun) error {
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}

	result, err := db.conn.Exec(`
		INSERT INTO catalog_runs (executable, started_at, status, notes)
		VALUES (?, ?, ?, ?)`,
		run.Executable, run.StartedAt.Format(time.RFC3339), run.Status, run.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to create catalog run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	run.ID = id
	return nil
}

// CompleteRun marks a run finished with the given status
func (db *DB) CompleteRun(run *CatalogRun, status string) error {
	now := time.Now()
	run.CompletedAt = &now
	run.Status = status

	_, err := db.conn.Exec(`
		UPDATE catalog_runs
		SET completed_at = ?, status = ?, notes = ?
		WHERE id = ?`,
		now.Format(time.RFC3339), run.Status, run.Notes, run.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete catalog run: %w", err)
	}

	return nil
}

// GetRun retrieves a catalog run by ID
func (db *DB) GetRun(id int64) (*CatalogRun, error) {
	var run CatalogRun
	var startedAt string
	var completedAt *string

	err := db.conn.QueryRow(`
		SELECT id, executable, started_at, completed_at, status, notes
		FROM catalog_runs WHERE id = ?`, id,
	).Scan(&run.ID, &run.Executable, &startedAt, &completedAt, &run.Status, &run.Notes)
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog run: %w", err)
	}

	run.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
	if completedAt != nil {
		t, _ := time.Parse(time.RFC3339, *completedAt)
		run.CompletedAt = &t
	}

	return &run, nil
}

// ListRuns lists all catalog runs, most recent first
func (db *DB) ListRuns() ([]*CatalogRun, error) {
	rows, err := db.conn.Query(`
		SELECT id, executable, started_at, completed_at, status, notes
		FROM catalog_runs ORDER BY started_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog runs: %w", err)
	}
	defer rows.Close()

	var runs []*CatalogRun
	for rows.Next() {
		var run CatalogRun
		var startedAt string
		var completedAt *string

		err := rows.Scan(&run.ID, &run.Executable, &startedAt, &completedAt, &run.Status, &run.Notes)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog run: %w", err)
		}

		run.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		if completedAt != nil {
			t, _ := time.Parse(time.RFC3339, *completedAt)
			run.CompletedAt = &t
		}

		runs = append(runs, &run)
	}

	return runs, nil
}

// RecordCase creates a new case result record and fills in its ID
func (db *DB) RecordCase(cr *CaseResult) error {
	result, err := db.conn.Exec(`
		INSERT INTO case_results (run_id, git_url, operation, input_mode, args, status, duration_ms, matched_globs, missing_globs, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		cr.RunID, cr.GitURL, cr.Operation, cr.InputMode, cr.Args,
		cr.Status, cr.DurationMs, cr.MatchedGlobs, cr.MissingGlobs, cr.Error,
	)
	if err != nil {
		return fmt.Errorf("failed to record case result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	cr.ID = id
	return nil
}

// ListCases lists all case results for a catalog run
func (db *DB) ListCases(runID int64) ([]*CaseResult, error) {
	rows, err := db.conn.Query(`
		SELECT id, run_id, git_url, operation, input_mode, args, status, duration_ms, matched_globs, missing_globs, error
		FROM case_results WHERE run_id = ? ORDER BY git_url, operation, input_mode, id`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list case results: %w", err)
	}
	defer rows.Close()

	var cases []*CaseResult
	for rows.Next() {
		var cr CaseResult
		err := rows.Scan(
			&cr.ID, &cr.RunID, &cr.GitURL, &cr.Operation, &cr.InputMode, &cr.Args,
			&cr.Status, &cr.DurationMs, &cr.MatchedGlobs, &cr.MissingGlobs, &cr.Error,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case result: %w", err)
		}
		cases = append(cases, &cr)
	}

	return cases, nil
}

// SummarizeByRepo aggregates case outcomes per repository for a run
func (db *DB) SummarizeByRepo(runID int64) ([]*RepoSummary, error) {
	rows, err := db.conn.Query(`
		SELECT git_url,
		       SUM(CASE WHEN status = 'passed' THEN 1 ELSE 0 END),
		       SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END),
		       SUM(CASE WHEN status = 'skipped' THEN 1 ELSE 0 END)
		FROM case_results WHERE run_id = ?
		GROUP BY git_url ORDER BY git_url`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize case results: %w", err)
	}
	defer rows.Close()

	var summaries []*RepoSummary
	for rows.Next() {
		var s RepoSummary
		if err := rows.Scan(&s.GitURL, &s.Passed, &s.Failed, &s.Skipped); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		summaries = append(summaries, &s)
	}

	return summaries, nil
}
