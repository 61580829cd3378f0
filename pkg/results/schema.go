package results

const schema = `
CREATE TABLE IF NOT EXISTS catalog_runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    executable TEXT NOT NULL,
    started_at TEXT NOT NULL,
    completed_at TEXT,
    status TEXT NOT NULL,
    notes TEXT
);

CREATE TABLE IF NOT EXISTS case_results (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    git_url TEXT NOT NULL,
    operation TEXT NOT NULL,
    input_mode TEXT NOT NULL,
    args TEXT NOT NULL,
    status TEXT NOT NULL,
    duration_ms INTEGER NOT NULL,
    matched_globs INTEGER NOT NULL,
    missing_globs INTEGER NOT NULL,
    error TEXT,
    FOREIGN KEY (run_id) REFERENCES catalog_runs(id)
);

CREATE INDEX IF NOT EXISTS idx_case_results_run ON case_results(run_id);
CREATE INDEX IF NOT EXISTS idx_case_results_repo ON case_results(git_url);
`
