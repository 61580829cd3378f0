package results

import "time"

// CatalogRun represents one pass of the generated suite over the catalog
// with a single executable
type CatalogRun struct {
	ID          int64
	Executable  string // path of the command under test
	StartedAt   time.Time
	CompletedAt *time.Time
	Status      string // 'running', 'completed', 'failed'
	Notes       string
}

// CaseResult represents the outcome of a single generated test case
type CaseResult struct {
	ID           int64
	RunID        int64
	GitURL       string
	Operation    string // 'deploy', 'retrieve', 'convert'
	InputMode    string // 'sourcepath', 'metadata', 'manifest', 'testlevel'
	Args         string // normalized argument string as passed to the command
	Status       string // 'passed', 'failed', 'skipped'
	DurationMs   int64
	MatchedGlobs int
	MissingGlobs int
	Error        string
}

// RepoSummary aggregates case outcomes per sample repository
type RepoSummary struct {
	GitURL  string
	Passed  int
	Failed  int
	Skipped int
}
