package results

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "results_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	db, err := Open(filepath.Join(tempDir, "results.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestCreateAndGetRun(t *testing.T) {
	db := openTestDB(t)

	run := &CatalogRun{
		Executable: filepath.Join("bin", "run"),
		Status:     "running",
		Notes:      "initial run",
	}
	if err := db.CreateRun(run); err != nil {
		t.Fatalf("CreateRun failed: %v", err)
	}
	if run.ID == 0 {
		t.Fatal("CreateRun did not assign an ID")
	}

	got, err := db.GetRun(run.ID)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got.Executable != run.Executable {
		t.Errorf("Executable = %q, want %q", got.Executable, run.Executable)
	}
	if got.Status != "running" {
		t.Errorf("Status = %q, want 'running'", got.Status)
	}
	if got.CompletedAt != nil {
		t.Error("CompletedAt should be nil for a running run")
	}
}

func TestCompleteRun(t *testing.T) {
	db := openTestDB(t)

	run := &CatalogRun{Executable: "sfdx", Status: "running"}
	if err := db.CreateRun(run); err != nil {
		t.Fatalf("CreateRun failed: %v", err)
	}

	if err := db.CompleteRun(run, "completed"); err != nil {
		t.Fatalf("CompleteRun failed: %v", err)
	}

	got, err := db.GetRun(run.ID)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got.Status != "completed" {
		t.Errorf("Status = %q, want 'completed'", got.Status)
	}
	if got.CompletedAt == nil {
		t.Error("CompletedAt should be set after CompleteRun")
	}
}

func TestRecordAndListCases(t *testing.T) {
	db := openTestDB(t)

	run := &CatalogRun{Executable: "sfdx", Status: "running"}
	if err := db.CreateRun(run); err != nil {
		t.Fatalf("CreateRun failed: %v", err)
	}

	cases := []*CaseResult{
		{
			RunID:        run.ID,
			GitURL:       "https://github.com/trailheadapps/dreamhouse-lwc.git",
			Operation:    "deploy",
			InputMode:    "sourcepath",
			Args:         "force-app",
			Status:       "passed",
			DurationMs:   4210,
			MatchedGlobs: 3,
		},
		{
			RunID:        run.ID,
			GitURL:       "https://github.com/trailheadapps/dreamhouse-lwc.git",
			Operation:    "retrieve",
			InputMode:    "metadata",
			Args:         "ApexClass",
			Status:       "failed",
			DurationMs:   1890,
			MatchedGlobs: 1,
			MissingGlobs: 2,
			Error:        "expected files missing",
		},
	}

	for _, cr := range cases {
		if err := db.RecordCase(cr); err != nil {
			t.Fatalf("RecordCase failed: %v", err)
		}
		if cr.ID == 0 {
			t.Fatal("RecordCase did not assign an ID")
		}
	}

	got, err := db.ListCases(run.ID)
	if err != nil {
		t.Fatalf("ListCases failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListCases returned %d results, want 2", len(got))
	}
	if got[0].Operation != "deploy" {
		t.Errorf("first case Operation = %q, want 'deploy'", got[0].Operation)
	}
	if got[1].MissingGlobs != 2 {
		t.Errorf("second case MissingGlobs = %d, want 2", got[1].MissingGlobs)
	}
}

func TestListRuns_MostRecentFirst(t *testing.T) {
	db := openTestDB(t)

	first := &CatalogRun{Executable: "sfdx", Status: "completed"}
	if err := db.CreateRun(first); err != nil {
		t.Fatalf("CreateRun failed: %v", err)
	}

	second := &CatalogRun{Executable: filepath.Join("bin", "run"), Status: "running"}
	second.StartedAt = first.StartedAt.Add(time.Second)
	if err := db.CreateRun(second); err != nil {
		t.Fatalf("CreateRun failed: %v", err)
	}

	runs, err := db.ListRuns()
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns returned %d runs, want 2", len(runs))
	}
	if runs[0].ID != second.ID {
		t.Errorf("most recent run should be first, got ID %d", runs[0].ID)
	}
}

func TestSummarizeByRepo(t *testing.T) {
	db := openTestDB(t)

	run := &CatalogRun{Executable: "sfdx", Status: "running"}
	if err := db.CreateRun(run); err != nil {
		t.Fatalf("CreateRun failed: %v", err)
	}

	results := []struct {
		gitURL string
		status string
	}{
		{"https://github.com/trailheadapps/dreamhouse-lwc.git", "passed"},
		{"https://github.com/trailheadapps/dreamhouse-lwc.git", "passed"},
		{"https://github.com/trailheadapps/dreamhouse-lwc.git", "failed"},
		{"https://github.com/trailheadapps/ebikes-lwc.git", "skipped"},
	}
	for _, r := range results {
		cr := &CaseResult{
			RunID:     run.ID,
			GitURL:    r.gitURL,
			Operation: "deploy",
			InputMode: "sourcepath",
			Args:      "force-app",
			Status:    r.status,
		}
		if err := db.RecordCase(cr); err != nil {
			t.Fatalf("RecordCase failed: %v", err)
		}
	}

	summaries, err := db.SummarizeByRepo(run.ID)
	if err != nil {
		t.Fatalf("SummarizeByRepo failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("SummarizeByRepo returned %d repos, want 2", len(summaries))
	}

	dreamhouse := summaries[0]
	if dreamhouse.Passed != 2 || dreamhouse.Failed != 1 || dreamhouse.Skipped != 0 {
		t.Errorf("dreamhouse summary = %d/%d/%d passed/failed/skipped, want 2/1/0",
			dreamhouse.Passed, dreamhouse.Failed, dreamhouse.Skipped)
	}

	ebikes := summaries[1]
	if ebikes.Skipped != 1 {
		t.Errorf("ebikes Skipped = %d, want 1", ebikes.Skipped)
	}
}
