package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 5, 20} {
		if _, err := store.SaveScore("easy", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("hard", 50); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("easy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	want := []int{20, 10, 5}
	for i, s := range scores {
		if s.Score != want[i] {
			t.Errorf("score %d = %d, want %d", i, s.Score, want[i])
		}
		if s.Level != "easy" {
			t.Errorf("score %d level = %q, want easy", i, s.Level)
		}
	}

	hardScores, err := store.TopScores("hard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(hardScores) != 1 {
		t.Errorf("Expected 1 hard score, got %d", len(hardScores))
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	run := Run{Level: "hard", Score: 7, Reason: "hazard caught", Duration: 42500 * time.Millisecond}
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("id = %d, want positive", id)
	}

	scores, err := store.TopScores("hard", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}
	got := scores[0]
	if got.Score != 7 || got.Reason != "hazard caught" || got.Duration != run.Duration {
		t.Errorf("got %+v, want score 7, reason %q, duration %v", got, run.Reason, run.Duration)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("easy", (i+1)*10) //nolint:errcheck
	}

	scores, err := store.TopScores("easy", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopScores("easy", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty level, got %d", high)
	}

	store.SaveScore("easy", 10) //nolint:errcheck
	store.SaveScore("easy", 30) //nolint:errcheck
	store.SaveScore("easy", 20) //nolint:errcheck
	store.SaveScore("hard", 99) //nolint:errcheck

	high, err = store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreBestOverall(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestOverall()
	if err != nil {
		t.Fatalf("BestOverall() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty store, got %d", best)
	}

	store.SaveScore("easy", 12) //nolint:errcheck
	store.SaveScore("hard", 8)  //nolint:errcheck

	best, err = store.BestOverall()
	if err != nil {
		t.Fatalf("BestOverall() failed: %v", err)
	}
	if best != 12 {
		t.Errorf("Expected 12, got %d", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("easy", 10) //nolint:errcheck
	store.SaveScore("easy", 20) //nolint:errcheck
	store.SaveScore("hard", 30) //nolint:errcheck

	if err := store.ClearScores("easy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	easyScores, _ := store.TopScores("easy", 10)
	if len(easyScores) != 0 {
		t.Errorf("Expected 0 easy scores after clear, got %d", len(easyScores))
	}

	hardScores, _ := store.TopScores("hard", 10)
	if len(hardScores) != 1 {
		t.Errorf("Hard scores should not be affected by clearing easy")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("easy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore("easy", 4) //nolint:errcheck
	store.SaveScore("easy", 8) //nolint:errcheck

	stats, err := store.Stats("easy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 8 || stats.TotalScore != 12 || stats.AvgScore != 6 {
		t.Errorf("stats = %+v, want 2 runs, high 8, total 12, avg 6", stats)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
