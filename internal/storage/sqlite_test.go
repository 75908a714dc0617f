package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestHighScoreAbsentIsZero(t *testing.T) {
	store := openTestStore(t)

	high, err := store.LoadHighScore("shadow-strike-highscore")
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for a missing key, got %d", high)
	}
}

func TestHighScoreMonotonic(t *testing.T) {
	store := openTestStore(t)
	const key = "shadow-strike-highscore"

	steps := []struct {
		save, want int
	}{
		{300, 300},
		{200, 300},
		{300, 300},
		{900, 900},
		{0, 900},
	}

	for _, step := range steps {
		if err := store.SaveHighScore(key, step.save); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", step.save, err)
		}
		got, err := store.LoadHighScore(key)
		if err != nil {
			t.Fatalf("LoadHighScore() failed: %v", err)
		}
		if got != step.want {
			t.Errorf("after saving %d, high score = %d, expected %d", step.save, got, step.want)
		}
	}
}

func TestHighScoreKeysIndependent(t *testing.T) {
	store := openTestStore(t)

	store.SaveHighScore("a", 100)
	store.SaveHighScore("b", 50)

	if got, _ := store.LoadHighScore("a"); got != 100 {
		t.Errorf("key a = %d, expected 100", got)
	}
	if got, _ := store.LoadHighScore("b"); got != 50 {
		t.Errorf("key b = %d, expected 50", got)
	}
}

func TestHighScorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveHighScore("k", 700); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if got, _ := store.LoadHighScore("k"); got != 700 {
		t.Errorf("high score after reopen = %d, expected 700", got)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("strike", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("other", 500)

	scores, err := store.TopScores("strike", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("strike", (i+1)*100)
	}

	scores, err := store.TopScores("strike", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GameStats("strike")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("strike", 100)
	store.SaveScore("strike", 300)

	stats, err = store.GameStats("strike")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestStoreClearScoresKeepsHighScore(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("strike", 100)
	store.SaveHighScore("strike-high", 100)

	if err := store.ClearScores("strike"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("strike", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if high, _ := store.LoadHighScore("strike-high"); high != 100 {
		t.Errorf("high score cleared with history, got %d", high)
	}
}
