package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/vovakirdan/dino-runner/internal/games/dino"
)

var (
	_ dino.ValueStore = (*Store)(nil)
	_ dino.ValueStore = (*Memory)(nil)
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, run := range []struct {
		player string
		score  int
	}{
		{"alice", 100},
		{"bob", 50},
		{"alice", 200},
	} {
		if _, err := store.SaveScore("dino", run.player, run.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different game id
	if _, err := store.SaveScore("dino-hard", "carol", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("dino", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[0].Player != "alice" {
		t.Errorf("Expected alice's 200 first, got %+v", scores[0])
	}
	if scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be parsed")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("dino", "", (i+1)*100)
	}

	scores, err := store.TopScores("dino", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Ties keep insertion order.
	store.SaveScore("ties", "first", 10)
	store.SaveScore("ties", "second", 10)
	ties, _ := store.TopScores("ties", 0)
	if len(ties) != 2 || ties[0].Player != "first" {
		t.Errorf("Tied runs out of order: %v", ties)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("dino")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("dino", "", 100)
	store.SaveScore("dino", "", 300)
	store.SaveScore("dino", "", 200)

	high, err = store.HighScore("dino")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("dino", "", 100)
	store.SaveScore("dino", "", 200)
	store.SaveScore("other", "", 300)

	if err := store.ClearScores("dino"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("dino", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("Other games should not be affected by clearing dino")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("dino")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Empty stats = %+v", stats)
	}

	store.SaveScore("dino", "", 10)
	store.SaveScore("dino", "", 30)

	stats, err = store.Stats("dino")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.TotalScore != 40 || stats.AvgScore != 20 {
		t.Errorf("Stats = %+v, expected 2 games, high 30, total 40, avg 20", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreKV(t *testing.T) {
	store := openTestStore(t)

	v, err := store.GetInt(dino.HighScoreKey)
	if err != nil || v != 0 {
		t.Fatalf("GetInt(missing) = %d, %v; expected 0, nil", v, err)
	}

	tests := []struct {
		value  int
		stored int
	}{
		{42, 42},
		{99, 99},
		{50, 99},
		{99, 99},
		{120, 120},
	}
	for _, tt := range tests {
		got, err := store.RaiseInt(dino.HighScoreKey, tt.value)
		if err != nil {
			t.Fatalf("RaiseInt(%d) failed: %v", tt.value, err)
		}
		if got != tt.stored {
			t.Errorf("RaiseInt(%d) = %d, expected %d", tt.value, got, tt.stored)
		}
		if v, _ := store.GetInt(dino.HighScoreKey); v != tt.stored {
			t.Errorf("GetInt() after RaiseInt(%d) = %d, expected %d", tt.value, v, tt.stored)
		}
	}

	if err := store.DeleteKey(dino.HighScoreKey); err != nil {
		t.Fatalf("DeleteKey() failed: %v", err)
	}
	if v, _ := store.GetInt(dino.HighScoreKey); v != 0 {
		t.Errorf("GetInt() after delete = %d, expected 0", v)
	}
	if err := store.DeleteKey("never-set"); err != nil {
		t.Errorf("DeleteKey(missing) = %v", err)
	}
}

func TestStoreKVPersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	store.RaiseInt(dino.HighScoreKey, 1234)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if v, _ := store.GetInt(dino.HighScoreKey); v != 1234 {
		t.Errorf("high score after reopen = %d, expected 1234", v)
	}
}

func TestStoreConcurrentWrites(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				if _, err := store.SaveScore("dino", "", n*10+j); err != nil {
					t.Errorf("SaveScore() failed: %v", err)
				}
			}
		}(i)
	}
	wg.Wait()

	stats, err := store.Stats("dino")
	if err != nil {
		t.Fatal(err)
	}
	if stats.GamesCount != 80 {
		t.Errorf("Expected 80 runs, got %d", stats.GamesCount)
	}
}

func TestStoreConcurrentRaiseKeepsMax(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if _, err := store.RaiseInt(dino.HighScoreKey, n*10); err != nil {
				t.Errorf("RaiseInt() failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if v, _ := store.GetInt(dino.HighScoreKey); v != 200 {
		t.Errorf("high score after concurrent writes = %d, expected 200", v)
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	if v, err := m.GetInt("x"); v != 0 || err != nil {
		t.Errorf("GetInt(missing) = %d, %v", v, err)
	}
	m.RaiseInt("x", 7)
	if v, _ := m.GetInt("x"); v != 7 {
		t.Errorf("GetInt() = %d, expected 7", v)
	}
	if v, _ := m.RaiseInt("x", 3); v != 7 {
		t.Errorf("RaiseInt(3) = %d, expected 7 kept", v)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
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
