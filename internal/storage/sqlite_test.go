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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoreMigrationsApplied(t *testing.T) {
	store := openTestStore(t)

	v, err := store.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion() failed: %v", err)
	}
	if v != 2 {
		t.Errorf("schema version = %d, want 2", v)
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("gomba", 700); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("gomba")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 700 {
		t.Errorf("high score after reopen = %d, want 700", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveScore("gomba", 300)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	store.SaveScore("gomba", 1200)
	store.SaveScore("gomba", 100)
	store.SaveScore("other", 9999)

	scores, err := store.TopScores("gomba", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	if scores[0].Score != 1200 || scores[1].Score != 300 || scores[2].Score != 100 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	for _, s := range scores {
		if s.GameID != "gomba" {
			t.Errorf("unexpected game id %q", s.GameID)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("gomba", (i+1)*100)
	}

	scores, err := store.TopScores("gomba", 3)
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

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("gomba")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("gomba", 100)
	store.SaveScore("gomba", 300)
	store.SaveScore("gomba", 200)

	high, err = store.HighScore("gomba")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("gomba", 100)
	store.SaveScore("gomba", 200)
	store.SaveScore("other", 300)
	store.SaveRound(RoundRecord{GameID: "gomba", Score: 200})

	if err := store.ClearScores("gomba"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("gomba", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	rounds, _ := store.RecentRounds("gomba", 10)
	if len(rounds) != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", len(rounds))
	}

	others, _ := store.TopScores("other", 10)
	if len(others) != 1 {
		t.Errorf("other game's scores should not be affected by clear")
	}
}

func TestStoreSaveRound(t *testing.T) {
	store := openTestStore(t)

	in := RoundRecord{
		GameID:            "gomba",
		Score:             500,
		PatrollerKills:    3,
		AxePatrollerKills: 1,
		JumpOvers:         4,
		Spawned:           9,
		DurationSecs:      42.5,
		Seed:              7,
		Difficulty:        "hard",
	}
	id, err := store.SaveRound(in)
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	rounds, err := store.RecentRounds("gomba", 10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("Expected 1 round, got %d", len(rounds))
	}
	got := rounds[0]
	in.ID = id
	in.CreatedAt = got.CreatedAt
	if got != in {
		t.Errorf("round = %+v, want %+v", got, in)
	}
}

func TestStoreRecentRoundsNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 4; i++ {
		store.SaveRound(RoundRecord{GameID: "gomba", Score: i * 100})
	}

	rounds, err := store.RecentRounds("gomba", 3)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(rounds))
	}
	want := []int{400, 300, 200}
	for i, r := range rounds {
		if r.Score != want[i] {
			t.Errorf("rounds[%d].Score = %d, want %d", i, r.Score, want[i])
		}
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("gomba")
	if err != nil {
		t.Fatalf("GetGameStats() on empty store failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty store: %+v", stats)
	}

	store.SaveScore("gomba", 100)
	store.SaveScore("gomba", 300)
	store.SaveRound(RoundRecord{GameID: "gomba", Score: 100, PatrollerKills: 1, JumpOvers: 2, DurationSecs: 10})
	store.SaveRound(RoundRecord{GameID: "gomba", Score: 300, PatrollerKills: 1, AxePatrollerKills: 1, DurationSecs: 20})

	stats, err = store.GetGameStats("gomba")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, want 400", stats.TotalScore)
	}
	if stats.PatrollerKills != 2 || stats.AxePatrollerKills != 1 || stats.JumpOvers != 2 {
		t.Errorf("kill totals = %d/%d/%d, want 2/1/2", stats.PatrollerKills, stats.AxePatrollerKills, stats.JumpOvers)
	}
	if stats.PlayTimeSecs != 30 {
		t.Errorf("PlayTimeSecs = %v, want 30", stats.PlayTimeSecs)
	}
}

func TestStoreNestedPath(t *testing.T) {
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
