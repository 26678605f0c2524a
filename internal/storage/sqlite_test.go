package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some round times
	if _, err := store.SaveRound("pickup", 12*time.Second); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if _, err := store.SaveRound("pickup", 8500*time.Millisecond); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if _, err := store.SaveRound("pickup", 20*time.Second); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	// Different rule set
	if _, err := store.SaveRound("fillup", 30*time.Second); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	rounds, err := store.TopRounds("pickup", 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}

	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(rounds))
	}

	// Should be sorted ascending (fastest first)
	if rounds[0].Millis != 8500 {
		t.Errorf("Expected fastest round to be 8500ms, got %d", rounds[0].Millis)
	}
	if rounds[1].Millis != 12000 {
		t.Errorf("Expected second round to be 12000ms, got %d", rounds[1].Millis)
	}
	if rounds[2].Millis != 20000 {
		t.Errorf("Expected third round to be 20000ms, got %d", rounds[2].Millis)
	}

	if rounds[0].Duration() != 8500*time.Millisecond {
		t.Errorf("Duration() = %v, expected 8.5s", rounds[0].Duration())
	}

	// fillup rounds are separate
	fillupRounds, err := store.TopRounds("fillup", 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(fillupRounds) != 1 {
		t.Errorf("Expected 1 fillup round, got %d", len(fillupRounds))
	}
}

func TestStoreBestTime(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No rounds yet
	best, err := store.BestTime("pickup")
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestTime() with no rounds = %v, expected 0", best)
	}

	store.SaveRound("pickup", 15*time.Second)
	store.SaveRound("pickup", 9*time.Second)
	store.SaveRound("pickup", 22*time.Second)

	best, err = store.BestTime("pickup")
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if best != 9*time.Second {
		t.Errorf("BestTime() = %v, expected 9s", best)
	}
}

func TestStoreClearRounds(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRound("pickup", 10*time.Second)
	store.SaveRound("fillup", 10*time.Second)

	if err := store.ClearRounds("pickup"); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	rounds, err := store.TopRounds("pickup", 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 0 {
		t.Errorf("Expected 0 pickup rounds after clear, got %d", len(rounds))
	}

	// fillup untouched
	fillupRounds, err := store.TopRounds("fillup", 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(fillupRounds) != 1 {
		t.Errorf("Expected fillup rounds to survive, got %d", len(fillupRounds))
	}
}

func TestStoreRuleStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRound("fillup", 10*time.Second)
	store.SaveRound("fillup", 20*time.Second)

	stats, err := store.GetRuleStats("fillup")
	if err != nil {
		t.Fatalf("GetRuleStats() failed: %v", err)
	}

	if stats.Rounds != 2 {
		t.Errorf("Rounds = %d, expected 2", stats.Rounds)
	}
	if stats.BestMillis != 10000 {
		t.Errorf("BestMillis = %d, expected 10000", stats.BestMillis)
	}
	if stats.AvgMillis != 15000 {
		t.Errorf("AvgMillis = %f, expected 15000", stats.AvgMillis)
	}
}
