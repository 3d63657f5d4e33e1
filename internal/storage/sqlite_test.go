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

func mustSave(t *testing.T, store *Store, r Result) {
	t.Helper()
	if _, err := store.SaveResult(r); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
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

	mustSave(t, store, Result{Pack: "shift", Level: "01-hatch", Moves: 3, Par: 1, Solution: "0:3:0,3:0:0,0:3:0"})
	mustSave(t, store, Result{Pack: "shift", Level: "01-hatch", Moves: 1, Par: 1, Solution: "0:3:0", Player: "ann"})
	mustSave(t, store, Result{Pack: "shift", Level: "01-hatch", Moves: 2, Par: 1})
	mustSave(t, store, Result{Pack: "spin", Level: "01-hatch", Moves: 5, Par: 1})

	results, err := store.TopResults("shift", "01-hatch", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	// Should be sorted by moves
	for i, want := range []int{1, 2, 3} {
		if results[i].Moves != want {
			t.Errorf("results[%d].Moves = %d, want %d", i, results[i].Moves, want)
		}
	}
	if results[0].Solution != "0:3:0" || results[0].Player != "ann" {
		t.Errorf("best result lost its fields: %+v", results[0])
	}
	if !results[0].Bonus() || results[1].Bonus() {
		t.Error("bonus should be earned within par only")
	}
	if results[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	spin, err := store.TopResults("spin", "", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(spin) != 1 {
		t.Errorf("Expected 1 spin result, got %d", len(spin))
	}
}

func TestStoreSaveRequiresPackAndLevel(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(Result{Pack: "shift", Moves: 1}); err == nil {
		t.Error("SaveResult() without level should fail")
	}
	if _, err := store.SaveResult(Result{Level: "01-hatch", Moves: 1}); err == nil {
		t.Error("SaveResult() without pack should fail")
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, Result{Pack: "flip", Level: "02-bands", Moves: 10 - i, Par: 4})
	}

	results, err := store.TopResults("flip", "02-bands", 3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results with limit, got %d", len(results))
	}
	if results[0].Moves != 6 || results[1].Moves != 7 || results[2].Moves != 8 {
		t.Errorf("Results not in expected order: %+v", results)
	}
}

func TestStoreBestMoves(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestMoves("blink", "01-hatch")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for an unsolved level, got %d", best)
	}

	mustSave(t, store, Result{Pack: "blink", Level: "01-hatch", Moves: 4, Par: 1})
	mustSave(t, store, Result{Pack: "blink", Level: "01-hatch", Moves: 2, Par: 1})
	mustSave(t, store, Result{Pack: "spin", Level: "01-hatch", Moves: 1, Par: 1})

	best, err = store.BestMoves("blink", "01-hatch")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if best != 2 {
		t.Errorf("Expected best of 2, got %d", best)
	}
}

func TestStoreProgress(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{Pack: "spin", Level: "01-hatch", Moves: 3, Par: 1})
	mustSave(t, store, Result{Pack: "spin", Level: "01-hatch", Moves: 1, Par: 1})
	mustSave(t, store, Result{Pack: "spin", Level: "02-bands", Moves: 9, Par: 4})

	progress, err := store.Progress("spin")
	if err != nil {
		t.Fatalf("Progress() failed: %v", err)
	}
	if len(progress) != 2 {
		t.Fatalf("Expected 2 levels, got %d", len(progress))
	}

	hatch := progress["01-hatch"]
	if hatch.Best != 1 || !hatch.Bonus || hatch.Solves != 2 {
		t.Errorf("01-hatch progress = %+v", hatch)
	}
	bands := progress["02-bands"]
	if bands.Best != 9 || bands.Bonus || bands.Solves != 1 {
		t.Errorf("02-bands progress = %+v", bands)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{Pack: "shift", Level: "01-hatch", Moves: 1, Par: 1})
	mustSave(t, store, Result{Pack: "shift", Level: "02-bands", Moves: 4, Par: 3})
	mustSave(t, store, Result{Pack: "flip", Level: "01-hatch", Moves: 1, Par: 1})

	// Clear only shift results
	if err := store.ClearResults("shift"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	shift, _ := store.TopResults("shift", "", 10)
	if len(shift) != 0 {
		t.Errorf("Expected 0 shift results after clear, got %d", len(shift))
	}

	flip, _ := store.TopResults("flip", "", 10)
	if len(flip) != 1 {
		t.Errorf("Flip results should not be affected by clearing shift")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{Pack: "shift", Level: "01-hatch", Moves: 1, Par: 1})
	mustSave(t, store, Result{Pack: "shift", Level: "01-hatch", Moves: 3, Par: 1})
	mustSave(t, store, Result{Pack: "shift", Level: "02-bands", Moves: 2, Par: 3})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	shift, ok := stats["shift"]
	if !ok {
		t.Fatal("missing shift stats")
	}
	if shift.Solves != 3 || shift.Levels != 2 || shift.Bonuses != 2 {
		t.Errorf("shift stats = %+v", shift)
	}
	if shift.AvgMoves != 2 {
		t.Errorf("AvgMoves = %v, want 2", shift.AvgMoves)
	}
	if _, ok := stats["blink"]; ok {
		t.Error("unplayed pack should have no stats")
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
