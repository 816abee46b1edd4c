package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-eco/internal/eco"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestStoreRecordAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runID, err := store.StartRun("default", "")
	if err != nil {
		t.Fatalf("StartRun() failed: %v", err)
	}

	rec := store.Recorder(runID)
	first := []eco.Reading{
		{ID: 0, Label: "Cooling", Amount: 100, Capacity: eco.Float(100)},
		{ID: 1, Label: "Mass", Amount: 0},
	}
	second := []eco.Reading{
		{ID: 0, Label: "Cooling", Amount: 89.8, Capacity: eco.Float(100)},
		{ID: 1, Label: "Mass", Amount: 0.5},
	}
	if err := rec.Record(0, first); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if err := rec.Record(150, second); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}

	entries, err := store.Readings(runID, 0)
	if err != nil {
		t.Fatalf("Readings() failed: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("Expected 4 readings, got %d", len(entries))
	}

	if entries[0].Tick != 0 || entries[0].Label != "Cooling" || entries[0].Amount != 100 {
		t.Errorf("entries[0] = %+v, expected Cooling 100 at tick 0", entries[0])
	}
	if !entries[0].Capacity.Valid || entries[0].Capacity.Float64 != 100 {
		t.Errorf("entries[0].Capacity = %+v, expected 100", entries[0].Capacity)
	}
	if entries[1].Capacity.Valid {
		t.Errorf("entries[1].Capacity = %+v, expected NULL", entries[1].Capacity)
	}
	if entries[3].Tick != 150 || entries[3].Amount != 0.5 {
		t.Errorf("entries[3] = %+v, expected Mass 0.5 at tick 150", entries[3])
	}

	limited, err := store.Readings(runID, 1)
	if err != nil {
		t.Fatalf("Readings() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected 1 reading with limit, got %d", len(limited))
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.StartRun("default", "local")
	second, _ := store.StartRun("foundry", "alice")
	if err := store.RecordReadings(second, 0, []eco.Reading{{Label: "Ore", Amount: 20}}); err != nil {
		t.Fatalf("RecordReadings() failed: %v", err)
	}

	runs, err := store.Runs(10)
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	// Newest first
	if runs[0].ID != second || runs[0].Scenario != "foundry" || runs[0].Host != "alice" {
		t.Errorf("runs[0] = %+v, expected foundry by alice", runs[0])
	}
	if runs[0].Readings != 1 {
		t.Errorf("runs[0].Readings = %d, expected 1", runs[0].Readings)
	}
	if runs[1].ID != first || runs[1].Host != "local" || runs[1].Readings != 0 {
		t.Errorf("runs[1] = %+v, expected empty local run", runs[1])
	}
}

func TestStoreReadingsUnknownRun(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.Readings(42, 0)
	if err != nil {
		t.Fatalf("Readings() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no readings, got %d", len(entries))
	}
}
