// ABOUTME: Tests for the snapshot cache
// ABOUTME: Verifies replace/load round-trips, ordering and atomic replacement
package cache

import (
	"database/sql"
	"path/filepath"
	"testing"

	"imovia/models"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadAllEmpty(t *testing.T) {
	db := testDB(t)

	items, err := LoadAll(db)
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty snapshot, got %d items", len(items))
	}
}

func TestReplaceAllRoundTrip(t *testing.T) {
	db := testDB(t)

	in := []models.PropertyListItem{
		{
			ID: "p1", Name: "Casa Aldeota", Type: "Casa",
			Status: models.PropertyRented, Lat: -3.7318, Lng: -38.5267,
			CurrentTenant: "João Silva", CurrentRentValue: "R$ 1.500,00",
			CurrentContractEndDate: "01/03/2027",
			CurrentContractStatus:  models.ContractActive,
			IptuStatus:             models.IptuPaid,
		},
		{
			ID: "p2", Name: "Galpão Messejana", Type: "Galpão",
			Status: models.PropertyAvailable, Lat: -3.8301, Lng: -38.4953,
			IptuStatus: models.IptuPending,
		},
	}

	if err := ReplaceAll(db, in); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	out, err := LoadAll(db)
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 items, got %d", len(out))
	}
	if out[0].ID != "p1" || out[1].ID != "p2" {
		t.Errorf("order not preserved: got %s, %s", out[0].ID, out[1].ID)
	}
	if out[0].CurrentTenant != "João Silva" {
		t.Errorf("expected tenant 'João Silva', got %q", out[0].CurrentTenant)
	}
	if out[0].CurrentRentValue != "R$ 1.500,00" {
		t.Errorf("expected rent 'R$ 1.500,00', got %q", out[0].CurrentRentValue)
	}
	if out[1].Lat != -3.8301 {
		t.Errorf("expected lat -3.8301, got %v", out[1].Lat)
	}
}

func TestReplaceAllSwapsWholeList(t *testing.T) {
	db := testDB(t)

	first := []models.PropertyListItem{
		{ID: "p1", Name: "Casa A"},
		{ID: "p2", Name: "Casa B"},
	}
	if err := ReplaceAll(db, first); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	second := []models.PropertyListItem{
		{ID: "p3", Name: "Sala C"},
	}
	if err := ReplaceAll(db, second); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	out, err := LoadAll(db)
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(out) != 1 || out[0].ID != "p3" {
		t.Errorf("expected only p3 after replacement, got %+v", out)
	}
}

func TestSavedAt(t *testing.T) {
	db := testDB(t)

	ts, err := SavedAt(db)
	if err != nil {
		t.Fatalf("SavedAt failed: %v", err)
	}
	if !ts.IsZero() {
		t.Errorf("expected zero time on fresh cache, got %v", ts)
	}

	if err := ReplaceAll(db, []models.PropertyListItem{{ID: "p1"}}); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	ts, err = SavedAt(db)
	if err != nil {
		t.Fatalf("SavedAt failed: %v", err)
	}
	if ts.IsZero() {
		t.Error("expected stamp after ReplaceAll")
	}
}
