package service

import (
	"database/sql"
	"path/filepath"
	"reflect"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/jengzang/restaurant-discovery-go/internal/database"
	"github.com/jengzang/restaurant-discovery-go/internal/models"
	"github.com/jengzang/restaurant-discovery-go/internal/repository"
)

func newTestFavorites(t *testing.T) *FavoritesService {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return NewFavoritesService(repository.NewFavoritesRepository(db))
}

func TestToggleAddsAndRemoves(t *testing.T) {
	svc := newTestFavorites(t)
	record := models.PlaceRecord{ID: "p1", Name: "Zuni Cafe", Categories: []string{"restaurant"}}

	added, favorites, err := svc.Toggle(record)
	if err != nil {
		t.Fatalf("Toggle error: %v", err)
	}
	if !added {
		t.Error("first toggle should add")
	}
	if len(favorites) != 1 {
		t.Fatalf("favorites count = %d, want 1", len(favorites))
	}

	added, favorites, err = svc.Toggle(record)
	if err != nil {
		t.Fatalf("Toggle error: %v", err)
	}
	if added {
		t.Error("second toggle should remove")
	}
	if len(favorites) != 0 {
		t.Errorf("favorites count after double toggle = %d, want 0", len(favorites))
	}
}

func TestToggleIdempotencePreservesOthers(t *testing.T) {
	svc := newTestFavorites(t)

	a := models.PlaceRecord{ID: "a", Name: "A"}
	b := models.PlaceRecord{ID: "b", Name: "B"}

	if _, _, err := svc.Toggle(a); err != nil {
		t.Fatal(err)
	}
	before, err := svc.List()
	if err != nil {
		t.Fatal(err)
	}

	// Toggling b twice must return the set to its prior state
	if _, _, err := svc.Toggle(b); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.Toggle(b); err != nil {
		t.Fatal(err)
	}

	after, err := svc.List()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Errorf("double toggle changed the set:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestToggleMatchesByIDOnly(t *testing.T) {
	svc := newTestFavorites(t)

	if _, _, err := svc.Toggle(models.PlaceRecord{ID: "p1", Name: "Original Name"}); err != nil {
		t.Fatal(err)
	}
	// Same ID with different fields is the same place
	_, favorites, err := svc.Toggle(models.PlaceRecord{ID: "p1", Name: "Renamed"})
	if err != nil {
		t.Fatal(err)
	}
	if len(favorites) != 0 {
		t.Errorf("favorites count = %d, want 0 (same ID toggles off)", len(favorites))
	}
}
