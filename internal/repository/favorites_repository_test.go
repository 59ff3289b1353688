package repository

import (
	"database/sql"
	"path/filepath"
	"reflect"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/jengzang/restaurant-discovery-go/internal/database"
	"github.com/jengzang/restaurant-discovery-go/internal/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestLoadEmpty(t *testing.T) {
	repo := NewFavoritesRepository(newTestDB(t))

	favorites, err := repo.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(favorites) != 0 {
		t.Errorf("fresh store has %d favorites, want 0", len(favorites))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoritesRepository(db)

	want := []models.PlaceRecord{
		{
			ID:           "p1",
			Name:         "Zuni Cafe",
			Introduction: "A San Francisco institution.",
			Rating:       4.4,
			Image:        "/api/places/photo?photoreference=ref-1&maxwidth=800",
			Categories:   []string{"restaurant", "american"},
			DistanceKm:   0.42,
			DetailURL:    "https://maps.example/p1",
		},
		{
			ID:         "mock-3",
			Name:       "Pub & Grub",
			Categories: []string{"bar", "pub"},
		},
	}

	if err := repo.Save(want); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	// A fresh repository over the same database must see the same list
	got, err := NewFavoritesRepository(db).Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestSaveReplacesWholesale(t *testing.T) {
	repo := NewFavoritesRepository(newTestDB(t))

	if err := repo.Save([]models.PlaceRecord{{ID: "a"}, {ID: "b"}}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save([]models.PlaceRecord{{ID: "c"}}); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "c" {
		t.Errorf("Load after replace = %+v, want single record c", got)
	}
}
