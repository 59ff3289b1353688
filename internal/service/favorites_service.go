package service

import (
	"sync"

	"github.com/jengzang/restaurant-discovery-go/internal/models"
	"github.com/jengzang/restaurant-discovery-go/internal/repository"
)

// FavoritesService manages the persisted favorites list. Updates are
// synchronous read-modify-write against the store, last writer wins.
type FavoritesService struct {
	repo *repository.FavoritesRepository
	mu   sync.Mutex
}

// NewFavoritesService creates a new favorites service
func NewFavoritesService(repo *repository.FavoritesRepository) *FavoritesService {
	return &FavoritesService{repo: repo}
}

// List returns the current favorites in insertion order
func (s *FavoritesService) List() ([]models.PlaceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Load()
}

// Toggle adds the record to favorites, or removes it when a record with
// the same ID is already present. Toggling twice restores the original
// list. Returns whether the record is a favorite after the call.
func (s *FavoritesService) Toggle(record models.PlaceRecord) (bool, []models.PlaceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorites, err := s.repo.Load()
	if err != nil {
		return false, nil, err
	}

	added := true
	for i, fav := range favorites {
		if fav.ID == record.ID {
			favorites = append(favorites[:i], favorites[i+1:]...)
			added = false
			break
		}
	}
	if added {
		favorites = append(favorites, record)
	}

	if err := s.repo.Save(favorites); err != nil {
		return false, nil, err
	}
	return added, favorites, nil
}
