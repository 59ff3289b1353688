package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jengzang/restaurant-discovery-go/internal/models"
)

// BatchSize is the number of records promoted per pagination step
const BatchSize = 5

// SessionService holds the per-search fetch sessions: the full fetched
// result set, the records still awaiting pagination, and the active
// category filter. A fresh search always creates a new session; sessions
// are evicted after the TTL.
type SessionService struct {
	mu       sync.Mutex
	sessions map[string]*models.FetchSession
	ttl      time.Duration
}

// NewSessionService creates a session service and starts TTL eviction
func NewSessionService(ttl time.Duration) *SessionService {
	s := &SessionService{
		sessions: make(map[string]*models.FetchSession),
		ttl:      ttl,
	}
	go s.evictLoop()
	return s
}

// evictLoop drops sessions not touched within the TTL
func (s *SessionService) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for id, sess := range s.sessions {
			if now.Sub(sess.LastAccessed) > s.ttl {
				delete(s.sessions, id)
			}
		}
		s.mu.Unlock()
	}
}

// Create starts a fresh session from a full (already shuffled) result
// sequence: the first batch is promoted immediately, the rest is held
// for load-more calls.
func (s *SessionService) Create(origin models.Coordinate, records []models.PlaceRecord, filter string, mock bool) *models.SearchResult {
	if filter == "" {
		filter = models.FilterAll
	}

	first := records
	var remaining []models.PlaceRecord
	if len(records) > BatchSize {
		first = records[:BatchSize]
		remaining = records[BatchSize:]
	}

	now := time.Now()
	sess := &models.FetchSession{
		ID:           uuid.NewString(),
		Origin:       origin,
		AllFetched:   append([]models.PlaceRecord(nil), first...),
		Remaining:    append([]models.PlaceRecord(nil), remaining...),
		Filter:       filter,
		Mock:         mock,
		CreatedAt:    now,
		LastAccessed: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return &models.SearchResult{
		SessionID: sess.ID,
		Places:    models.FilterPlaces(first, filter),
		HasMore:   hasMore(sess),
		Mock:      mock,
	}
}

// LoadMore promotes the next batch from remaining into the fetched set
// and returns it filtered. An exhausted session yields an empty batch
// with HasMore false, not an error.
func (s *SessionService) LoadMore(sessionID string) (*models.SearchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.LastAccessed = time.Now()

	n := BatchSize
	if n > len(sess.Remaining) {
		n = len(sess.Remaining)
	}
	batch := sess.Remaining[:n]
	sess.Remaining = sess.Remaining[n:]
	sess.AllFetched = append(sess.AllFetched, batch...)

	return &models.SearchResult{
		SessionID: sess.ID,
		Places:    models.FilterPlaces(batch, sess.Filter),
		HasMore:   hasMore(sess),
		Mock:      sess.Mock,
	}, nil
}

// SetFilter changes the active category filter and re-derives the
// visible set from the already-fetched records. It never touches the
// remaining queue and never refetches.
func (s *SessionService) SetFilter(sessionID, filter string) (*models.SearchResult, error) {
	if filter == "" {
		filter = models.FilterAll
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.LastAccessed = time.Now()
	sess.Filter = filter

	return &models.SearchResult{
		SessionID: sess.ID,
		Places:    models.FilterPlaces(sess.AllFetched, filter),
		HasMore:   hasMore(sess),
		Mock:      sess.Mock,
	}, nil
}

// hasMore reports whether any remaining record could satisfy the active
// filter. Remaining records are scanned on every call because they are
// not re-filtered until promoted by a load-more.
func hasMore(sess *models.FetchSession) bool {
	if sess.Filter == models.FilterAll {
		return len(sess.Remaining) > 0
	}
	for _, p := range sess.Remaining {
		if p.HasCategory(sess.Filter) {
			return true
		}
	}
	return false
}
