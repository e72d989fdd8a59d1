package preference

import (
	"context"
	"sync"

	"blog_feed/internal/domain"
)

type MemoryStore struct {
	mu    sync.RWMutex
	prefs map[string]domain.ThemePreference
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{prefs: make(map[string]domain.ThemePreference)}
}

func (s *MemoryStore) Get(_ context.Context, visitorID string) (*domain.ThemePreference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pref, ok := s.prefs[visitorID]
	if !ok {
		return nil, domain.ErrPreferenceNotFound
	}
	return &pref, nil
}

func (s *MemoryStore) Set(_ context.Context, pref *domain.ThemePreference) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs[pref.VisitorID] = *pref
	return nil
}
