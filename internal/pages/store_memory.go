package pages

import (
	"context"
	"sync"

	"incubator/internal/prefix"
)

type pageKey struct {
	namespace int
	dbKey     string
}

// InMemoryIndex is a page index for tests and single-node deployments that
// seed pages from a file.
type InMemoryIndex struct {
	mu    sync.RWMutex
	pages map[pageKey]struct{}
}

// NewInMemoryIndex returns an index containing pages.
func NewInMemoryIndex(pages ...prefix.Title) *InMemoryIndex {
	idx := &InMemoryIndex{pages: make(map[pageKey]struct{}, len(pages))}
	for _, p := range pages {
		idx.pages[keyOf(p)] = struct{}{}
	}
	return idx
}

func keyOf(p prefix.Title) pageKey {
	return pageKey{namespace: p.Namespace, dbKey: DBKey(p.Text)}
}

// Add records a page as existing.
func (s *InMemoryIndex) Add(p prefix.Title) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[keyOf(p)] = struct{}{}
}

// Remove forgets a page.
func (s *InMemoryIndex) Remove(p prefix.Title) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pages, keyOf(p))
}

func (s *InMemoryIndex) Exists(_ context.Context, p prefix.Title) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.pages[keyOf(p)]
	return ok, nil
}

func (s *InMemoryIndex) ExistingAmong(_ context.Context, namespace int, titles []string) (map[string]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found := make(map[string]bool, len(titles))
	for _, t := range titles {
		key := DBKey(t)
		if _, ok := s.pages[pageKey{namespace: namespace, dbKey: key}]; ok {
			found[key] = true
		}
	}
	return found, nil
}
