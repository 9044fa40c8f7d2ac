package annotation

import (
	"slices"
	"sync"
)

// Store holds the current annotations of every tracked document, keyed by
// path. A document's list is always replaced as a whole.
//
// Store is safe for concurrent use. Lists passed in and handed out are
// copies, so callers cannot mutate stored state.
type Store struct {
	mu   sync.RWMutex
	docs map[string][]Annotation
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{docs: make(map[string][]Annotation)}
}

// Replace sets the annotations for path, discarding the previous list.
func (s *Store) Replace(path string, list []Annotation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[path] = slices.Clone(list)
}

// Get returns the annotations for path and whether path is tracked.
func (s *Store) Get(path string) ([]Annotation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list, ok := s.docs[path]
	return slices.Clone(list), ok
}

// Has reports whether path has at least one annotation.
func (s *Store) Has(path string) bool {
	return s.Count(path) > 0
}

// Count returns the number of annotations for path.
func (s *Store) Count(path string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs[path])
}

// Clear forgets path.
func (s *Store) Clear(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, path)
}

// ClearAll forgets every document.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.docs)
}

// Paths returns the sorted paths that currently have annotations.
func (s *Store) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	paths := make([]string, 0, len(s.docs))
	for p, list := range s.docs {
		if len(list) > 0 {
			paths = append(paths, p)
		}
	}
	slices.Sort(paths)
	return paths
}
