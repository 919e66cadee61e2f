package catalog

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"musicschool/pkg/models"
)

// Loader fetches the raw course list from wherever the catalog lives.
type Loader func(ctx context.Context) ([]models.Course, error)

// FileLoader loads the catalog from a JSON or YAML file.
func FileLoader(path string) Loader {
	return func(ctx context.Context) ([]models.Course, error) {
		return LoadFile(path)
	}
}

// StaticLoader serves a fixed in-memory list.
func StaticLoader(courses []models.Course) Loader {
	return func(ctx context.Context) ([]models.Course, error) {
		return courses, nil
	}
}

// Store hands out the current catalog snapshot. Reload builds a new snapshot
// and swaps it in atomically; readers keep whatever snapshot they already hold.
type Store struct {
	source string
	load   Loader
	logger *log.Logger

	current atomic.Pointer[Catalog]

	mu       sync.Mutex
	onReload []func(*Catalog)
}

func NewStore(source string, load Loader, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	s := &Store{source: source, load: load, logger: logger}
	s.current.Store(emptyCatalog())
	return s
}

// Current returns the active snapshot. Before the first successful Reload it
// is an empty catalog.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// OnReload registers fn to run after every successful reload.
func (s *Store) OnReload(fn func(*Catalog)) {
	s.mu.Lock()
	s.onReload = append(s.onReload, fn)
	s.mu.Unlock()
}

// Reload loads and validates the catalog. On failure the previous snapshot
// stays active.
func (s *Store) Reload(ctx context.Context) (*Catalog, error) {
	courses, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", s.source, err)
	}
	cat, err := NewCatalog(courses, s.source)
	if err != nil {
		return nil, fmt.Errorf("catalog from %s: %w", s.source, err)
	}
	s.current.Store(cat)
	s.logger.Printf("[catalog] loaded %d courses from %s", cat.Len(), s.source)

	s.mu.Lock()
	hooks := append([]func(*Catalog){}, s.onReload...)
	s.mu.Unlock()
	for _, fn := range hooks {
		fn(cat)
	}
	return cat, nil
}
