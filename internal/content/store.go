// Package content serves the authored page catalogue: ordered module lists
// keyed by page slug. Content is produced by the CMS and read-only here.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/hijamacare/site-engine/internal/modules"
)

// ErrPageNotFound is returned when no page exists for a slug.
var ErrPageNotFound = errors.New("page not found")

// Page is one authored page: an ordered list of module instances.
type Page struct {
	Slug    string             `json:"slug"`
	Title   string             `json:"title"`
	Modules []modules.Instance `json:"modules"`
}

// Store provides read access to the page catalogue.
type Store interface {
	GetPage(ctx context.Context, slug string) (*Page, error)
	Slugs(ctx context.Context) ([]string, error)
}

// MemoryStore holds the catalogue in memory, loaded once at startup.
type MemoryStore struct {
	mu    sync.RWMutex
	pages map[string]*Page
}

// NewMemoryStore creates a store over the given pages.
func NewMemoryStore(pages []Page) *MemoryStore {
	s := &MemoryStore{pages: make(map[string]*Page, len(pages))}
	for i := range pages {
		p := pages[i]
		s.pages[p.Slug] = &p
	}
	return s
}

// LoadFile reads the authored catalogue from a JSON file.
func LoadFile(path string) (*MemoryStore, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	var pages []Page
	if err := json.Unmarshal(raw, &pages); err != nil {
		return nil, fmt.Errorf("parse content file %s: %w", path, err)
	}
	return NewMemoryStore(pages), nil
}

// GetPage returns the page for a slug.
func (s *MemoryStore) GetPage(_ context.Context, slug string) (*Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pages[slug]
	if !ok {
		return nil, ErrPageNotFound
	}
	return p, nil
}

// Slugs lists all page slugs in lexical order.
func (s *MemoryStore) Slugs(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	slugs := make([]string, 0, len(s.pages))
	for slug := range s.pages {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs, nil
}
