package taxonomy

import (
	"context"
	"sync"

	"github.com/manoharask/msme/internal/store"
)

// LoadFunc fetches the full category list from the backing store.
type LoadFunc func(ctx context.Context) ([]store.Category, error)

// CategoryRepository provides cached access to category definitions.
// The cache is read-mostly: it fills lazily on first use and is only
// refreshed through Invalidate. Category edits made elsewhere are not
// visible until a caller invalidates explicitly.
type CategoryRepository interface {
	// Categories returns all category definitions, loading them on first call.
	Categories(ctx context.Context) ([]store.Category, error)

	// Invalidate drops the cached definitions so the next call reloads.
	Invalidate()
}

// cachedRepository is the default CategoryRepository implementation.
type cachedRepository struct {
	load LoadFunc

	mu     sync.RWMutex
	cached []store.Category
	loaded bool
}

// NewRepository creates a CategoryRepository with the given load function.
// Tests construct a fresh repository per case with a stub loader.
func NewRepository(load LoadFunc) CategoryRepository {
	return &cachedRepository{load: load}
}

// NewStoreRepository creates a CategoryRepository backed by the graph store.
func NewStoreRepository(s *store.GraphStore) CategoryRepository {
	return NewRepository(s.FetchCategories)
}

func (r *cachedRepository) Categories(ctx context.Context) ([]store.Category, error) {
	r.mu.RLock()
	if r.loaded {
		cached := r.cached
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another caller may have filled the cache while we waited for the lock.
	if r.loaded {
		return r.cached, nil
	}

	categories, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	r.cached = categories
	r.loaded = true
	return r.cached, nil
}

func (r *cachedRepository) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cached = nil
	r.loaded = false
}
