// repositories/catalog_repository.go
package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/top5deutschland/top5_backend/models"
)

// ErrProviderNotFound is returned by provider lookups and mutations
// that target an unknown id.
var ErrProviderNotFound = fmt.Errorf("provider not found")

// ErrCategoryNotFound is the taxonomy counterpart.
var ErrCategoryNotFound = fmt.Errorf("category not found")

// CatalogRepository holds the in-memory collections backing the whole
// application. Each collection is read from the store once at startup
// and rewritten after every mutation of that collection; mutations are
// serialized behind a single mutex. A crash between two saves can leave
// the keys mutually inconsistent; no cross-key transaction exists.
type CatalogRepository struct {
	store Store

	mu         sync.RWMutex
	providers  []models.Provider
	categories []models.CategoryInfo
	favorites  []string
}

func NewCatalogRepository(store Store) *CatalogRepository {
	return &CatalogRepository{store: store}
}

// Init loads all collections, seeding built-in defaults for absent keys
// and applying the one-time seed-provider patch.
func (r *CatalogRepository) Init(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := loadKey(ctx, r.store, KeyProviders, &r.providers, SeedProviders); err != nil {
		return err
	}
	if err := loadKey(ctx, r.store, KeyCategories, &r.categories, SeedCategories); err != nil {
		return err
	}
	if err := loadKey(ctx, r.store, KeyFavorites, &r.favorites, func() []string { return []string{} }); err != nil {
		return err
	}

	// Data patch: make sure the seed provider exists at the head of the
	// collection on first load.
	found := false
	for _, p := range r.providers {
		if p.ID == SeedProviderID {
			found = true
			break
		}
	}
	if !found {
		seeded := SeedProviders()
		r.providers = append([]models.Provider{seeded[0]}, r.providers...)
		if err := r.saveLocked(ctx, KeyProviders); err != nil {
			return err
		}
		logrus.WithField("id", SeedProviderID).Info("seed provider patched into collection")
	}

	logrus.WithFields(logrus.Fields{
		"providers":  len(r.providers),
		"categories": len(r.categories),
		"favorites":  len(r.favorites),
	}).Info("catalog loaded")
	return nil
}

func loadKey[T any](ctx context.Context, store Store, key string, dst *[]T, seed func() []T) error {
	blob, found, err := store.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !found {
		*dst = seed()
		encoded, err := json.Marshal(*dst)
		if err != nil {
			return err
		}
		return store.Save(ctx, key, encoded)
	}
	if err := json.Unmarshal(blob, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	if *dst == nil {
		*dst = []T{}
	}
	return nil
}

// saveLocked rewrites one collection key. Callers must hold the mutex.
func (r *CatalogRepository) saveLocked(ctx context.Context, key string) error {
	var v interface{}
	switch key {
	case KeyProviders:
		v = r.providers
	case KeyCategories:
		v = r.categories
	case KeyFavorites:
		v = r.favorites
	default:
		return fmt.Errorf("unknown store key %q", key)
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, key, encoded)
}

// Providers returns a snapshot of the provider collection in insertion order.
func (r *CatalogRepository) Providers() []models.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Provider, len(r.providers))
	copy(out, r.providers)
	return out
}

// Categories returns a snapshot of the taxonomy.
func (r *CatalogRepository) Categories() []models.CategoryInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.CategoryInfo, len(r.categories))
	copy(out, r.categories)
	return out
}

// Favorites returns a snapshot of the favorite id list.
func (r *CatalogRepository) Favorites() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.favorites))
	copy(out, r.favorites)
	return out
}

// FindProvider returns the provider with the given id.
func (r *CatalogRepository) FindProvider(id string) (models.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.providers {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Provider{}, ErrProviderNotFound
}

// PrependProvider places a new provider at the head of the collection,
// preserving the relative order of all other entries.
func (r *CatalogRepository) PrependProvider(ctx context.Context, p models.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers = append([]models.Provider{p}, r.providers...)
	return r.saveLocked(ctx, KeyProviders)
}

// ReplaceProvider swaps the provider with the matching id in place.
func (r *CatalogRepository) ReplaceProvider(ctx context.Context, p models.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.providers {
		if r.providers[i].ID == p.ID {
			r.providers[i] = p
			return r.saveLocked(ctx, KeyProviders)
		}
	}
	return ErrProviderNotFound
}

// UpdateProvider applies fn to the provider with the given id and
// persists the result. fn runs under the repository mutex.
func (r *CatalogRepository) UpdateProvider(ctx context.Context, id string, fn func(models.Provider) models.Provider) (models.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.providers {
		if r.providers[i].ID == id {
			r.providers[i] = fn(r.providers[i])
			if err := r.saveLocked(ctx, KeyProviders); err != nil {
				return models.Provider{}, err
			}
			return r.providers[i], nil
		}
	}
	return models.Provider{}, ErrProviderNotFound
}

// DeleteProvider removes the provider outright. Irreversible.
func (r *CatalogRepository) DeleteProvider(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.providers {
		if r.providers[i].ID == id {
			r.providers = append(r.providers[:i], r.providers[i+1:]...)
			return r.saveLocked(ctx, KeyProviders)
		}
	}
	return ErrProviderNotFound
}

// AddCategory appends a category; the id must be unique.
func (r *CatalogRepository) AddCategory(ctx context.Context, cat models.CategoryInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.categories {
		if existing.ID == cat.ID {
			return fmt.Errorf("category %q already exists", cat.ID)
		}
	}
	r.categories = append(r.categories, cat)
	return r.saveLocked(ctx, KeyCategories)
}

// DeleteCategory removes the category outright. Providers referencing
// its id keep the stale reference; there is deliberately no cascade.
func (r *CatalogRepository) DeleteCategory(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.categories {
		if r.categories[i].ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return r.saveLocked(ctx, KeyCategories)
		}
	}
	return ErrCategoryNotFound
}

// AddSubCategory appends a subcategory to the named category; the
// subcategory id must be unique within that category.
func (r *CatalogRepository) AddSubCategory(ctx context.Context, categoryID string, sub models.SubCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.categories {
		if r.categories[i].ID != categoryID {
			continue
		}
		if r.categories[i].HasSubCategory(sub.ID) {
			return fmt.Errorf("subcategory %q already exists in %q", sub.ID, categoryID)
		}
		r.categories[i].SubCategories = append(r.categories[i].SubCategories, sub)
		return r.saveLocked(ctx, KeyCategories)
	}
	return ErrCategoryNotFound
}

// DeleteSubCategory removes a subcategory from its parent's list only.
func (r *CatalogRepository) DeleteSubCategory(ctx context.Context, categoryID, subID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.categories {
		if r.categories[i].ID != categoryID {
			continue
		}
		subs := r.categories[i].SubCategories
		for j := range subs {
			if subs[j].ID == subID {
				r.categories[i].SubCategories = append(subs[:j], subs[j+1:]...)
				return r.saveLocked(ctx, KeyCategories)
			}
		}
		return fmt.Errorf("subcategory %q not found in %q", subID, categoryID)
	}
	return ErrCategoryNotFound
}

// ToggleFavorite adds the id to the favorite set, or removes it when
// already present. Returns true when the id is a favorite afterwards.
func (r *CatalogRepository) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, f := range r.favorites {
		if f == id {
			r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
			return false, r.saveLocked(ctx, KeyFavorites)
		}
	}
	r.favorites = append(r.favorites, id)
	return true, r.saveLocked(ctx, KeyFavorites)
}
