package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"bysam-catalog/internal/domain"
	"bysam-catalog/internal/store"

	"github.com/google/uuid"
)

// CatalogRepository defines the interface for catalog data access. It is
// the sole writer of the products and categories collections: every
// mutation validates against the integrity rules, persists, and only
// then updates the in-memory view.
type CatalogRepository interface {
	ListProducts(ctx context.Context) []domain.Product
	FindProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, draft domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, draft domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ToggleFeatured(ctx context.Context, id string) (*domain.Product, error)
	Search(ctx context.Context, term string) []domain.Product
	FilterByCategory(ctx context.Context, categoryID string) []domain.Product
	FeaturedProducts(ctx context.Context) []domain.Product

	ListCategories(ctx context.Context) []domain.Category
	CreateCategory(ctx context.Context, draft domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, oldID string, draft domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type catalogRepository struct {
	mu         sync.RWMutex
	store      store.Store
	products   []domain.Product
	categories []domain.Category
}

// NewCatalogRepository hydrates a repository from the store. Absent
// collections are seeded with the default dataset; malformed stored JSON
// is returned as a parse failure.
func NewCatalogRepository(ctx context.Context, st store.Store) (CatalogRepository, error) {
	r := &catalogRepository{store: st}

	products, err := loadCollection(ctx, st, store.CollectionProducts, domain.DefaultProducts)
	if err != nil {
		return nil, err
	}
	categories, err := loadCollection(ctx, st, store.CollectionCategories, domain.DefaultCategories)
	if err != nil {
		return nil, err
	}

	r.products = products
	r.categories = categories
	return r, nil
}

// loadCollection reads and decodes one collection, seeding it with the
// default dataset when the store has never been written.
func loadCollection[T any](ctx context.Context, st store.Store, name string, defaults func() []T) ([]T, error) {
	data, err := st.Load(ctx, name)
	if err == store.ErrNotFound {
		seeded := defaults()
		encoded, err := json.Marshal(seeded)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s seed: %w", name, err)
		}
		if err := st.Save(ctx, name, encoded); err != nil {
			return nil, fmt.Errorf("failed to seed %s: %w", name, err)
		}
		return seeded, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s collection: %w", name, err)
	}
	return records, nil
}

func (r *catalogRepository) saveProducts(ctx context.Context, products []domain.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode products: %w", err)
	}
	if err := r.store.Save(ctx, store.CollectionProducts, data); err != nil {
		return fmt.Errorf("failed to persist products: %w", err)
	}
	return nil
}

func (r *catalogRepository) saveCategories(ctx context.Context, categories []domain.Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}
	if err := r.store.Save(ctx, store.CollectionCategories, data); err != nil {
		return fmt.Errorf("failed to persist categories: %w", err)
	}
	return nil
}

// ListProducts returns the current products in insertion order.
func (r *catalogRepository) ListProducts(_ context.Context) []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Product(nil), r.products...)
}

// FindProduct retrieves a product by id.
func (r *catalogRepository) FindProduct(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, ErrProductNotFound
}

// CreateProduct validates the draft, assigns an id when absent, appends
// the product and persists the collection.
func (r *catalogRepository) CreateProduct(ctx context.Context, draft domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if fields := missingProductFields(draft); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	if !categoryExists(r.categories, draft.Category) {
		return nil, ErrCategoryNotFound
	}

	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}

	next := append(append([]domain.Product(nil), r.products...), draft)
	if err := r.saveProducts(ctx, next); err != nil {
		return nil, err
	}

	r.products = next
	return &draft, nil
}

// UpdateProduct replaces the record matching id in place, preserving its
// position in the collection.
func (r *catalogRepository) UpdateProduct(ctx context.Context, id string, draft domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if fields := missingProductFields(draft); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	if !categoryExists(r.categories, draft.Category) {
		return nil, ErrCategoryNotFound
	}

	index := -1
	for i, p := range r.products {
		if p.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ErrProductNotFound
	}

	draft.ID = id
	next := append([]domain.Product(nil), r.products...)
	next[index] = draft

	if err := r.saveProducts(ctx, next); err != nil {
		return nil, err
	}

	r.products = next
	return &draft, nil
}

// DeleteProduct removes the product matching id.
func (r *catalogRepository) DeleteProduct(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]domain.Product, 0, len(r.products))
	found := false
	for _, p := range r.products {
		if p.ID == id {
			found = true
			continue
		}
		next = append(next, p)
	}
	if !found {
		return ErrProductNotFound
	}

	if err := r.saveProducts(ctx, next); err != nil {
		return err
	}

	r.products = next
	return nil
}

// ToggleFeatured flips the highlight flag of the product matching id.
func (r *catalogRepository) ToggleFeatured(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	index := -1
	for i, p := range r.products {
		if p.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ErrProductNotFound
	}

	next := append([]domain.Product(nil), r.products...)
	next[index].Featured = !next[index].Featured

	if err := r.saveProducts(ctx, next); err != nil {
		return nil, err
	}

	r.products = next
	toggled := next[index]
	return &toggled, nil
}

// Search matches term case-insensitively against name, brand and dupeOf.
func (r *catalogRepository) Search(_ context.Context, term string) []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	term = strings.ToLower(term)
	var matches []domain.Product
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Brand), term) ||
			(p.DupeOf != "" && strings.Contains(strings.ToLower(p.DupeOf), term)) {
			matches = append(matches, p)
		}
	}
	return matches
}

// FilterByCategory returns the products in the given category; an empty
// categoryID means all categories.
func (r *catalogRepository) FilterByCategory(_ context.Context, categoryID string) []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if categoryID == "" {
		return append([]domain.Product(nil), r.products...)
	}
	return productsReferencing(r.products, categoryID)
}

// FeaturedProducts returns the products flagged as highlights.
func (r *catalogRepository) FeaturedProducts(_ context.Context) []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var featured []domain.Product
	for _, p := range r.products {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}

// ListCategories returns the current categories in insertion order.
func (r *catalogRepository) ListCategories(_ context.Context) []domain.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Category(nil), r.categories...)
}

// CreateCategory validates the draft and rejects an id already owned by
// an existing category.
func (r *catalogRepository) CreateCategory(ctx context.Context, draft domain.Category) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if fields := missingCategoryFields(draft); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	if !categoryIDIsUnique(r.categories, draft.ID, "") {
		return nil, ErrDuplicateCategoryID
	}

	next := append(append([]domain.Category(nil), r.categories...), draft)
	if err := r.saveCategories(ctx, next); err != nil {
		return nil, err
	}

	r.categories = next
	return &draft, nil
}

// UpdateCategory replaces the category identified by oldID. Renaming the
// id cascades to every referencing product; both collections are buffered
// and persisted (categories first, then products) only after validation
// passes, so the caller observes either both updates or neither.
func (r *catalogRepository) UpdateCategory(ctx context.Context, oldID string, draft domain.Category) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if fields := missingCategoryFields(draft); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	index := -1
	for i, c := range r.categories {
		if c.ID == oldID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ErrCategoryNotFound
	}

	if !categoryIDIsUnique(r.categories, draft.ID, oldID) {
		return nil, ErrDuplicateCategoryID
	}

	nextCategories := append([]domain.Category(nil), r.categories...)
	nextCategories[index] = draft

	renamed := draft.ID != oldID
	var nextProducts []domain.Product
	if renamed {
		nextProducts = append([]domain.Product(nil), r.products...)
		for i := range nextProducts {
			if nextProducts[i].Category == oldID {
				nextProducts[i].Category = draft.ID
			}
		}
	}

	if err := r.saveCategories(ctx, nextCategories); err != nil {
		return nil, err
	}
	if renamed {
		if err := r.saveProducts(ctx, nextProducts); err != nil {
			return nil, err
		}
		r.products = nextProducts
	}

	r.categories = nextCategories
	return &draft, nil
}

// DeleteCategory removes the category matching id unless products still
// reference it. Deletes never cascade to products.
func (r *catalogRepository) DeleteCategory(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	index := -1
	for i, c := range r.categories {
		if c.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return ErrCategoryNotFound
	}

	if refs := productsReferencing(r.products, id); len(refs) > 0 {
		return &CategoryInUseError{CategoryID: id, Count: len(refs)}
	}

	next := append([]domain.Category(nil), r.categories[:index]...)
	next = append(next, r.categories[index+1:]...)

	if err := r.saveCategories(ctx, next); err != nil {
		return err
	}

	r.categories = next
	return nil
}
