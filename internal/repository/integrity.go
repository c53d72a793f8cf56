package repository

import (
	"strings"

	"bysam-catalog/internal/domain"
)

// Referential integrity rules. All of these are pure functions over the
// buffered collections; the repository applies them before committing
// any mutation.

// categoryIDIsUnique reports whether candidate collides with no category
// other than the one identified by excluding (empty excluding means the
// candidate must not collide with anything).
func categoryIDIsUnique(categories []domain.Category, candidate, excluding string) bool {
	for _, c := range categories {
		if c.ID == candidate && c.ID != excluding {
			return false
		}
	}
	return true
}

// categoryExists reports whether id names a current category.
func categoryExists(categories []domain.Category, id string) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// productsReferencing returns every product whose category foreign key
// equals categoryID. Used both for the delete block and the rename cascade.
func productsReferencing(products []domain.Product, categoryID string) []domain.Product {
	var refs []domain.Product
	for _, p := range products {
		if p.Category == categoryID {
			refs = append(refs, p)
		}
	}
	return refs
}

// missingProductFields returns the required product fields absent or
// invalid in the draft, in a stable order.
func missingProductFields(p domain.Product) []string {
	var fields []string
	if strings.TrimSpace(p.Name) == "" {
		fields = append(fields, "name")
	}
	if strings.TrimSpace(p.Brand) == "" {
		fields = append(fields, "brand")
	}
	if strings.TrimSpace(p.Description) == "" {
		fields = append(fields, "description")
	}
	if strings.TrimSpace(p.ImageURL) == "" {
		fields = append(fields, "imageUrl")
	}
	if p.Price < 0 {
		fields = append(fields, "price")
	}
	return fields
}

// missingCategoryFields returns the required category fields absent in
// the draft.
func missingCategoryFields(c domain.Category) []string {
	var fields []string
	if strings.TrimSpace(c.ID) == "" {
		fields = append(fields, "id")
	}
	if strings.TrimSpace(c.Name) == "" {
		fields = append(fields, "name")
	}
	return fields
}
