package repository

import (
	"fmt"
	"testing"

	"bysam-catalog/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestProperty_ProductsReferencingFindsExactlyTheReferences(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("returned products all reference the category, and none are missed", prop.ForAll(
		func(categoryIDs []string, target string) bool {
			products := make([]domain.Product, len(categoryIDs))
			for i, id := range categoryIDs {
				products[i] = domain.Product{ID: fmt.Sprintf("p%d", i), Category: id}
			}

			refs := productsReferencing(products, target)

			expected := 0
			for _, id := range categoryIDs {
				if id == target {
					expected++
				}
			}
			if len(refs) != expected {
				return false
			}
			for _, p := range refs {
				if p.Category != target {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.OneConstOf("perfume", "soap", "other")),
		gen.OneConstOf("perfume", "soap", "other", "absent"),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProperty_CategoryIDUniquenessMatchesOccurrenceCount(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("candidate is unique iff no other category owns it", prop.ForAll(
		func(ids []string, candidate string, excluding string) bool {
			categories := make([]domain.Category, len(ids))
			for i, id := range ids {
				categories[i] = domain.Category{ID: id, Name: id}
			}

			owned := false
			for _, id := range ids {
				if id == candidate && id != excluding {
					owned = true
					break
				}
			}

			return categoryIDIsUnique(categories, candidate, excluding) == !owned
		},
		gen.SliceOf(gen.OneConstOf("a", "b", "c")),
		gen.OneConstOf("a", "b", "c", "d"),
		gen.OneConstOf("", "a", "b"),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestMissingProductFieldsOrder(t *testing.T) {
	fields := missingProductFields(domain.Product{Price: -1})
	want := []string{"name", "brand", "description", "imageUrl", "price"}

	if len(fields) != len(want) {
		t.Fatalf("expected %v, got %v", want, fields)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, fields)
		}
	}
}

func TestMissingFieldsTreatWhitespaceAsEmpty(t *testing.T) {
	fields := missingProductFields(domain.Product{
		Name: "  ", Brand: "B", Description: "d", ImageURL: "u", Price: 1,
	})
	if len(fields) != 1 || fields[0] != "name" {
		t.Fatalf("expected [name], got %v", fields)
	}

	catFields := missingCategoryFields(domain.Category{ID: "\t", Name: "X"})
	if len(catFields) != 1 || catFields[0] != "id" {
		t.Fatalf("expected [id], got %v", catFields)
	}
}
