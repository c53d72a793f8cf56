package domain

import (
	"regexp"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestNormalizeCategoryID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Body Spray", "body-spray"},
		{"  Body   Spray  ", "-body-spray-"},
		{"Parfüm", "parfm"},
		{"already-normal", "already-normal"},
		{"UPPER", "upper"},
		{"tabs\tand\nnewlines", "tabs-and-newlines"},
		{"###", ""},
	}

	for _, tt := range tests {
		if got := NormalizeCategoryID(tt.in); got != tt.want {
			t.Errorf("NormalizeCategoryID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

var normalizedID = regexp.MustCompile(`^[a-z0-9-]*$`)

func TestProperty_NormalizedIDsUseRestrictedAlphabet(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("output only contains [a-z0-9-] and normalizing twice changes nothing", prop.ForAll(
		func(raw string) bool {
			id := NormalizeCategoryID(raw)
			if !normalizedID.MatchString(id) {
				return false
			}
			return NormalizeCategoryID(id) == id
		},
		gen.AnyString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestDefaultDataset(t *testing.T) {
	categories := DefaultCategories()
	products := DefaultProducts()

	if len(categories) != 5 {
		t.Fatalf("expected 5 seed categories, got %d", len(categories))
	}
	if len(products) != 4 {
		t.Fatalf("expected 4 seed products, got %d", len(products))
	}

	// Every seed product must reference a seed category
	ids := make(map[string]bool)
	for _, c := range categories {
		if ids[c.ID] {
			t.Fatalf("duplicate seed category id %s", c.ID)
		}
		ids[c.ID] = true
	}
	for _, p := range products {
		if !ids[p.Category] {
			t.Errorf("seed product %s references missing category %s", p.ID, p.Category)
		}
	}
}
