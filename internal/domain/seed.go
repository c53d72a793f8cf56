package domain

// DefaultCategories returns the categories seeded into an empty store.
// The "other" entry is the catch-all and is referenced by the UI when a
// product points at a category that no longer resolves.
func DefaultCategories() []Category {
	return []Category{
		{ID: "perfume", Name: "Parfüm"},
		{ID: "deodorant", Name: "Deo"},
		{ID: "lattafa", Name: "Lattafa"},
		{ID: "soap", Name: "Seife"},
		{ID: "other", Name: "Andere"},
	}
}

// DefaultProducts returns the sample products seeded into an empty store.
func DefaultProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Midnight Bloom",
			Brand:       "Essence Dupes",
			Category:    "perfume",
			Description: "Ein luxuriöses Duplikat des beliebten Black Opium",
			DupeOf:      "YSL Black Opium",
			Price:       39.99,
			ImageURL:    "https://images.unsplash.com/photo-1541643600914-78b084683601?q=80&w=1000",
			Notes:       []string{"Kaffee", "Vanille", "Jasmin"},
			Featured:    true,
		},
		{
			ID:          "2",
			Name:        "Desert Rose",
			Brand:       "Lattafa",
			Category:    "lattafa",
			Description: "Ein exquisites orientalisches Parfüm mit Rosenduft",
			Price:       45.99,
			ImageURL:    "https://images.unsplash.com/photo-1583345237503-d141309f766e?q=80&w=1000",
			Notes:       []string{"Rose", "Oud", "Safran"},
			Featured:    true,
		},
		{
			ID:          "3",
			Name:        "Fresh Ocean",
			Brand:       "Pure Dupes",
			Category:    "deodorant",
			Description: "Ein frisches Deodorant inspiriert von Acqua di Gio",
			DupeOf:      "Acqua di Gio",
			Price:       12.99,
			ImageURL:    "https://images.unsplash.com/photo-1620916297397-a4a5402a3c79?q=80&w=1000",
			Notes:       []string{"Bergamotte", "Meeresakkord", "Patschuli"},
		},
		{
			ID:          "4",
			Name:        "Lavender Dreams",
			Brand:       "Essence Dupes",
			Category:    "soap",
			Description: "Luxuriöse Handseife mit beruhigendem Lavendelduft",
			Price:       8.99,
			ImageURL:    "https://images.unsplash.com/photo-1600857544200-b2f666a9a2ec?q=80&w=1000",
			Notes:       []string{"Lavendel", "Kamille", "Bergamotte"},
		},
	}
}
