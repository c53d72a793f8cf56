package domain

import (
	"regexp"
	"strings"
)

// Product represents a fragrance dupe in the catalog
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	DupeOf      string   `json:"dupeOf,omitempty"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	Notes       []string `json:"notes,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
}

// Category represents a product category. The ID doubles as the foreign
// key stored on products; Name is only a display label.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Session represents the authenticated admin identity
type Session struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

var categoryIDStrip = regexp.MustCompile(`[^a-z0-9-]`)
var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeCategoryID turns free-form admin input into a category id:
// lowercased, whitespace runs collapsed to single hyphens, everything
// outside [a-z0-9-] stripped.
func NormalizeCategoryID(raw string) string {
	id := strings.ToLower(raw)
	id = whitespaceRun.ReplaceAllString(id, "-")
	return categoryIDStrip.ReplaceAllString(id, "")
}
