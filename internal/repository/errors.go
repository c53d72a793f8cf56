package repository

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrDuplicateCategoryID = errors.New("category with this id already exists")
)

// ValidationError reports the required draft fields that are missing or
// invalid. A rejected draft never changes repository state.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

// CategoryInUseError blocks deletion of a category that products still
// reference; Count is the exact number of referencing products.
type CategoryInUseError struct {
	CategoryID string
	Count      int
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("category %s is still referenced by %d product(s)", e.CategoryID, e.Count)
}
