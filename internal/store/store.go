package store

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Collection keys persisted by the catalog.
const (
	CollectionProducts   = "products"
	CollectionCategories = "categories"
	CollectionUser       = "user"
)

var (
	ErrNotFound = errors.New("collection not found")
)

// Store is the persistence surface for the catalog: JSON-shaped values
// keyed by collection name. Save is a synchronous total replacement of
// the collection's value; there are no partial updates.
type Store interface {
	Load(ctx context.Context, collection string) ([]byte, error)
	Save(ctx context.Context, collection string, data []byte) error
	Delete(ctx context.Context, collection string) error
	Close() error
}

// Driver identifies a Store implementation.
type Driver string

const (
	DriverMemory Driver = "memory"
	DriverFile   Driver = "file"
	DriverSQLite Driver = "sqlite"
)

// Config selects and parameterizes a Store implementation.
type Config struct {
	Driver     Driver
	FileRoot   string // directory root when Driver is "file"
	SQLitePath string // database path when Driver is "sqlite"
}

// Open constructs the Store selected by cfg.Driver.
func Open(cfg Config, logger *zap.Logger) (Store, error) {
	switch cfg.Driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFile:
		return NewFile(cfg.FileRoot)
	case DriverSQLite:
		return NewSQLite(cfg.SQLitePath, logger)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
