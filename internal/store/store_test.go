package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

// roundTrip exercises the Store contract shared by every driver.
func roundTrip(t *testing.T, st Store) {
	t.Helper()
	ctx := context.Background()

	_, err := st.Load(ctx, CollectionProducts)
	assert.ErrorIs(t, err, ErrNotFound, "fresh store has no collections")

	payload := []byte(`[{"id":"1","name":"Midnight Bloom"}]`)
	require.NoError(t, st.Save(ctx, CollectionProducts, payload))

	loaded, err := st.Load(ctx, CollectionProducts)
	require.NoError(t, err)
	assert.Equal(t, payload, loaded)

	// Save is a total replacement
	replacement := []byte(`[]`)
	require.NoError(t, st.Save(ctx, CollectionProducts, replacement))
	loaded, err = st.Load(ctx, CollectionProducts)
	require.NoError(t, err)
	assert.Equal(t, replacement, loaded)

	// Collections are independent
	_, err = st.Load(ctx, CollectionCategories)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.Delete(ctx, CollectionProducts))
	_, err = st.Load(ctx, CollectionProducts)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent collection is not an error
	assert.NoError(t, st.Delete(ctx, CollectionUser))
}

func TestMemoryRoundTrip(t *testing.T) {
	st := NewMemory()
	defer st.Close()
	roundTrip(t, st)
}

func TestMemoryCopiesValues(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	payload := []byte(`[1,2,3]`)
	require.NoError(t, st.Save(ctx, CollectionProducts, payload))
	payload[0] = 'X'

	loaded, err := st.Load(ctx, CollectionProducts)
	require.NoError(t, err)
	assert.Equal(t, byte('['), loaded[0], "stored value must not alias the caller's slice")
}

func TestFileRoundTrip(t *testing.T) {
	st, err := NewFile(t.TempDir())
	require.NoError(t, err)
	defer st.Close()
	roundTrip(t, st)
}

func TestFileSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	st, err := NewFile(root)
	require.NoError(t, err)
	payload := []byte(`[{"id":"perfume","name":"Parfüm"}]`)
	require.NoError(t, st.Save(ctx, CollectionCategories, payload))
	require.NoError(t, st.Close())

	reopened, err := NewFile(root)
	require.NoError(t, err)
	loaded, err := reopened.Load(ctx, CollectionCategories)
	require.NoError(t, err)
	assert.Equal(t, payload, loaded)
}

func TestSQLiteRoundTrip(t *testing.T) {
	st, err := NewSQLite(filepath.Join(t.TempDir(), "catalog.db"), zap.NewNop())
	require.NoError(t, err)
	defer st.Close()
	roundTrip(t, st)
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	st, err := NewSQLite(path, zap.NewNop())
	require.NoError(t, err)
	payload := []byte(`[{"id":"1"}]`)
	require.NoError(t, st.Save(ctx, CollectionProducts, payload))
	require.NoError(t, st.Close())

	reopened, err := NewSQLite(path, zap.NewNop())
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Load(ctx, CollectionProducts)
	require.NoError(t, err)
	assert.Equal(t, payload, loaded)
}

func TestOpenSelectsDriver(t *testing.T) {
	logger := zap.NewNop()

	st, err := Open(Config{Driver: DriverMemory}, logger)
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, st)

	st, err = Open(Config{Driver: DriverFile, FileRoot: t.TempDir()}, logger)
	require.NoError(t, err)
	assert.IsType(t, &File{}, st)

	st, err = Open(Config{Driver: DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "c.db")}, logger)
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, st)
	st.Close()

	_, err = Open(Config{Driver: "cassandra"}, logger)
	assert.Error(t, err)
}
