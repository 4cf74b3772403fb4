package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/Tahmid447/Tahmid-English-Club/internal/kv"
)

// NewTestKV creates an in-memory sqlite-backed kv store with migrations
// applied, closed automatically when the test ends.
func NewTestKV(t *testing.T) kv.Store {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	store, err := kv.NewSQLite(db)
	require.NoError(t, err)

	t.Cleanup(func() { _ = store.Close() })
	return store
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}
