//go:build integration

package lexicon

import (
	"context"
	"os"
	"testing"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests require a running PostgreSQL database.
// Set TEST_DATABASE_URL environment variable to run them.

func getTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	store, err := Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(store.Close)

	_, err = store.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS skill_terms (
		category TEXT NOT NULL,
		term TEXT NOT NULL,
		PRIMARY KEY (category, term))`)
	require.NoError(t, err)
	_, _ = store.pool.Exec(ctx, "DELETE FROM skill_terms WHERE term LIKE 'itest %'")

	return store
}

func TestIntegration_StoreSource(t *testing.T) {
	store := getTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddTerms(ctx, types.CategoryHard, "ITEST Python", "itest python", "itest go"))

	terms, err := store.Source(types.CategoryHard).Load(ctx)
	require.NoError(t, err)
	assert.Contains(t, terms, "itest python")
	assert.Contains(t, terms, "itest go")

	soft, err := store.Source(types.CategorySoft).Load(ctx)
	require.NoError(t, err)
	assert.NotContains(t, soft, "itest go")
}
