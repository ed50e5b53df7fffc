package repository

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (repos *Repositories, cleanup func()) {
	t.Helper()

	// create temp file for test database
	tmpFile, err := os.CreateTemp("", "cheerbot-test-*.db")
	require.NoError(t, err)
	tmpFile.Close()

	repos, err = New(context.Background(), Config{DSN: "file:" + tmpFile.Name() + "?mode=rwc"})
	require.NoError(t, err)

	cleanup = func() {
		repos.Close()
		os.Remove(tmpFile.Name())
	}
	return repos, cleanup
}

func TestNew_SchemaAndPing(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repos.Ping(context.Background()))

	// all tables exist
	for _, table := range []string{"cooldowns", "tenants", "sent_messages", "weekly_slots"} {
		var count int
		err := repos.DB.Get(&count, `SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?`, table)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s", table)
	}
}

func TestNew_BadDSN(t *testing.T) {
	_, err := New(context.Background(), Config{DSN: "file:/nonexistent-dir-xyz/no/such/path.db?mode=rwc"})
	assert.Error(t, err)
}
