package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/cheerbot/pkg/domain"
)

func TestWeeklyRepository_SetGet(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, repos.Weekly.Set(ctx, &domain.WeeklySlot{
		TenantID: "guild-1", Week: "2026-W35", Day: 3, Slot: "11:40"}))

	got, err := repos.Weekly.Get(ctx, "guild-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2026-W35", got.Week)
	assert.Equal(t, 3, got.Day)
	assert.Equal(t, "11:40", got.Slot)

	// a new week replaces the previous draw
	require.NoError(t, repos.Weekly.Set(ctx, &domain.WeeklySlot{
		TenantID: "guild-1", Week: "2026-W36", Day: 5, Slot: "15:05"}))
	got, err = repos.Weekly.Get(ctx, "guild-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2026-W36", got.Week)
	assert.Equal(t, 5, got.Day)
	assert.Equal(t, "15:05", got.Slot)
}

func TestWeeklyRepository_GetMissing(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	got, err := repos.Weekly.Get(context.Background(), "no-such-tenant")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWeeklyRepository_Delete(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, repos.Weekly.Set(ctx, &domain.WeeklySlot{
		TenantID: "guild-1", Week: "2026-W35", Day: 1, Slot: "09:00"}))
	require.NoError(t, repos.Weekly.Delete(ctx, "guild-1"))

	got, err := repos.Weekly.Get(ctx, "guild-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	// deleting again is a no-op
	require.NoError(t, repos.Weekly.Delete(ctx, "guild-1"))
}
