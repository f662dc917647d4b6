package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplekit/directory/modules/directory/infrastructure/persistence"
	"github.com/peoplekit/directory/pkg/kv"
)

func TestSettingsRepository_ViewMode(t *testing.T) {
	repo := persistence.NewSettingsRepository(kv.NewMemoryStore())
	ctx := context.Background()

	mode, err := repo.ViewMode(ctx, "list")
	require.NoError(t, err)
	assert.Equal(t, "list", mode, "fallback applies when unset")

	require.NoError(t, repo.SetViewMode(ctx, "grid"))
	mode, err = repo.ViewMode(ctx, "list")
	require.NoError(t, err)
	assert.Equal(t, "grid", mode)
}

func TestSettingsRepository_PendingResultIsOneShot(t *testing.T) {
	repo := persistence.NewSettingsRepository(kv.NewMemoryStore())
	ctx := context.Background()

	_, ok, err := repo.TakePendingResult(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.PutPendingResult(ctx, persistence.PendingResultRow{
		Type:      "success",
		MessageID: "Employees.Notices.Created",
		Name:      "Ada Lovelace",
	}))

	result, ok, err := repo.TakePendingResult(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "success", result.Type)
	assert.Equal(t, "Ada Lovelace", result.Name)

	_, ok, err = repo.TakePendingResult(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "the notice must be consumed")
}
