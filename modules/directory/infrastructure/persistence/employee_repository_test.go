package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplekit/directory/modules/directory/domain/aggregates/employee"
	"github.com/peoplekit/directory/modules/directory/infrastructure/persistence"
	"github.com/peoplekit/directory/pkg/kv"
)

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newTestRepo(t *testing.T) (employee.Repository, kv.Store) {
	t.Helper()
	store := kv.NewMemoryStore()
	repo, err := persistence.NewEmployeeRepository(context.Background(), store, silentLogger())
	require.NoError(t, err)
	return repo, store
}

func newEntity(firstName, lastName string) employee.Employee {
	return employee.New(
		firstName,
		lastName,
		time.Date(2021, 5, 3, 0, 0, 0, 0, time.UTC),
		time.Date(1992, 7, 21, 0, 0, 0, 0, time.UTC),
		"+90 532 123 9999",
		"test@company.com",
		employee.DepartmentTech,
		employee.PositionJunior,
	)
}

func TestEmployeeRepository_SeedsOnFirstRun(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 200, count)

	// The seed must already be persisted.
	_, ok, err := store.Get(ctx, "employees")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEmployeeRepository_ReseedsOnCorruptPayload(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "employees", []byte("{not json")))

	repo, err := persistence.NewEmployeeRepository(ctx, store, silentLogger())
	require.NoError(t, err)
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 200, count)
}

func TestEmployeeRepository_ReloadsPersistedState(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()
	repo, err := persistence.NewEmployeeRepository(ctx, store, silentLogger())
	require.NoError(t, err)

	created, err := repo.Create(ctx, newEntity("Zeynep", "Aksoy"))
	require.NoError(t, err)

	// A fresh repository over the same store sees the written record.
	reloaded, err := persistence.NewEmployeeRepository(ctx, store, silentLogger())
	require.NoError(t, err)
	got, err := reloaded.GetByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Zeynep Aksoy", got.FullName())
}

func TestEmployeeRepository_CreatePrependsAndAssignsUniqueIDs(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, newEntity("Ayşe", "Yılmaz"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, newEntity("Mehmet", "Demir"))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID(), second.ID())
	assert.Greater(t, second.ID(), first.ID())

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 202)
	assert.Equal(t, second.ID(), all[0].ID(), "newest record comes first")
	assert.Equal(t, first.ID(), all[1].ID())
}

func TestEmployeeRepository_UpdateKeepsPosition(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	target := all[5]

	updated, err := repo.Update(ctx, target.Apply(employee.Patch{
		FirstName:        "Updated",
		LastName:         "Person",
		DateOfEmployment: target.DateOfEmployment(),
		DateOfBirth:      target.DateOfBirth(),
		Phone:            target.Phone(),
		Email:            target.Email(),
		Department:       target.Department(),
		Position:         target.Position(),
	}))
	require.NoError(t, err)
	assert.Equal(t, target.ID(), updated.ID())

	after, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Updated Person", after[5].FullName(), "record stays in place")
	assert.Len(t, after, len(all))
}

func TestEmployeeRepository_UpdateMissingReturnsNotFound(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	before, err := repo.GetAll(ctx)
	require.NoError(t, err)

	_, err = repo.Update(ctx, newEntity("Ghost", "Person").SetID(999999999))
	assert.ErrorIs(t, err, employee.ErrNotFound)

	after, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after), "failed update must not change state")
}

func TestEmployeeRepository_Delete(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, 1))
	_, err := repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, employee.ErrNotFound)

	err = repo.Delete(ctx, 1)
	assert.ErrorIs(t, err, employee.ErrNotFound)
}

func TestEmployeeRepository_ResetAndClear(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Clear(ctx))
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	restored, err := repo.ResetToDefault(ctx)
	require.NoError(t, err)
	assert.Len(t, restored, 200)
}
