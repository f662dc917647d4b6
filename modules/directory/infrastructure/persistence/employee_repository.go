package persistence

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"

	"github.com/peoplekit/directory/modules/directory/domain/aggregates/employee"
	"github.com/peoplekit/directory/pkg/kv"
)

const employeesKey = "employees"

// NewEmployeeRepository loads the directory from store, seeding the
// default dataset when the key is absent or the stored payload is
// unreadable.
func NewEmployeeRepository(ctx context.Context, store kv.Store, log *logrus.Logger) (employee.Repository, error) {
	repo := &kvEmployeeRepository{store: store, log: log}
	if err := repo.load(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

type kvEmployeeRepository struct {
	store kv.Store
	log   *logrus.Logger

	mu     sync.RWMutex
	rows   []EmployeeRow
	lastID int64
}

func (r *kvEmployeeRepository) load(ctx context.Context) error {
	payload, ok, err := r.store.Get(ctx, employeesKey)
	if err != nil {
		return errors.Wrap(err, "load employees")
	}
	if !ok {
		return r.seed(ctx)
	}
	var rows []EmployeeRow
	if err := json.Unmarshal(payload, &rows); err != nil {
		// A corrupt payload falls back to the seed dataset instead of
		// wedging the whole directory.
		r.log.WithError(err).Warn("stored employee payload is corrupt, reseeding")
		return r.seed(ctx)
	}
	r.rows = rows
	r.lastID = maxID(rows)
	return nil
}

func (r *kvEmployeeRepository) seed(ctx context.Context) error {
	r.rows = SeedEmployees()
	r.lastID = maxID(r.rows)
	return r.persist(ctx)
}

func maxID(rows []EmployeeRow) int64 {
	var m int64
	for _, row := range rows {
		if row.ID > m {
			m = row.ID
		}
	}
	return m
}

// persist snapshots the full dataset. Callers hold the write lock.
func (r *kvEmployeeRepository) persist(ctx context.Context) error {
	payload, err := json.Marshal(r.rows)
	if err != nil {
		return errors.Wrap(err, "marshal employees")
	}
	if err := r.store.Set(ctx, employeesKey, payload); err != nil {
		return errors.Wrap(err, "persist employees")
	}
	return nil
}

// nextID hands out millisecond timestamps, bumped past the last issued
// identifier so two creates in the same millisecond stay distinct.
func (r *kvEmployeeRepository) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

func (r *kvEmployeeRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.rows)), nil
}

func (r *kvEmployeeRepository) GetAll(_ context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entities := make([]employee.Employee, 0, len(r.rows))
	for _, row := range r.rows {
		entity, err := toDomainEmployee(row)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (r *kvEmployeeRepository) GetByID(_ context.Context, id int64) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.ID == id {
			return toDomainEmployee(row)
		}
	}
	return nil, employee.ErrNotFound
}

func (r *kvEmployeeRepository) Create(ctx context.Context, data employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	created := data.SetID(r.nextID())
	// Newest first.
	r.rows = append([]EmployeeRow{toRowEmployee(created)}, r.rows...)
	if err := r.persist(ctx); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *kvEmployeeRepository) Update(ctx context.Context, data employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if row.ID == data.ID() {
			r.rows[i] = toRowEmployee(data)
			if err := r.persist(ctx); err != nil {
				return nil, err
			}
			return data, nil
		}
	}
	return nil, employee.ErrNotFound
}

func (r *kvEmployeeRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if row.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return r.persist(ctx)
		}
	}
	return employee.ErrNotFound
}

func (r *kvEmployeeRepository) ResetToDefault(ctx context.Context) ([]employee.Employee, error) {
	r.mu.Lock()
	if err := r.seed(ctx); err != nil {
		r.mu.Unlock()
		return nil, err
	}
	r.mu.Unlock()
	return r.GetAll(ctx)
}

func (r *kvEmployeeRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = []EmployeeRow{}
	return r.persist(ctx)
}
