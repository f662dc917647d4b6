package services

import (
	"context"
	"sync"

	"github.com/peoplekit/directory/modules/directory/domain/aggregates/employee"
	"github.com/peoplekit/directory/pkg/eventbus"
)

// Subscriber receives the full employee snapshot after every mutation.
type Subscriber func(employees []employee.Employee)

// EmployeeService is the single entry point for directory reads and
// writes. Every successful mutation is persisted by the repository,
// published on the event bus and then broadcast to snapshot subscribers,
// in that order.
type EmployeeService struct {
	repo      employee.Repository
	publisher eventbus.EventBus

	mu          sync.Mutex
	subscribers map[int64]Subscriber
	nextSubID   int64
}

func NewEmployeeService(repo employee.Repository, publisher eventbus.EventBus) *EmployeeService {
	return &EmployeeService{
		repo:        repo,
		publisher:   publisher,
		subscribers: map[int64]Subscriber{},
	}
}

func (s *EmployeeService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *EmployeeService) GetAll(ctx context.Context) ([]employee.Employee, error) {
	return s.repo.GetAll(ctx)
}

func (s *EmployeeService) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EmployeeService) Create(ctx context.Context, data employee.Employee) (employee.Employee, error) {
	created, err := s.repo.Create(ctx, data)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(employee.NewCreatedEvent(created))
	s.notify(ctx)
	return created, nil
}

func (s *EmployeeService) Update(ctx context.Context, data employee.Employee) (employee.Employee, error) {
	updated, err := s.repo.Update(ctx, data)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(employee.NewUpdatedEvent(updated))
	s.notify(ctx)
	return updated, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) (employee.Employee, error) {
	deleted, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.publisher.Publish(employee.NewDeletedEvent(deleted))
	s.notify(ctx)
	return deleted, nil
}

func (s *EmployeeService) ResetToDefault(ctx context.Context) ([]employee.Employee, error) {
	restored, err := s.repo.ResetToDefault(ctx)
	if err != nil {
		return nil, err
	}
	s.notify(ctx)
	return restored, nil
}

func (s *EmployeeService) ClearAll(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.notify(ctx)
	return nil
}

// Subscribe registers cb for post-mutation snapshots and returns its
// unsubscribe function. Unsubscribing twice is harmless.
func (s *EmployeeService) Subscribe(cb Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = cb
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// notify snapshots the subscriber set before calling out, so a callback
// that unsubscribes itself or a peer mid-round cannot skip anyone in the
// current round.
func (s *EmployeeService) notify(ctx context.Context) {
	employees, err := s.repo.GetAll(ctx)
	if err != nil {
		return
	}
	s.mu.Lock()
	current := make([]Subscriber, 0, len(s.subscribers))
	for _, cb := range s.subscribers {
		current = append(current, cb)
	}
	s.mu.Unlock()
	for _, cb := range current {
		cb(employees)
	}
}
