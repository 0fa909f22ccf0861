package services

import (
	"context"

	"github.com/staffdir/apiserver/internal/events"
	"github.com/staffdir/apiserver/internal/store"
	"github.com/staffdir/apiserver/types"
)

// EmployeeRepository defines persistence operations for employees.
type EmployeeRepository interface {
	List(ctx context.Context) ([]types.Employee, error)
	Get(ctx context.Context, id int) (types.Employee, error)
	GetByName(ctx context.Context, name string) ([]types.Employee, error)
	Create(ctx context.Context, employee types.Employee) (types.Employee, error)
	Update(ctx context.Context, id int, update store.EmployeeUpdate) (types.Employee, error)
	Delete(ctx context.Context, id int) error
}

// EmployeeService encapsulates employee use-cases: payload validation,
// persistence, and change-event publication.
type EmployeeService struct {
	repo      EmployeeRepository
	publisher *events.Publisher
}

// NewEmployeeService constructs an EmployeeService. publisher may be nil,
// which disables change events.
func NewEmployeeService(repo EmployeeRepository, publisher *events.Publisher) *EmployeeService {
	return &EmployeeService{repo: repo, publisher: publisher}
}

func (s *EmployeeService) List(ctx context.Context) ([]types.Employee, error) {
	return s.repo.List(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id int) (types.Employee, error) {
	return s.repo.Get(ctx, id)
}

func (s *EmployeeService) GetByName(ctx context.Context, name string) ([]types.Employee, error) {
	return s.repo.GetByName(ctx, name)
}

// Create validates the payload, then inserts. An invalid payload never
// reaches the repository.
func (s *EmployeeService) Create(ctx context.Context, req CreateEmployeeRequest) (types.Employee, error) {
	if err := req.Validate(); err != nil {
		return types.Employee{}, err
	}

	created, err := s.repo.Create(ctx, req.ToEmployee())
	if err != nil {
		return types.Employee{}, err
	}

	s.publisher.Publish(ctx, events.EmployeeEvent{
		Type:       events.EmployeeCreated,
		EmployeeID: created.ID,
		Employee:   &created,
	})
	return created, nil
}

// Update applies a partial update: fields absent from the request keep
// their stored values.
func (s *EmployeeService) Update(ctx context.Context, id int, req UpdateEmployeeRequest) (types.Employee, error) {
	if err := req.Validate(); err != nil {
		return types.Employee{}, err
	}

	updated, err := s.repo.Update(ctx, id, store.EmployeeUpdate{
		Role:   req.Role,
		Salary: req.Salary,
	})
	if err != nil {
		return types.Employee{}, err
	}

	s.publisher.Publish(ctx, events.EmployeeEvent{
		Type:       events.EmployeeUpdated,
		EmployeeID: updated.ID,
		Employee:   &updated,
	})
	return updated, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.publisher.Publish(ctx, events.EmployeeEvent{
		Type:       events.EmployeeDeleted,
		EmployeeID: id,
	})
	return nil
}
