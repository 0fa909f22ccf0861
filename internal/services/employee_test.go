package services

import (
	"context"
	"errors"
	"testing"

	"github.com/staffdir/apiserver/internal/store"
	"github.com/staffdir/apiserver/types"
)

// fakeEmployeeRepo records calls so tests can assert that invalid payloads
// never reach storage.
type fakeEmployeeRepo struct {
	employees map[int]types.Employee
	nextID    int

	createCalls int
	updateCalls int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[int]types.Employee), nextID: 1}
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]types.Employee, error) {
	employees := make([]types.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		employees = append(employees, e)
	}
	return employees, nil
}

func (f *fakeEmployeeRepo) Get(ctx context.Context, id int) (types.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return types.Employee{}, store.ErrNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByName(ctx context.Context, name string) ([]types.Employee, error) {
	matches := make([]types.Employee, 0)
	for _, e := range f.employees {
		if e.Name == name {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, employee types.Employee) (types.Employee, error) {
	f.createCalls++
	employee.ID = f.nextID
	f.nextID++
	f.employees[employee.ID] = employee
	return employee, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id int, update store.EmployeeUpdate) (types.Employee, error) {
	f.updateCalls++
	e, ok := f.employees[id]
	if !ok {
		return types.Employee{}, store.ErrNotFound
	}
	if update.Role != nil {
		e.Role = *update.Role
	}
	if update.Salary != nil {
		e.Salary = *update.Salary
	}
	f.employees[id] = e
	return e, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id int) error {
	if _, ok := f.employees[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.employees, id)
	return nil
}

func validCreateRequest() CreateEmployeeRequest {
	salary := 4000.0
	pincode := 411001
	return CreateEmployeeRequest{
		Name:   "John Doe",
		Role:   "developer",
		Salary: &salary,
		Address: &AddressPayload{
			Street:  "1 Main St",
			City:    "Pune",
			State:   "MH",
			Pincode: &pincode,
		},
		Skills: &SkillsPayload{
			Languages:  []string{"go", "sql"},
			Experience: 3,
		},
	}
}

func TestCreateEmployee(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, nil)

	created, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if created.Address.Pincode != 411001 {
		t.Errorf("unexpected pincode: %d", created.Address.Pincode)
	}
	if len(created.Skills.Languages) != 2 {
		t.Errorf("unexpected skills: %+v", created.Skills)
	}
}

func TestCreateEmployeeMissingPincode(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, nil)

	req := validCreateRequest()
	req.Address.Pincode = nil

	_, err := svc.Create(context.Background(), req)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Fatalf("invalid payload reached storage: %d calls", repo.createCalls)
	}
}

func TestCreateEmployeeValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateEmployeeRequest)
	}{
		{"short name", func(r *CreateEmployeeRequest) { r.Name = "J" }},
		{"missing role", func(r *CreateEmployeeRequest) { r.Role = " " }},
		{"missing salary", func(r *CreateEmployeeRequest) { r.Salary = nil }},
		{"negative salary", func(r *CreateEmployeeRequest) { salary := -1.0; r.Salary = &salary }},
		{"missing address", func(r *CreateEmployeeRequest) { r.Address = nil }},
		{"missing street", func(r *CreateEmployeeRequest) { r.Address.Street = "" }},
		{"missing city", func(r *CreateEmployeeRequest) { r.Address.City = "" }},
		{"missing state", func(r *CreateEmployeeRequest) { r.Address.State = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeEmployeeRepo()
			svc := NewEmployeeService(repo, nil)

			req := validCreateRequest()
			tt.mutate(&req)

			_, err := svc.Create(context.Background(), req)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if repo.createCalls != 0 {
				t.Fatal("invalid payload reached storage")
			}
		})
	}
}

func TestCreateEmployeeSkillsOptional(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, nil)

	req := validCreateRequest()
	req.Skills = nil

	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("create without skills: %v", err)
	}
}

func TestUpdateEmployeeMergesFields(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, nil)

	created, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	salary := 5000.0
	updated, err := svc.Update(context.Background(), created.ID, UpdateEmployeeRequest{Salary: &salary})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Salary != 5000 {
		t.Errorf("unexpected salary: %v", updated.Salary)
	}
	if updated.Role != created.Role {
		t.Errorf("role changed: %q -> %q", created.Role, updated.Role)
	}
	if updated.Name != created.Name {
		t.Errorf("name changed: %q -> %q", created.Name, updated.Name)
	}
}

func TestUpdateEmployeeNegativeSalary(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, nil)

	salary := -10.0
	_, err := svc.Update(context.Background(), 1, UpdateEmployeeRequest{Salary: &salary})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatal("invalid payload reached storage")
	}
}

func TestDeleteEmployeeTwice(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, nil)

	created, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}
