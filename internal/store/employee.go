package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/staffdir/apiserver/types"
)

const employeeColumns = `id, name, role, salary, address_street, address_city, address_state, address_pincode, skills, created_at, updated_at`

// EmployeeRepository handles persistence for employees.
type EmployeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// EmployeeUpdate carries the optional fields of a partial update.
// Nil fields keep the stored value.
type EmployeeUpdate struct {
	Role   *string
	Salary *float64
}

func (r *EmployeeRepository) List(ctx context.Context) ([]types.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]types.Employee, 0)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *EmployeeRepository) Get(ctx context.Context, id int) (types.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	employee, err := scanEmployee(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Employee{}, ErrNotFound
		}
		return types.Employee{}, err
	}
	return employee, nil
}

// GetByName returns every employee whose name matches exactly. The name is
// bound as a query parameter; it is data, never SQL.
func (r *EmployeeRepository) GetByName(ctx context.Context, name string) ([]types.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees WHERE name = $1`
	rows, err := r.db.QueryContext(ctx, query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]types.Employee, 0)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, employee types.Employee) (types.Employee, error) {
	now := time.Now()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	skillsJSON, err := json.Marshal(employee.Skills)
	if err != nil {
		return types.Employee{}, err
	}

	const query = `
		INSERT INTO employees (name, role, salary, address_street, address_city, address_state, address_pincode, skills, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		employee.Name,
		employee.Role,
		employee.Salary,
		employee.Address.Street,
		employee.Address.City,
		employee.Address.State,
		employee.Address.Pincode,
		skillsJSON,
		employee.CreatedAt,
		employee.UpdatedAt,
	).Scan(&employee.ID); err != nil {
		return types.Employee{}, err
	}

	return employee, nil
}

// Update applies a partial update. Fields left nil keep their stored value,
// so the merge happens in a single statement against the current row.
func (r *EmployeeRepository) Update(ctx context.Context, id int, update EmployeeUpdate) (types.Employee, error) {
	const query = `
		UPDATE employees
		SET role = COALESCE($1, role),
			salary = COALESCE($2, salary),
			updated_at = $3
		WHERE id = $4
		RETURNING ` + employeeColumns
	employee, err := scanEmployee(r.db.QueryRowContext(
		ctx,
		query,
		update.Role,
		update.Salary,
		time.Now(),
		id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Employee{}, ErrNotFound
		}
		return types.Employee{}, err
	}
	return employee, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM employees WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (types.Employee, error) {
	var employee types.Employee
	var skillsJSON []byte
	if err := row.Scan(
		&employee.ID,
		&employee.Name,
		&employee.Role,
		&employee.Salary,
		&employee.Address.Street,
		&employee.Address.City,
		&employee.Address.State,
		&employee.Address.Pincode,
		&skillsJSON,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	); err != nil {
		return types.Employee{}, err
	}
	_ = json.Unmarshal(skillsJSON, &employee.Skills)
	return employee, nil
}
