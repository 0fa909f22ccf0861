package services

import (
	"strings"

	"github.com/staffdir/apiserver/types"
)

const minNameLength = 2

// ValidationError reports the payload fields that failed validation.
// It is always produced before any storage access.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid payload: " + strings.Join(e.Fields, ", ")
}

// CreateEmployeeRequest is the payload for creating an employee. Pointer
// fields distinguish "absent" from a zero value so required-field checks
// work on JSON input.
type CreateEmployeeRequest struct {
	Name    string          `json:"name"`
	Role    string          `json:"role"`
	Salary  *float64        `json:"salary"`
	Address *AddressPayload `json:"address"`
	Skills  *SkillsPayload  `json:"skills"`
}

type AddressPayload struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode *int   `json:"pincode"`
}

type SkillsPayload struct {
	Languages  []string `json:"languages"`
	Experience float64  `json:"experience"`
}

// Validate checks required fields, minimum lengths, and numeric bounds.
func (r CreateEmployeeRequest) Validate() error {
	var fields []string

	if len(strings.TrimSpace(r.Name)) < minNameLength {
		fields = append(fields, "name must be at least 2 characters")
	}
	if strings.TrimSpace(r.Role) == "" {
		fields = append(fields, "role is required")
	}
	if r.Salary == nil {
		fields = append(fields, "salary is required")
	} else if *r.Salary < 0 {
		fields = append(fields, "salary must not be negative")
	}

	if r.Address == nil {
		fields = append(fields, "address is required")
	} else {
		if strings.TrimSpace(r.Address.Street) == "" {
			fields = append(fields, "address.street is required")
		}
		if strings.TrimSpace(r.Address.City) == "" {
			fields = append(fields, "address.city is required")
		}
		if strings.TrimSpace(r.Address.State) == "" {
			fields = append(fields, "address.state is required")
		}
		if r.Address.Pincode == nil {
			fields = append(fields, "address.pincode is required")
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ToEmployee converts a validated request into the entity to persist.
func (r CreateEmployeeRequest) ToEmployee() types.Employee {
	employee := types.Employee{
		Name:   strings.TrimSpace(r.Name),
		Role:   r.Role,
		Salary: *r.Salary,
		Address: types.Address{
			Street:  r.Address.Street,
			City:    r.Address.City,
			State:   r.Address.State,
			Pincode: *r.Address.Pincode,
		},
	}
	if r.Skills != nil {
		employee.Skills = types.Skills{
			Languages:  r.Skills.Languages,
			Experience: r.Skills.Experience,
		}
	}
	return employee
}

// UpdateEmployeeRequest is the payload for a partial update. Absent fields
// keep their stored values.
type UpdateEmployeeRequest struct {
	Role   *string  `json:"role"`
	Salary *float64 `json:"salary"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var fields []string

	if r.Role != nil && strings.TrimSpace(*r.Role) == "" {
		fields = append(fields, "role must not be empty")
	}
	if r.Salary != nil && *r.Salary < 0 {
		fields = append(fields, "salary must not be negative")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
