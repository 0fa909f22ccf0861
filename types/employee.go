package types

import "time"

// Employee represents a staff record.
type Employee struct {
	// ID is the unique identifier of the employee.
	ID int `json:"id" db:"id"`

	// Name is the employee's full name.
	Name string `json:"name" db:"name"`

	// Role is the employee's job title.
	Role string `json:"role" db:"role"`

	// Salary is the employee's salary. Never negative.
	Salary float64 `json:"salary" db:"salary"`

	// Address is the employee's postal address. Always fully populated.
	Address Address `json:"address"`

	// Skills holds the employee's skill profile. May be empty.
	Skills Skills `json:"skills"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Address is the composite postal address stored with every employee.
type Address struct {
	Street  string `json:"street" db:"address_street"`
	City    string `json:"city" db:"address_city"`
	State   string `json:"state" db:"address_state"`
	Pincode int    `json:"pincode" db:"address_pincode"`
}

// Skills describes languages known and years of experience.
type Skills struct {
	Languages  []string `json:"languages,omitempty"`
	Experience float64  `json:"experience,omitempty"`
}
