package employee

import (
	"strings"
	"time"
)

// Employee is the directory aggregate. Instances are immutable values;
// mutating accessors return updated copies.
type Employee interface {
	ID() int64
	FirstName() string
	LastName() string
	FullName() string
	DateOfEmployment() time.Time
	DateOfBirth() time.Time
	Phone() string
	Email() string
	Department() Department
	Position() Position

	SetID(id int64) Employee
	Apply(patch Patch) Employee
}

// Patch carries the writable fields of an employee for in-place updates.
type Patch struct {
	FirstName        string
	LastName         string
	DateOfEmployment time.Time
	DateOfBirth      time.Time
	Phone            string
	Email            string
	Department       Department
	Position         Position
}

// Option configures a new employee.
type Option func(*emp)

func WithID(id int64) Option {
	return func(e *emp) {
		e.id = id
	}
}

// New creates a new employee without an identifier. The repository assigns
// one on create.
func New(
	firstName, lastName string,
	dateOfEmployment, dateOfBirth time.Time,
	phone, email string,
	department Department,
	position Position,
	opts ...Option,
) Employee {
	e := &emp{
		firstName:        firstName,
		lastName:         lastName,
		dateOfEmployment: dateOfEmployment,
		dateOfBirth:      dateOfBirth,
		phone:            phone,
		email:            email,
		department:       department,
		position:         position,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Hydrate rebuilds an employee from persisted state, bypassing invariants.
func Hydrate(
	id int64,
	firstName, lastName string,
	dateOfEmployment, dateOfBirth time.Time,
	phone, email string,
	department Department,
	position Position,
) Employee {
	return &emp{
		id:               id,
		firstName:        firstName,
		lastName:         lastName,
		dateOfEmployment: dateOfEmployment,
		dateOfBirth:      dateOfBirth,
		phone:            phone,
		email:            email,
		department:       department,
		position:         position,
	}
}

type emp struct {
	id               int64
	firstName        string
	lastName         string
	dateOfEmployment time.Time
	dateOfBirth      time.Time
	phone            string
	email            string
	department       Department
	position         Position
}

func (e *emp) ID() int64 { return e.id }

func (e *emp) FirstName() string { return e.firstName }

func (e *emp) LastName() string { return e.lastName }

func (e *emp) FullName() string {
	return strings.TrimSpace(e.firstName + " " + e.lastName)
}

func (e *emp) DateOfEmployment() time.Time { return e.dateOfEmployment }

func (e *emp) DateOfBirth() time.Time { return e.dateOfBirth }

func (e *emp) Phone() string { return e.phone }

func (e *emp) Email() string { return e.email }

func (e *emp) Department() Department { return e.department }

func (e *emp) Position() Position { return e.position }

func (e *emp) SetID(id int64) Employee {
	result := *e
	result.id = id
	return &result
}

func (e *emp) Apply(patch Patch) Employee {
	result := *e
	result.firstName = patch.FirstName
	result.lastName = patch.LastName
	result.dateOfEmployment = patch.DateOfEmployment
	result.dateOfBirth = patch.DateOfBirth
	result.phone = patch.Phone
	result.email = patch.Email
	result.department = patch.Department
	result.position = patch.Position
	return &result
}
