package persistence

import (
	"fmt"
	"time"

	"github.com/peoplekit/directory/modules/directory/domain/aggregates/employee"
)

func toRowEmployee(entity employee.Employee) EmployeeRow {
	return EmployeeRow{
		ID:               entity.ID(),
		Name:             entity.FullName(),
		FirstName:        entity.FirstName(),
		LastName:         entity.LastName(),
		Department:       entity.Department().String(),
		Email:            entity.Email(),
		DateOfEmployment: entity.DateOfEmployment().Format(time.DateOnly),
		DateOfBirth:      entity.DateOfBirth().Format(time.DateOnly),
		PhoneNumber:      entity.Phone(),
		Position:         entity.Position().String(),
	}
}

func toDomainEmployee(row EmployeeRow) (employee.Employee, error) {
	dateOfEmployment, err := time.Parse(time.DateOnly, row.DateOfEmployment)
	if err != nil {
		return nil, fmt.Errorf("employee %d: parse date of employment: %w", row.ID, err)
	}
	dateOfBirth, err := time.Parse(time.DateOnly, row.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("employee %d: parse date of birth: %w", row.ID, err)
	}
	department, err := employee.NewDepartment(row.Department)
	if err != nil {
		return nil, fmt.Errorf("employee %d: %w", row.ID, err)
	}
	position, err := employee.NewPosition(row.Position)
	if err != nil {
		return nil, fmt.Errorf("employee %d: %w", row.ID, err)
	}
	return employee.Hydrate(
		row.ID,
		row.FirstName,
		row.LastName,
		dateOfEmployment,
		dateOfBirth,
		row.PhoneNumber,
		row.Email,
		department,
		position,
	), nil
}
