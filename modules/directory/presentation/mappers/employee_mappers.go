package mappers

import (
	"time"

	"github.com/peoplekit/directory/modules/directory/domain/aggregates/employee"
	"github.com/peoplekit/directory/modules/directory/presentation/viewmodels"
)

func EmployeeToViewModel(entity employee.Employee) viewmodels.Employee {
	return viewmodels.Employee{
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

func EmployeesToViewModels(entities []employee.Employee) []viewmodels.Employee {
	out := make([]viewmodels.Employee, 0, len(entities))
	for _, entity := range entities {
		out = append(out, EmployeeToViewModel(entity))
	}
	return out
}
