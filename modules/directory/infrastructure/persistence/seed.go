package persistence

import (
	"fmt"
	"strings"
)

var (
	seedFirstNames = []string{
		"Alice", "Bob", "Carol", "David", "Eva", "Frank", "Grace", "Helen",
		"Ivan", "Julia", "Ken", "Lara", "Mike", "Nina", "Oscar", "Paula",
		"Quinn", "Rita", "Sam", "Tina",
	}
	seedLastNames = []string{
		"Smith", "Johnson", "Lee", "Kim", "Brown", "Williams", "Jones",
		"Garcia", "Martinez", "Davis", "Clark", "Lewis", "Walker", "Hall",
		"Allen", "Young", "King", "Wright", "Scott", "Green",
	}
	seedDepartments = []string{"Analytics", "Tech"}
	seedPositions   = []string{"Junior", "Medior", "Senior"}
)

// SeedEmployees generates the deterministic 200-record demo dataset the
// directory starts from on first run and after a reset.
func SeedEmployees() []EmployeeRow {
	rows := make([]EmployeeRow, 0, 200)
	for i := 0; i < 200; i++ {
		id := int64(i + 1)
		firstName := seedFirstNames[i%len(seedFirstNames)]
		lastName := seedLastNames[(i/len(seedFirstNames))%len(seedLastNames)]
		rows = append(rows, EmployeeRow{
			ID:               id,
			Name:             firstName + " " + lastName,
			FirstName:        firstName,
			LastName:         lastName,
			Department:       seedDepartments[i%len(seedDepartments)],
			Position:         seedPositions[i%len(seedPositions)],
			Email:            fmt.Sprintf("%s.%s%d@company.com", strings.ToLower(firstName), strings.ToLower(lastName), id),
			DateOfEmployment: fmt.Sprintf("2022-%02d-%02d", i%12+1, i%28+1),
			DateOfBirth:      fmt.Sprintf("199%d-0%d-1%d", i%10, i%9+1, i%9),
			PhoneNumber:      fmt.Sprintf("+90 532 123 %04d", 4500+i),
		})
	}
	return rows
}
