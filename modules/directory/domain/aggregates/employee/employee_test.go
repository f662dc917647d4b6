package employee_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplekit/directory/modules/directory/domain/aggregates/employee"
)

func newTestEmployee(tb testing.TB) employee.Employee {
	tb.Helper()
	return employee.New(
		"Ada",
		"Lovelace",
		time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC),
		"+905551112233",
		"ada@example.com",
		employee.DepartmentTech,
		employee.PositionSenior,
	)
}

func TestNewEmployee(t *testing.T) {
	e := newTestEmployee(t)
	assert.Zero(t, e.ID())
	assert.Equal(t, "Ada", e.FirstName())
	assert.Equal(t, "Ada Lovelace", e.FullName())
	assert.Equal(t, employee.DepartmentTech, e.Department())
	assert.Equal(t, employee.PositionSenior, e.Position())
}

func TestEmployee_SetIDReturnsCopy(t *testing.T) {
	e := newTestEmployee(t)
	withID := e.SetID(42)
	assert.EqualValues(t, 42, withID.ID())
	assert.Zero(t, e.ID(), "original must stay unchanged")
}

func TestEmployee_Apply(t *testing.T) {
	e := newTestEmployee(t).SetID(7)
	updated := e.Apply(employee.Patch{
		FirstName:        "Grace",
		LastName:         "Hopper",
		DateOfEmployment: e.DateOfEmployment(),
		DateOfBirth:      e.DateOfBirth(),
		Phone:            e.Phone(),
		Email:            "grace@example.com",
		Department:       employee.DepartmentAnalytics,
		Position:         employee.PositionMedior,
	})
	assert.EqualValues(t, 7, updated.ID(), "identifier survives the patch")
	assert.Equal(t, "Grace Hopper", updated.FullName())
	assert.Equal(t, employee.DepartmentAnalytics, updated.Department())
	assert.Equal(t, "Ada", e.FirstName(), "original must stay unchanged")
}

func TestDepartmentValidation(t *testing.T) {
	for _, d := range employee.Departments() {
		assert.True(t, d.IsValid())
	}
	_, err := employee.NewDepartment("Sales")
	require.Error(t, err)
}

func TestPositionValidation(t *testing.T) {
	for _, p := range employee.Positions() {
		assert.True(t, p.IsValid())
	}
	_, err := employee.NewPosition("Principal")
	require.Error(t, err)
}
