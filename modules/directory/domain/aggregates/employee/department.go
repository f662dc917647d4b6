package employee

import "fmt"

// Department is the closed set of departments an employee may belong to.
type Department string

const (
	DepartmentAnalytics Department = "Analytics"
	DepartmentTech      Department = "Tech"
)

// Departments lists all valid departments in display order.
func Departments() []Department {
	return []Department{DepartmentAnalytics, DepartmentTech}
}

func (d Department) IsValid() bool {
	switch d {
	case DepartmentAnalytics, DepartmentTech:
		return true
	}
	return false
}

func (d Department) String() string { return string(d) }

func NewDepartment(value string) (Department, error) {
	d := Department(value)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid department: %q", value)
	}
	return d, nil
}
