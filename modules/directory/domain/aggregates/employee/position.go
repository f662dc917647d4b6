package employee

import "fmt"

// Position is the seniority level of an employee.
type Position string

const (
	PositionJunior Position = "Junior"
	PositionMedior Position = "Medior"
	PositionSenior Position = "Senior"
)

// Positions lists all valid positions in ascending seniority.
func Positions() []Position {
	return []Position{PositionJunior, PositionMedior, PositionSenior}
}

func (p Position) IsValid() bool {
	switch p {
	case PositionJunior, PositionMedior, PositionSenior:
		return true
	}
	return false
}

func (p Position) String() string { return string(p) }

func NewPosition(value string) (Position, error) {
	p := Position(value)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid position: %q", value)
	}
	return p, nil
}
