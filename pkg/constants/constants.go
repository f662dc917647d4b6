package constants

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type ContextKey string

const (
	LoggerKey    ContextKey = "logger"
	RequestStart ContextKey = "requestStart"
)

var Validate = validator.New()

// Phone shape after stripping spaces, hyphens and parentheses: optional
// leading +, first digit 1-9, up to 15 more digits.
var phonePattern = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)

// Email shape: local@domain.tld, no whitespace, at least one dot after the @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var phoneStripper = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

func init() {
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(Validate.RegisterValidation("pastdate", validatePastDate))
	must(Validate.RegisterValidation("adultage", validateAdultAge))
	must(Validate.RegisterValidation("intlphone", validateIntlPhone))
	must(Validate.RegisterValidation("emailshape", validateEmailShape))
}

// validatePastDate rejects calendar dates strictly after today.
func validatePastDate(fl validator.FieldLevel) bool {
	parsed, err := time.Parse(time.DateOnly, fl.Field().String())
	if err != nil {
		return false
	}
	return !parsed.After(time.Now())
}

// validateAdultAge checks the year-only age is within [18, 100]. The
// month/day are deliberately not taken into account; the off-by-one-year
// edge case around birthdays is long-standing observed behavior.
func validateAdultAge(fl validator.FieldLevel) bool {
	parsed, err := time.Parse(time.DateOnly, fl.Field().String())
	if err != nil {
		return false
	}
	age := time.Now().Year() - parsed.Year()
	return age >= 18 && age <= 100
}

func validateIntlPhone(fl validator.FieldLevel) bool {
	stripped := phoneStripper.Replace(fl.Field().String())
	return phonePattern.MatchString(stripped)
}

func validateEmailShape(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}
