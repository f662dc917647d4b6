package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/peoplekit/directory/pkg/constants"
	"github.com/peoplekit/directory/pkg/intl"
)

// CreateDTO carries a submitted employee form. Dates arrive as
// YYYY-MM-DD strings and are parsed in ToEntity after validation.
type CreateDTO struct {
	FirstName        string `form:"firstName" validate:"required,min=2"`
	LastName         string `form:"lastName" validate:"required,min=2"`
	DateOfEmployment string `form:"dateOfEmployment" validate:"required,datetime=2006-01-02,pastdate"`
	DateOfBirth      string `form:"dateOfBirth" validate:"required,datetime=2006-01-02,adultage"`
	Phone            string `form:"phoneNumber" validate:"required,intlphone"`
	Email            string `form:"email" validate:"required,emailshape"`
	Department       string `form:"department" validate:"required,oneof=Analytics Tech"`
	Position         string `form:"position" validate:"required,oneof=Junior Medior Senior"`
}

type UpdateDTO struct {
	FirstName        string `form:"firstName" validate:"required,min=2"`
	LastName         string `form:"lastName" validate:"required,min=2"`
	DateOfEmployment string `form:"dateOfEmployment" validate:"required,datetime=2006-01-02,pastdate"`
	DateOfBirth      string `form:"dateOfBirth" validate:"required,datetime=2006-01-02,adultage"`
	Phone            string `form:"phoneNumber" validate:"required,intlphone"`
	Email            string `form:"email" validate:"required,emailshape"`
	Department       string `form:"department" validate:"required,oneof=Analytics Tech"`
	Position         string `form:"position" validate:"required,oneof=Junior Medior Senior"`
}

func localizedErrors(ctx context.Context, errs error) map[string]string {
	errorMessages := map[string]string{}
	if errs == nil {
		return errorMessages
	}
	l, ok := intl.UseLocalizer(ctx)
	if !ok {
		panic(intl.ErrNoLocalizer)
	}
	for _, err := range errs.(validator.ValidationErrors) {
		fieldLocale := l.MustLocalize(&i18n.LocalizeConfig{
			MessageID: fmt.Sprintf("Employees.Fields.%s", err.Field()),
		})
		errorMessages[err.Field()] = l.MustLocalize(&i18n.LocalizeConfig{
			MessageID: fmt.Sprintf("ValidationErrors.%s", err.Tag()),
			TemplateData: map[string]string{
				"Field": fieldLocale,
			},
		})
	}
	return errorMessages
}

// Ok validates the DTO and returns a field name to localized message map.
// The boolean is true when the DTO is valid.
func (dto *CreateDTO) Ok(ctx context.Context) (map[string]string, bool) {
	errorMessages := localizedErrors(ctx, constants.Validate.Struct(dto))
	return errorMessages, len(errorMessages) == 0
}

func (dto *UpdateDTO) Ok(ctx context.Context) (map[string]string, bool) {
	errorMessages := localizedErrors(ctx, constants.Validate.Struct(dto))
	return errorMessages, len(errorMessages) == 0
}

// ToEntity converts a validated DTO into a new employee without an ID.
func (dto *CreateDTO) ToEntity() (Employee, error) {
	dateOfEmployment, err := time.Parse(time.DateOnly, dto.DateOfEmployment)
	if err != nil {
		return nil, fmt.Errorf("parse date of employment: %w", err)
	}
	dateOfBirth, err := time.Parse(time.DateOnly, dto.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("parse date of birth: %w", err)
	}
	department, err := NewDepartment(dto.Department)
	if err != nil {
		return nil, err
	}
	position, err := NewPosition(dto.Position)
	if err != nil {
		return nil, err
	}
	return New(
		dto.FirstName,
		dto.LastName,
		dateOfEmployment,
		dateOfBirth,
		dto.Phone,
		dto.Email,
		department,
		position,
	), nil
}

// ToEntity converts a validated DTO into a replacement record for id.
func (dto *UpdateDTO) ToEntity(id int64) (Employee, error) {
	create := CreateDTO(*dto)
	entity, err := create.ToEntity()
	if err != nil {
		return nil, err
	}
	return entity.SetID(id), nil
}
