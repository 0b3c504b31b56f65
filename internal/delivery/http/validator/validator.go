// Package validator plugs go-playground/validator into echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validator: v}
}

// Validate reports failed rules as a VALIDATION_FAILED bad request naming the
// offending JSON fields.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}

	return domainerrors.NewBaseError(
		domainerrors.KindBadRequest,
		domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message()+": "+strings.Join(problems, "; "),
	)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
