package poetry

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/shayari/pkg/errors"
)

// User-facing validation messages shown on the journey screen.
const (
	MsgMoodMissing  = "Please describe your mood first"
	MsgStyleMissing = "Please select a poetry style"

	// MsgGenerationFailed is shown when a failure carries no usable message.
	MsgGenerationFailed = "An unknown error occurred while generating poetry."
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Validator returns the shared validator with the poetry_theme and
// poetry_style tags registered.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		_ = v.RegisterValidation("poetry_theme", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == "" || IsTheme(value)
		})

		_ = v.RegisterValidation("poetry_style", func(fl validator.FieldLevel) bool {
			return IsStyle(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the request in field order and reports only the first
// failure. The returned error is a *errors.ValidationError whose Message is
// the text to show the user.
func (r Request) Validate() error {
	err := Validator().Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError("", err.Error(), err)
	}

	first := fieldErrs[0]
	switch first.Field() {
	case "Mood":
		return apperrors.NewValidationError("mood", MsgMoodMissing, first)
	default:
		return apperrors.NewValidationError("style", MsgStyleMissing, first)
	}
}
