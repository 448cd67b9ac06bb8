package config

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/shayari/internal/poetry"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		_ = v.RegisterValidation("poetry_theme", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if value == "" {
				return true // falls back to the default theme
			}
			_, ok := poetry.ParseTheme(value)
			return ok
		})

		validateInst = v
	})

	return validateInst
}
