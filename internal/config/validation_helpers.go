package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/shayari/pkg/errors"
)

// convertValidationError normalizes validator errors into application validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		return apperrors.NewValidationError(field, describe(ve), err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns Config.Animation.TypewriterSpeed into animation.typewriter_speed.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = snakeCase(part)
	}
	return strings.Join(parts, ".")
}

func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return fmt.Sprintf("%q is not a valid URL", fe.Value())
	case "poetry_theme":
		return fmt.Sprintf("%q is not a theme (mystical, sunset, moonlight)", fe.Value())
	case "oneof":
		return fmt.Sprintf("%v must be one of %s", fe.Value(), fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("%v must be %s %s", fe.Value(), comparison(fe.Tag()), fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

func comparison(tag string) string {
	if tag == "gt" {
		return "greater than"
	}
	return "at least"
}
