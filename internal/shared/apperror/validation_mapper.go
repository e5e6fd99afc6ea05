package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// recipient_phone -> Recipient Phone
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns binding and validator failures into a
// VALIDATION_ERROR describing the first offending field.
func MapValidationError(err error) *AppError {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		return fieldError(errs[0])
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return New(KindValidationError, fmt.Sprintf("%s must be of type %s", formatFieldName(lastSegment(typeErr.Field)), typeErr.Type.Kind()))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return New(KindValidationError, "Request body must be valid JSON")
	}

	return ErrInvalidInput
}

func fieldError(e validator.FieldError) *AppError {
	field := formatFieldName(e.Field())

	switch e.Tag() {
	case "required":
		return RequiredField(field)
	case "email":
		return New(KindValidationError, fmt.Sprintf("%s must be a valid email address", field))
	case "min", "gte":
		return New(KindValidationError, fmt.Sprintf("%s must be at least %s", field, e.Param()))
	case "max", "lte":
		return New(KindValidationError, fmt.Sprintf("%s must be at most %s", field, e.Param()))
	case "oneof":
		return New(KindValidationError, fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Fields(e.Param()), ", ")))
	case "datetime":
		return New(KindValidationError, fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field))
	case "slug":
		return New(KindValidationError, fmt.Sprintf("%s may only contain lowercase letters, digits and hyphens", field))
	case "uuid", "uuid4":
		return New(KindValidationError, fmt.Sprintf("%s must be a valid UUID", field))
	default:
		return InvalidField(field)
	}
}

func lastSegment(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return path
}
