package types

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationError reports a structurally invalid argument. It is raised
// before any network call so callers can separate local misuse from
// server-side rejection.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return "redcap: " + e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ValidateProjectURL checks the API endpoint shape. The server exposes a
// single endpoint that always ends in /api/.
func ValidateProjectURL(url string) error {
	err := validation.Validate(url,
		validation.Required.Error("url is required"),
		validation.By(func(v any) error {
			if !strings.HasSuffix(v.(string), "/api/") {
				return fmt.Errorf("url %q must end with /api/", v)
			}
			return nil
		}),
	)
	if err != nil {
		return &ValidationError{Msg: err.Error()}
	}
	return nil
}

// ValidateToken checks the project token shape (32-character API token).
func ValidateToken(token string) error {
	err := validation.Validate(token,
		validation.Required.Error("token is required"),
		validation.Length(32, 32).Error("token must be 32 characters long"),
	)
	if err != nil {
		return &ValidationError{Msg: err.Error()}
	}
	return nil
}

// ValidateRawFormat restricts the raw-export formats to text wire formats.
func ValidateRawFormat(format string) error {
	err := validation.Validate(format,
		validation.Required.Error("format is required"),
		validation.In("csv", "xml").Error("format must be csv or xml"),
	)
	if err != nil {
		return &ValidationError{Msg: err.Error()}
	}
	return nil
}

// RequireArg checks that a mandatory string argument is present.
func RequireArg(name, value string) error {
	if value == "" {
		return &ValidationError{Msg: name + " is required"}
	}
	return nil
}
