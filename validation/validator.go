package validation

import (
	"strings"

	"github.com/google/uuid"

	"github.com/kbukum/errkit/errors"
)

// Validator collects field errors programmatically.
type Validator struct {
	fields []FieldError
}

// New creates an empty Validator.
func New() *Validator {
	return &Validator{}
}

// Check records a field error when ok is false.
func (v *Validator) Check(ok bool, field, message string) *Validator {
	if !ok {
		v.fields = append(v.fields, FieldError{Field: field, Message: message})
	}
	return v
}

// Required records an error when value is empty or whitespace-only.
func (v *Validator) Required(field, value string) *Validator {
	return v.Check(strings.TrimSpace(value) != "", field, "is required")
}

// RequiredUUID records an error when value is not a valid UUID.
func (v *Validator) RequiredUUID(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		return v.Check(false, field, "is required")
	}
	_, err := uuid.Parse(value)
	return v.Check(err == nil, field, "must be a valid UUID")
}

// HasErrors reports whether any check failed.
func (v *Validator) HasErrors() bool {
	return len(v.fields) > 0
}

// Condition returns the collected failures as a validation-kind condition,
// or nil when every check passed.
func (v *Validator) Condition() *errors.Condition {
	if !v.HasErrors() {
		return nil
	}
	messages := make([]string, 0, len(v.fields))
	for _, f := range v.fields {
		messages = append(messages, f.Field+": "+f.Message)
	}
	return errors.Validation(strings.Join(messages, "; ")).
		WithDetail("fields", v.fields)
}

// Error returns the collected failures as an error, or nil.
func (v *Validator) Error() error {
	if cond := v.Condition(); cond != nil {
		return cond
	}
	return nil
}
