package apperror

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldErrors maps a request field to every rule message it violated, in rule order.
type FieldErrors map[string][]string

// ValidationError is a user-correctable request failure. It is answered
// with 400 and never reaches the service layer.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(e.Fields[name], ", ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends msg to the messages of field.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = FieldErrors{}
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// MalformedBody reports a request body that could not be decoded.
func MalformedBody() *ValidationError {
	verr := &ValidationError{}
	verr.Add("body", "request body must be a valid JSON object")
	return verr
}

// FieldRules binds a field name to its value and rules.
type FieldRules struct {
	name  string
	value interface{}
	rules []validation.Rule
}

// Field declares the rules for one request field. name is the JSON name
// used as the key in the error response.
func Field(name string, value interface{}, rules ...validation.Rule) FieldRules {
	return FieldRules{name: name, value: value, rules: rules}
}

// Validate evaluates every rule of every field, unlike ozzo's ValidateStruct
// which stops at the first failing rule per field. It returns nil,
// a *ValidationError, or an internal error raised by a rule.
func Validate(fields ...FieldRules) error {
	verr := &ValidationError{}

	for _, f := range fields {
		for _, rule := range f.rules {
			err := validation.Validate(f.value, rule)
			if err == nil {
				continue
			}

			var internal validation.InternalError
			if errors.As(err, &internal) {
				return fmt.Errorf("validate %s: %w", f.name, internal.InternalError())
			}
			verr.Add(f.name, err.Error())
		}
	}

	if len(verr.Fields) == 0 {
		return nil
	}
	return verr
}
