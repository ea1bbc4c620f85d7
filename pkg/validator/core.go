package validator

import (
	"errors"
	"slices"
	"strings"
)

// Numeric is the constraint shared by every generic numeric rule.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError describes a failed rule. Message is the English default
// text; TranslationKey and TranslationValues let callers render a localized
// variant instead.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors is the error returned by Apply. It matches
// ErrValidationFailed with errors.Is.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}
	parts := make([]string, len(ve))
	for i, err := range ve {
		parts[i] = err.Field + ": " + err.Message
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Unwrap() error {
	return ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Has reports whether field failed at least one rule.
func (ve ValidationErrors) Has(field string) bool {
	return slices.ContainsFunc(ve, func(e ValidationError) bool { return e.Field == field })
}

// Keys returns the translation keys of the collected errors in order.
func (ve ValidationErrors) Keys() []string {
	keys := make([]string, len(ve))
	for i, err := range ve {
		keys[i] = err.TranslationKey
	}
	return keys
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule is a single check together with the error reported when it fails.
// Check returns true when the value is acceptable.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Passes evaluates the rule. A rule without a Check always passes.
func (r Rule) Passes() bool {
	return r.Check == nil || r.Check()
}

// Apply evaluates every rule and returns the failures as ValidationErrors,
// or nil when all pass. Rules are never short-circuited.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Passes() {
			errs.Add(rule.Error)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors returns the ValidationErrors carried by err, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// IsValidationError reports whether err carries ValidationErrors.
func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}

// newError builds the ValidationError for a rule. The field name is always
// part of the translation values.
func newError(field, key, message string, values map[string]any) ValidationError {
	if values == nil {
		values = make(map[string]any, 1)
	}
	values["field"] = field
	return ValidationError{
		Field:             field,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: values,
	}
}
