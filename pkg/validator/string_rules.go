package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Lengths are counted in runes, not bytes.

// NotEmpty validates that a string is not empty.
func NotEmpty(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: newError(field, KeyNullOrEmpty,
			fmt.Sprintf("%s is required", field), nil),
	}
}

// NotBlank validates that a string has at least one non-whitespace character.
func NotBlank(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: newError(field, KeyNullOrWhiteSpace,
			fmt.Sprintf("%s must not be blank", field), nil),
	}
}

// Empty validates that a string is empty.
func Empty(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value == ""
		},
		Error: newError(field, KeyNotNullOrEmpty,
			fmt.Sprintf("%s must be empty", field), nil),
	}
}

// LengthBetween validates that a string is not blank and its length lies in [min, max].
func LengthBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			n := utf8.RuneCountInString(value)
			return n >= min && n <= max
		},
		Error: newError(field, KeyNullOrEmptyInvalidLength,
			fmt.Sprintf("%s is required and must be between %d and %d characters long", field, min, max),
			map[string]any{"min": min, "max": max}),
	}
}

// MinLength validates that a non-empty string has at least min characters.
// Empty strings pass; combine with NotEmpty to require a value.
func MinLength(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return value == "" || utf8.RuneCountInString(value) >= min
		},
		Error: newError(field, KeyLowerThen,
			fmt.Sprintf("%s must be at least %d characters long", field, min),
			map[string]any{"min": min}),
	}
}

// MaxLength validates that a non-empty string has at most max characters.
func MaxLength(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return value == "" || utf8.RuneCountInString(value) <= max
		},
		Error: newError(field, KeyGreaterThan,
			fmt.Sprintf("%s must be at most %d characters long", field, max),
			map[string]any{"max": max}),
	}
}

// ExactLength validates that a non-empty string has exactly length characters.
func ExactLength(field, value string, length int) Rule {
	return Rule{
		Check: func() bool {
			return value == "" || utf8.RuneCountInString(value) == length
		},
		Error: newError(field, KeyLengthNoEqual,
			fmt.Sprintf("%s must be exactly %d characters long", field, length),
			map[string]any{"length": length}),
	}
}

// Contains validates that value contains text.
func Contains(field, value, text string) Rule {
	return Rule{
		Check: func() bool {
			return strings.Contains(value, text)
		},
		Error: newError(field, KeyNotContains,
			fmt.Sprintf("%s must contain %q", field, text),
			map[string]any{"text": text}),
	}
}

// NotContains validates that value does not contain text.
func NotContains(field, value, text string) Rule {
	return Rule{
		Check: func() bool {
			return !strings.Contains(value, text)
		},
		Error: newError(field, KeyContains,
			fmt.Sprintf("%s must not contain %q", field, text),
			map[string]any{"text": text}),
	}
}

// EqualFold validates that value equals text ignoring case.
func EqualFold(field, value, text string) Rule {
	return Rule{
		Check: func() bool {
			return foldEqual(value, text)
		},
		Error: newError(field, KeyNotAreEquals,
			fmt.Sprintf("%s must be equal to %q", field, text),
			map[string]any{"value": text}),
	}
}

// NotEqualFold validates that value differs from text ignoring case.
func NotEqualFold(field, value, text string) Rule {
	return Rule{
		Check: func() bool {
			return !foldEqual(value, text)
		},
		Error: newError(field, KeyAreEquals,
			fmt.Sprintf("%s must not be equal to %q", field, text),
			map[string]any{"value": text}),
	}
}

// foldEqual compares using Unicode case folding. A Caser is stateful, so a
// new one is created per comparison.
func foldEqual(a, b string) bool {
	if a == b {
		return true
	}
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}
