package validator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IsGUID reports whether s parses as a UUID. Besides the canonical
// 36-character form, the braced, 32-digit and "urn:uuid:" forms are
// accepted. The hexadecimal-groups form "{0x...,{0x...}}" is rejected.
// Surrounding whitespace is ignored.
func IsGUID(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// GUID validates that a string is a GUID.
func GUID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsGUID(value)
		},
		Error: newError(field, KeyNotGUID,
			fmt.Sprintf("%s must be a valid GUID", field), nil),
	}
}

// UUIDVersion validates that a string is a UUID of the given version.
func UUIDVersion(field, value string, version int) Rule {
	return Rule{
		Check: func() bool {
			parsed, err := uuid.Parse(strings.TrimSpace(value))
			if err != nil {
				return false
			}
			return parsed.Version() == uuid.Version(version)
		},
		Error: newError(field, KeyNotUUIDVersion,
			fmt.Sprintf("%s must be a UUID version %d", field, version),
			map[string]any{"version": version}),
	}
}
