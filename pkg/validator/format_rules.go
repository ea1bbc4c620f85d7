package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// wordClass is a Unicode-aware \w: letters, nonspacing marks, decimal
// digits and connector punctuation. RE2's \w is ASCII only.
const wordClass = `[\p{L}\p{Mn}\p{Nd}\p{Pc}]`

// The patterns are intentionally simple shape checks, not RFC validators.
var (
	emailRegex = regexp.MustCompile(strings.ReplaceAll(
		`^\w+([-+.']\w+)*@\w+([-.]\w+)*\.\w+([-.]\w+)*$`, `\w`, wordClass))
	urlRegex = regexp.MustCompile(`^(http:\/\/www\.|https:\/\/www\.|http:\/\/|https:\/\/)[a-z0-9]+([\-\.]{1}[a-z0-9]+)*\.[a-z]{2,5}(:[0-9]{1,5})?(\/.*)?$`)
)

// IsEmail reports whether s has the shape of an e-mail address. Word
// characters include accented letters, so "josé@exemplo.com" is accepted.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsURL reports whether s is an absolute http(s) URL with a lowercase host.
func IsURL(s string) bool {
	return urlRegex.MatchString(s)
}

// Email validates that a string has the shape of an e-mail address.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsEmail(value)
		},
		Error: newError(field, KeyNotEmail,
			fmt.Sprintf("%s must be a valid email address", field), nil),
	}
}

// URL validates that a string is an absolute http(s) URL.
func URL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsURL(value)
		},
		Error: newError(field, KeyNotURL,
			fmt.Sprintf("%s must be a valid URL", field), nil),
	}
}
