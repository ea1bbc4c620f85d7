package notify

import (
	"time"

	"github.com/dmitrymomot/notifykit/pkg/validator"
)

// Rule is one check bound to a member of T. Rules are built by the
// constructors in this package and run with Evaluator.Check.
//
// Every constructor takes a selector returning the address of the checked
// member, for example func(c *Customer) *string { return &c.Name }, and an
// optional custom message. The first non-empty message replaces the
// catalogue text verbatim.
type Rule[T any] func(e *Evaluator[T])

func newRule[T, V any](sel func(*T) *V, message []string, build func(field string, value V) validator.Rule) Rule[T] {
	custom := customMessage(message)
	return func(e *Evaluator[T]) {
		f, value := resolve(e.target, sel)
		e.apply(build(e.namer(f), value), custom)
	}
}

func customMessage(message []string) string {
	for _, m := range message {
		if m != "" {
			return m
		}
	}
	return ""
}

// Text rules. Lengths are counted in characters.

// IfNullOrEmpty notifies when the value is "".
func IfNullOrEmpty[T any](sel func(*T) *string, message ...string) Rule[T] {
	return newRule(sel, message, validator.NotEmpty)
}

// IfNullOrWhiteSpace notifies when the value is empty or only whitespace.
func IfNullOrWhiteSpace[T any](sel func(*T) *string, message ...string) Rule[T] {
	return newRule(sel, message, validator.NotBlank)
}

// IfNotNullOrEmpty notifies when the value is not "".
func IfNotNullOrEmpty[T any](sel func(*T) *string, message ...string) Rule[T] {
	return newRule(sel, message, validator.Empty)
}

// IfNullOrEmptyOrInvalidLength notifies when the value is blank or its length
// is outside [min, max].
func IfNullOrEmptyOrInvalidLength[T any](sel func(*T) *string, min, max int, message ...string) Rule[T] {
	return newRule(sel, message, func(field, value string) validator.Rule {
		return validator.LengthBetween(field, value, min, max)
	})
}

// IfLowerThen notifies when a non-empty value is shorter than min.
func IfLowerThen[T any](sel func(*T) *string, min int, message ...string) Rule[T] {
	return newRule(sel, message, func(field, value string) validator.Rule {
		return validator.MinLength(field, value, min)
	})
}

// IfGreaterThan notifies when a non-empty value is longer than max.
func IfGreaterThan[T any](sel func(*T) *string, max int, message ...string) Rule[T] {
	return newRule(sel, message, func(field, value string) validator.Rule {
		return validator.MaxLength(field, value, max)
	})
}

// IfLengthNoEqual notifies when a non-empty value is not exactly length long.
func IfLengthNoEqual[T any](sel func(*T) *string, length int, message ...string) Rule[T] {
	return newRule(sel, message, func(field, value string) validator.Rule {
		return validator.ExactLength(field, value, length)
	})
}

// IfNotEmail notifies when the value is not shaped like an email address.
func IfNotEmail[T any](sel func(*T) *string, message ...string) Rule[T] {
	return newRule(sel, message, validator.Email)
}

// IfNotUrl notifies when the value is not an http or https URL.
func IfNotUrl[T any](sel func(*T) *string, message ...string) Rule[T] {
	return newRule(sel, message, validator.URL)
}

// IfContains notifies when the value contains text.
func IfContains[T any](sel func(*T) *string, text string, message ...string) Rule[T] {
	return newRule(sel, message, func(field, value string) validator.Rule {
		return validator.NotContains(field, value, text)
	})
}

// IfNotContains notifies when the value does not contain text.
func IfNotContains[T any](sel func(*T) *string, text string, message ...string) Rule[T] {
	return newRule(sel, message, func(field, value string) validator.Rule {
		return validator.Contains(field, value, text)
	})
}

// IfAreEquals notifies when the value equals text, ignoring case.
func IfAreEquals[T any](sel func(*T) *string, text string, message ...string) Rule[T] {
	return newRule(sel, message, func(field, value string) validator.Rule {
		return validator.NotEqualFold(field, value, text)
	})
}

// IfNotAreEquals notifies when the value differs from text, ignoring case.
func IfNotAreEquals[T any](sel func(*T) *string, text string, message ...string) Rule[T] {
	return newRule(sel, message, func(field, value string) validator.Rule {
		return validator.EqualFold(field, value, text)
	})
}

// Document and identifier rules.

// IfNotCpf notifies when the value is not a valid CPF. Dots and dashes are ignored.
func IfNotCpf[T any](sel func(*T) *string, message ...string) Rule[T] {
	return newRule(sel, message, validator.CPF)
}

// IfNotCnpj notifies when the value is not a valid CNPJ. Dots, dashes and
// slashes are ignored.
func IfNotCnpj[T any](sel func(*T) *string, message ...string) Rule[T] {
	return newRule(sel, message, validator.CNPJ)
}

// IfNotGuid notifies when the value cannot be parsed as a GUID.
func IfNotGuid[T any](sel func(*T) *string, message ...string) Rule[T] {
	return newRule(sel, message, validator.GUID)
}

// IfNotUuidVersion notifies when the value is not a UUID of the given version.
func IfNotUuidVersion[T any](sel func(*T) *string, version int, message ...string) Rule[T] {
	return newRule(sel, message, func(field, value string) validator.Rule {
		return validator.UUIDVersion(field, value, version)
	})
}

// Boolean rules.

// IfTrue notifies when the value is true.
func IfTrue[T any](sel func(*T) *bool, message ...string) Rule[T] {
	return newRule(sel, message, validator.False)
}

// IfFalse notifies when the value is false.
func IfFalse[T any](sel func(*T) *bool, message ...string) Rule[T] {
	return newRule(sel, message, validator.True)
}

// Numeric rules. NaN never satisfies a comparison.

// IfGreaterOrEqualsThan notifies when value >= limit.
func IfGreaterOrEqualsThan[T any, V validator.Numeric](sel func(*T) *V, limit V, message ...string) Rule[T] {
	return newRule(sel, message, func(field string, value V) validator.Rule {
		return validator.LowerThan(field, value, limit)
	})
}

// IfLowerOrEqualsThan notifies when value <= limit.
func IfLowerOrEqualsThan[T any, V validator.Numeric](sel func(*T) *V, limit V, message ...string) Rule[T] {
	return newRule(sel, message, func(field string, value V) validator.Rule {
		return validator.GreaterThan(field, value, limit)
	})
}

// IfRange notifies when a < value < b.
func IfRange[T any, V validator.Numeric](sel func(*T) *V, a, b V, message ...string) Rule[T] {
	return newRule(sel, message, func(field string, value V) validator.Rule {
		return validator.OutsideOpenRange(field, value, a, b)
	})
}

// IfNotRange notifies when value < a or value > b.
func IfNotRange[T any, V validator.Numeric](sel func(*T) *V, a, b V, message ...string) Rule[T] {
	return newRule(sel, message, func(field string, value V) validator.Rule {
		return validator.InClosedRange(field, value, a, b)
	})
}

// IfAreEqualsNumber notifies when value == x.
func IfAreEqualsNumber[T any, V validator.Numeric](sel func(*T) *V, x V, message ...string) Rule[T] {
	return newRule(sel, message, func(field string, value V) validator.Rule {
		return validator.NotEqual(field, value, x)
	})
}

// IfNotAreEqualsNumber notifies when value != x.
func IfNotAreEqualsNumber[T any, V validator.Numeric](sel func(*T) *V, x V, message ...string) Rule[T] {
	return newRule(sel, message, func(field string, value V) validator.Rule {
		return validator.Equal(field, value, x)
	})
}

// IfEqualsZero notifies when value == 0.
func IfEqualsZero[T any, V validator.Numeric](sel func(*T) *V, message ...string) Rule[T] {
	return newRule(sel, message, validator.NotZero[V])
}

// Comparator rules work on any ordered value, such as time.Time with
// time.Time.Compare or decimal.Decimal with decimal.Decimal.Cmp. cmp returns
// a negative number, zero or a positive number like strings.Compare.

// IfGreaterOrEqualsThanFunc notifies when cmp(value, limit) >= 0.
func IfGreaterOrEqualsThanFunc[T, V any](sel func(*T) *V, limit V, cmp func(a, b V) int, message ...string) Rule[T] {
	return newRule(sel, message, func(field string, value V) validator.Rule {
		return validator.LowerThanFunc(field, value, limit, cmp)
	})
}

// IfLowerOrEqualsThanFunc notifies when cmp(value, limit) <= 0.
func IfLowerOrEqualsThanFunc[T, V any](sel func(*T) *V, limit V, cmp func(a, b V) int, message ...string) Rule[T] {
	return newRule(sel, message, func(field string, value V) validator.Rule {
		return validator.GreaterThanFunc(field, value, limit, cmp)
	})
}

// IfRangeFunc notifies when value lies strictly between a and b.
func IfRangeFunc[T, V any](sel func(*T) *V, a, b V, cmp func(a, b V) int, message ...string) Rule[T] {
	return newRule(sel, message, func(field string, value V) validator.Rule {
		return validator.OutsideOpenRangeFunc(field, value, a, b, cmp)
	})
}

// IfNotRangeFunc notifies when value lies before a or after b.
func IfNotRangeFunc[T, V any](sel func(*T) *V, a, b V, cmp func(a, b V) int, message ...string) Rule[T] {
	return newRule(sel, message, func(field string, value V) validator.Rule {
		return validator.InClosedRangeFunc(field, value, a, b, cmp)
	})
}

// IfAreEqualsFunc notifies when cmp(value, x) == 0.
func IfAreEqualsFunc[T, V any](sel func(*T) *V, x V, cmp func(a, b V) int, message ...string) Rule[T] {
	return newRule(sel, message, func(field string, value V) validator.Rule {
		return validator.NotEqualFunc(field, value, x, cmp)
	})
}

// IfNotAreEqualsFunc notifies when cmp(value, x) != 0.
func IfNotAreEqualsFunc[T, V any](sel func(*T) *V, x V, cmp func(a, b V) int, message ...string) Rule[T] {
	return newRule(sel, message, func(field string, value V) validator.Rule {
		return validator.EqualFunc(field, value, x, cmp)
	})
}

// IfZeroTime notifies when the time was never set.
func IfZeroTime[T any](sel func(*T) *time.Time, message ...string) Rule[T] {
	return newRule(sel, message, validator.NotZeroTime)
}

// Collection and nullable rules.

// IfCollectionIsNull notifies when the slice is nil.
func IfCollectionIsNull[T, E any](sel func(*T) *[]E, message ...string) Rule[T] {
	return newRule(sel, message, validator.NotNilSlice[E])
}

// IfCollectionIsNullOrEmpty notifies when the slice is nil or empty.
func IfCollectionIsNullOrEmpty[T, E any](sel func(*T) *[]E, message ...string) Rule[T] {
	return newRule(sel, message, validator.NotEmptySlice[E])
}

// IfNull notifies when the pointer member is nil. The selector returns the
// address of the pointer field, e.g. func(c *Customer) **int { return &c.ReferrerID }.
func IfNull[T, V any](sel func(*T) **V, message ...string) Rule[T] {
	return newRule(sel, message, validator.NotNil[V])
}

// IfNotNull notifies when the pointer member is set.
func IfNotNull[T, V any](sel func(*T) **V, message ...string) Rule[T] {
	return newRule(sel, message, validator.Nil[V])
}
