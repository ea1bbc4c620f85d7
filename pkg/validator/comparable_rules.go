package validator

import "fmt"

// The *Func rules compare values through a three-way comparator such as
// time.Time.Compare or decimal.Decimal.Cmp. cmp(a, b) must return a negative
// number when a < b, zero when a == b and a positive number when a > b.

// LowerThanFunc validates that value is strictly lower than limit.
func LowerThanFunc[V any](field string, value, limit V, cmp func(a, b V) int) Rule {
	return Rule{
		Check: func() bool {
			return cmp(value, limit) < 0
		},
		Error: lowerThanError(field, limit),
	}
}

// GreaterThanFunc validates that value is strictly greater than limit.
func GreaterThanFunc[V any](field string, value, limit V, cmp func(a, b V) int) Rule {
	return Rule{
		Check: func() bool {
			return cmp(value, limit) > 0
		},
		Error: greaterThanError(field, limit),
	}
}

// OutsideOpenRangeFunc validates that value does not lie strictly between a and b.
// The bounds themselves are accepted.
func OutsideOpenRangeFunc[V any](field string, value, a, b V, cmp func(a, b V) int) Rule {
	return Rule{
		Check: func() bool {
			return !(cmp(value, a) > 0 && cmp(value, b) < 0)
		},
		Error: outsideOpenRangeError(field, a, b),
	}
}

// InClosedRangeFunc validates that a <= value <= b.
func InClosedRangeFunc[V any](field string, value, a, b V, cmp func(a, b V) int) Rule {
	return Rule{
		Check: func() bool {
			return cmp(value, a) >= 0 && cmp(value, b) <= 0
		},
		Error: inClosedRangeError(field, a, b),
	}
}

// EqualFunc validates that value equals expected.
func EqualFunc[V any](field string, value, expected V, cmp func(a, b V) int) Rule {
	return Rule{
		Check: func() bool {
			return cmp(value, expected) == 0
		},
		Error: equalError(field, expected),
	}
}

// NotEqualFunc validates that value differs from unexpected.
func NotEqualFunc[V any](field string, value, unexpected V, cmp func(a, b V) int) Rule {
	return Rule{
		Check: func() bool {
			return cmp(value, unexpected) != 0
		},
		Error: notEqualError(field, unexpected),
	}
}

// True validates that value is true.
func True(field string, value bool) Rule {
	return Rule{
		Check: func() bool {
			return value
		},
		Error: newError(field, KeyFalse, fmt.Sprintf("%s must be true", field), nil),
	}
}

// False validates that value is false.
func False(field string, value bool) Rule {
	return Rule{
		Check: func() bool {
			return !value
		},
		Error: newError(field, KeyTrue, fmt.Sprintf("%s must be false", field), nil),
	}
}

func lowerThanError(field string, limit any) ValidationError {
	return newError(field, KeyGreaterOrEqualsThan,
		fmt.Sprintf("%s must be lower than %v", field, limit),
		map[string]any{"value": limit})
}

func greaterThanError(field string, limit any) ValidationError {
	return newError(field, KeyLowerOrEqualsThan,
		fmt.Sprintf("%s must be greater than %v", field, limit),
		map[string]any{"value": limit})
}

func outsideOpenRangeError(field string, a, b any) ValidationError {
	return newError(field, KeyRange,
		fmt.Sprintf("%s must not be between %v and %v", field, a, b),
		map[string]any{"a": a, "b": b})
}

func inClosedRangeError(field string, a, b any) ValidationError {
	return newError(field, KeyNotRange,
		fmt.Sprintf("%s must be between %v and %v", field, a, b),
		map[string]any{"a": a, "b": b})
}

func equalError(field string, expected any) ValidationError {
	return newError(field, KeyNotAreEquals,
		fmt.Sprintf("%s must be equal to %v", field, expected),
		map[string]any{"value": expected})
}

func notEqualError(field string, unexpected any) ValidationError {
	return newError(field, KeyAreEquals,
		fmt.Sprintf("%s must not be equal to %v", field, unexpected),
		map[string]any{"value": unexpected})
}
