package validator

import "fmt"

// Each check is the negation of the condition that makes the rule fail, so a
// NaN value only fails the equality rules.

// LowerThan validates that value < limit.
func LowerThan[T Numeric](field string, value, limit T) Rule {
	return Rule{
		Check: func() bool {
			return !(value >= limit)
		},
		Error: lowerThanError(field, limit),
	}
}

// GreaterThan validates that value > limit.
func GreaterThan[T Numeric](field string, value, limit T) Rule {
	return Rule{
		Check: func() bool {
			return !(value <= limit)
		},
		Error: greaterThanError(field, limit),
	}
}

// OutsideOpenRange validates that value is not strictly between a and b.
func OutsideOpenRange[T Numeric](field string, value, a, b T) Rule {
	return Rule{
		Check: func() bool {
			return !(value > a && value < b)
		},
		Error: outsideOpenRangeError(field, a, b),
	}
}

// InClosedRange validates that a <= value <= b.
func InClosedRange[T Numeric](field string, value, a, b T) Rule {
	return Rule{
		Check: func() bool {
			return !(value < a || value > b)
		},
		Error: inClosedRangeError(field, a, b),
	}
}

// Equal validates that a number equals expected.
func Equal[T Numeric](field string, value, expected T) Rule {
	return Rule{
		Check: func() bool {
			return !(value != expected)
		},
		Error: equalError(field, expected),
	}
}

// NotEqual validates that a number differs from unexpected.
func NotEqual[T Numeric](field string, value, unexpected T) Rule {
	return Rule{
		Check: func() bool {
			return !(value == unexpected)
		},
		Error: notEqualError(field, unexpected),
	}
}

// NotZero validates that a numeric value is not zero.
func NotZero[T Numeric](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool {
			return value != zero
		},
		Error: newError(field, KeyEqualsZero,
			fmt.Sprintf("%s must not be zero", field), nil),
	}
}
