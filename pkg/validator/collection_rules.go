package validator

import "fmt"

// NotNilSlice validates that a slice has been set. An empty, non-nil slice passes.
func NotNilSlice[T any](field string, value []T) Rule {
	return Rule{
		Check: func() bool {
			return value != nil
		},
		Error: newError(field, KeyCollectionIsNull,
			fmt.Sprintf("%s must not be null", field), nil),
	}
}

// NotEmptySlice validates that a slice has at least one element.
func NotEmptySlice[T any](field string, value []T) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 0
		},
		Error: newError(field, KeyCollectionIsNullOrEmpty,
			fmt.Sprintf("%s must have at least one item", field), nil),
	}
}

// NotNil validates that an optional value is present.
func NotNil[T any](field string, value *T) Rule {
	return Rule{
		Check: func() bool {
			return value != nil
		},
		Error: newError(field, KeyNull,
			fmt.Sprintf("%s must not be null", field), nil),
	}
}

// Nil validates that an optional value is absent.
func Nil[T any](field string, value *T) Rule {
	return Rule{
		Check: func() bool {
			return value == nil
		},
		Error: newError(field, KeyNotNull,
			fmt.Sprintf("%s must be null", field), nil),
	}
}
