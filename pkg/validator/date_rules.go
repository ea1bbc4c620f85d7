package validator

import (
	"fmt"
	"time"
)

// NotZeroTime validates that a time has been set.
func NotZeroTime(field string, value time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !value.IsZero()
		},
		Error: newError(field, KeyZeroTime,
			fmt.Sprintf("%s must be set", field), nil),
	}
}
