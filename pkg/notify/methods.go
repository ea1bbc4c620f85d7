package notify

import "time"

// Chainable shorthands for the text, boolean, int and time rules.
// Other value kinds go through Check with the generic constructors.

// IfNullOrEmpty is the chainable form of the IfNullOrEmpty rule.
func (e *Evaluator[T]) IfNullOrEmpty(sel func(*T) *string, message ...string) *Evaluator[T] {
	return e.Check(IfNullOrEmpty(sel, message...))
}

// IfNullOrWhiteSpace is the chainable form of the IfNullOrWhiteSpace rule.
func (e *Evaluator[T]) IfNullOrWhiteSpace(sel func(*T) *string, message ...string) *Evaluator[T] {
	return e.Check(IfNullOrWhiteSpace(sel, message...))
}

// IfNotNullOrEmpty is the chainable form of the IfNotNullOrEmpty rule.
func (e *Evaluator[T]) IfNotNullOrEmpty(sel func(*T) *string, message ...string) *Evaluator[T] {
	return e.Check(IfNotNullOrEmpty(sel, message...))
}

// IfNullOrEmptyOrInvalidLength is the chainable form of the IfNullOrEmptyOrInvalidLength rule.
func (e *Evaluator[T]) IfNullOrEmptyOrInvalidLength(sel func(*T) *string, min, max int, message ...string) *Evaluator[T] {
	return e.Check(IfNullOrEmptyOrInvalidLength(sel, min, max, message...))
}

// IfLowerThen is the chainable form of the IfLowerThen rule.
func (e *Evaluator[T]) IfLowerThen(sel func(*T) *string, min int, message ...string) *Evaluator[T] {
	return e.Check(IfLowerThen(sel, min, message...))
}

// IfGreaterThan is the chainable form of the IfGreaterThan rule.
func (e *Evaluator[T]) IfGreaterThan(sel func(*T) *string, max int, message ...string) *Evaluator[T] {
	return e.Check(IfGreaterThan(sel, max, message...))
}

// IfLengthNoEqual is the chainable form of the IfLengthNoEqual rule.
func (e *Evaluator[T]) IfLengthNoEqual(sel func(*T) *string, length int, message ...string) *Evaluator[T] {
	return e.Check(IfLengthNoEqual(sel, length, message...))
}

// IfNotEmail is the chainable form of the IfNotEmail rule.
func (e *Evaluator[T]) IfNotEmail(sel func(*T) *string, message ...string) *Evaluator[T] {
	return e.Check(IfNotEmail(sel, message...))
}

// IfNotUrl is the chainable form of the IfNotUrl rule.
func (e *Evaluator[T]) IfNotUrl(sel func(*T) *string, message ...string) *Evaluator[T] {
	return e.Check(IfNotUrl(sel, message...))
}

// IfContains is the chainable form of the IfContains rule.
func (e *Evaluator[T]) IfContains(sel func(*T) *string, text string, message ...string) *Evaluator[T] {
	return e.Check(IfContains(sel, text, message...))
}

// IfNotContains is the chainable form of the IfNotContains rule.
func (e *Evaluator[T]) IfNotContains(sel func(*T) *string, text string, message ...string) *Evaluator[T] {
	return e.Check(IfNotContains(sel, text, message...))
}

// IfAreEquals is the chainable form of the IfAreEquals rule.
func (e *Evaluator[T]) IfAreEquals(sel func(*T) *string, text string, message ...string) *Evaluator[T] {
	return e.Check(IfAreEquals(sel, text, message...))
}

// IfNotAreEquals is the chainable form of the IfNotAreEquals rule.
func (e *Evaluator[T]) IfNotAreEquals(sel func(*T) *string, text string, message ...string) *Evaluator[T] {
	return e.Check(IfNotAreEquals(sel, text, message...))
}

// IfNotCpf is the chainable form of the IfNotCpf rule.
func (e *Evaluator[T]) IfNotCpf(sel func(*T) *string, message ...string) *Evaluator[T] {
	return e.Check(IfNotCpf(sel, message...))
}

// IfNotCnpj is the chainable form of the IfNotCnpj rule.
func (e *Evaluator[T]) IfNotCnpj(sel func(*T) *string, message ...string) *Evaluator[T] {
	return e.Check(IfNotCnpj(sel, message...))
}

// IfNotGuid is the chainable form of the IfNotGuid rule.
func (e *Evaluator[T]) IfNotGuid(sel func(*T) *string, message ...string) *Evaluator[T] {
	return e.Check(IfNotGuid(sel, message...))
}

// IfNotUuidVersion is the chainable form of the IfNotUuidVersion rule.
func (e *Evaluator[T]) IfNotUuidVersion(sel func(*T) *string, version int, message ...string) *Evaluator[T] {
	return e.Check(IfNotUuidVersion(sel, version, message...))
}

// IfTrue is the chainable form of the IfTrue rule.
func (e *Evaluator[T]) IfTrue(sel func(*T) *bool, message ...string) *Evaluator[T] {
	return e.Check(IfTrue(sel, message...))
}

// IfFalse is the chainable form of the IfFalse rule.
func (e *Evaluator[T]) IfFalse(sel func(*T) *bool, message ...string) *Evaluator[T] {
	return e.Check(IfFalse(sel, message...))
}

// IfGreaterOrEqualsThan is the chainable form of the IfGreaterOrEqualsThan rule.
func (e *Evaluator[T]) IfGreaterOrEqualsThan(sel func(*T) *int, limit int, message ...string) *Evaluator[T] {
	return e.Check(IfGreaterOrEqualsThan(sel, limit, message...))
}

// IfLowerOrEqualsThan is the chainable form of the IfLowerOrEqualsThan rule.
func (e *Evaluator[T]) IfLowerOrEqualsThan(sel func(*T) *int, limit int, message ...string) *Evaluator[T] {
	return e.Check(IfLowerOrEqualsThan(sel, limit, message...))
}

// IfRange is the chainable form of the IfRange rule.
func (e *Evaluator[T]) IfRange(sel func(*T) *int, a, b int, message ...string) *Evaluator[T] {
	return e.Check(IfRange(sel, a, b, message...))
}

// IfNotRange is the chainable form of the IfNotRange rule.
func (e *Evaluator[T]) IfNotRange(sel func(*T) *int, a, b int, message ...string) *Evaluator[T] {
	return e.Check(IfNotRange(sel, a, b, message...))
}

// IfAreEqualsNumber is the chainable form of the IfAreEqualsNumber rule.
func (e *Evaluator[T]) IfAreEqualsNumber(sel func(*T) *int, x int, message ...string) *Evaluator[T] {
	return e.Check(IfAreEqualsNumber(sel, x, message...))
}

// IfNotAreEqualsNumber is the chainable form of the IfNotAreEqualsNumber rule.
func (e *Evaluator[T]) IfNotAreEqualsNumber(sel func(*T) *int, x int, message ...string) *Evaluator[T] {
	return e.Check(IfNotAreEqualsNumber(sel, x, message...))
}

// IfEqualsZero is the chainable form of the IfEqualsZero rule.
func (e *Evaluator[T]) IfEqualsZero(sel func(*T) *int, message ...string) *Evaluator[T] {
	return e.Check(IfEqualsZero(sel, message...))
}

// IfZeroTime is the chainable form of the IfZeroTime rule.
func (e *Evaluator[T]) IfZeroTime(sel func(*T) *time.Time, message ...string) *Evaluator[T] {
	return e.Check(IfZeroTime(sel, message...))
}

// IfDateGreaterOrEqualsThan notifies when the time is at or after limit.
func (e *Evaluator[T]) IfDateGreaterOrEqualsThan(sel func(*T) *time.Time, limit time.Time, message ...string) *Evaluator[T] {
	return e.Check(IfGreaterOrEqualsThanFunc(sel, limit, time.Time.Compare, message...))
}

// IfDateLowerOrEqualsThan notifies when the time is at or before limit.
func (e *Evaluator[T]) IfDateLowerOrEqualsThan(sel func(*T) *time.Time, limit time.Time, message ...string) *Evaluator[T] {
	return e.Check(IfLowerOrEqualsThanFunc(sel, limit, time.Time.Compare, message...))
}

// IfDateNotRange notifies when the time is before a or after b.
func (e *Evaluator[T]) IfDateNotRange(sel func(*T) *time.Time, a, b time.Time, message ...string) *Evaluator[T] {
	return e.Check(IfNotRangeFunc(sel, a, b, time.Time.Compare, message...))
}
