package sanitizer

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose stores a transform chain for reuse.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Strip returns a transform removing chars, for use in Compose chains.
func Strip(chars string) func(string) string {
	return func(s string) string {
		return RemoveChars(s, chars)
	}
}
