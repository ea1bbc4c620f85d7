package config

import "errors"

var (
	// ErrParsingConfig wraps env parsing failures such as a missing required
	// variable or a value that does not fit the field type.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrNilPointer is returned when Load or ForceReload get a nil pointer.
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrLoadingEnvFile is returned when a .env file cannot be read.
	ErrLoadingEnvFile = errors.New("failed to load env file")
)
