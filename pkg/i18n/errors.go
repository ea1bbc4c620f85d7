package i18n

import "errors"

// Context cancellation errors are separated to allow proper error handling in timeouts.
var (
	ErrNilAdapter = errors.New("translation adapter is nil")

	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading translation file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")

	// Directory operations
	ErrFailedToAccessDirectory = errors.New("failed to access directory")
	ErrFailedToReadDirectory   = errors.New("failed to read directory")
	ErrNoTranslationFiles      = errors.New("no translation files found")
)
