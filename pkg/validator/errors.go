package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidDocument is returned by the document formatters for values that
	// do not carry a valid CPF or CNPJ.
	ErrInvalidDocument = errors.New("invalid document number")
)
