package customer

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported batch format")
	ErrDecodeBatch       = errors.New("failed to decode customer batch")
	ErrEmptyBatch        = errors.New("customer batch is empty")
	ErrReadBatch         = errors.New("failed to read customer batch")
)
