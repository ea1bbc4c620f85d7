package customer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a batch file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode reads a list of customers. Unknown keys are rejected so typos in a
// batch file surface as errors instead of silently empty fields.
func Decode(r io.Reader, format Format) ([]*Customer, error) {
	var (
		list []*Customer
		err  error
	)

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&list)
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&list)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyBatch
	}
	if err != nil {
		return nil, errors.Join(ErrDecodeBatch, err)
	}
	if len(list) == 0 {
		return nil, ErrEmptyBatch
	}
	for i, c := range list {
		if c == nil {
			return nil, fmt.Errorf("%w: record %d is null", ErrDecodeBatch, i)
		}
	}
	return list, nil
}

// DecodeFile reads a batch file, choosing the format by extension.
func DecodeFile(path string) ([]*Customer, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrReadBatch, err)
	}
	defer f.Close()

	return Decode(f, format)
}
