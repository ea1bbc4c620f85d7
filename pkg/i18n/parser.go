package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes the content of one translation file into translations
// keyed by language code.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)
	// SupportsFileExtension accepts the extension with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// FormatParser is a Parser for a document format whose top level maps
// language codes to nested translation keys.
type FormatParser struct {
	name       string
	extensions []string
	unmarshal  func([]byte, any) error
	cancelled  error
	invalid    error
}

// NewJSONParser returns the parser for .json files.
func NewJSONParser() *FormatParser {
	return &FormatParser{
		name:       "json",
		extensions: []string{"json"},
		unmarshal:  json.Unmarshal,
		cancelled:  ErrJSONParsingCancelled,
		invalid:    ErrFailedToParseJSON,
	}
}

// NewYAMLParser returns the parser for .yaml and .yml files.
func NewYAMLParser() *FormatParser {
	return &FormatParser{
		name:       "yaml",
		extensions: []string{"yaml", "yml"},
		unmarshal:  yaml.Unmarshal,
		cancelled:  ErrYAMLParsingCancelled,
		invalid:    ErrFailedToParseYAML,
	}
}

// NewParserForFile picks a parser by file extension. It returns nil for
// files that are not translation files.
func NewParserForFile(filename string) Parser {
	ext := path.Ext(filename)
	for _, p := range []*FormatParser{NewJSONParser(), NewYAMLParser()} {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// Name returns the format name, "json" or "yaml".
func (p *FormatParser) Name() string {
	return p.name
}

func (p *FormatParser) SupportsFileExtension(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	return slices.Contains(p.extensions, ext)
}

// Parse decodes content. Every language must map to a nested mapping and at
// least one language must be present.
func (p *FormatParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(p.cancelled, err)
	}

	var data map[string]any
	if err := p.unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(p.invalid, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no languages found", p.invalid)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, body := range data {
		translations, ok := body.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q must map to a mapping, got %T", p.invalid, lang, body)
		}
		result[lang] = translations
	}
	return result, nil
}
