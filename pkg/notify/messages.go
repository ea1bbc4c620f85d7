package notify

import (
	"context"
	"embed"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrymomot/notifykit/pkg/i18n"
	"github.com/dmitrymomot/notifykit/pkg/validator"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// Messages renders failure messages from a catalogue of templates keyed by
// rule translation key. Templates use "%{field}" and the rule parameters as
// placeholders. A Messages value is immutable and safe for concurrent use.
type Messages struct {
	translator *i18n.Translator
}

var (
	defaultOnce     sync.Once
	defaultMessages *Messages
)

// DefaultMessages returns the bundled English and Brazilian Portuguese catalogue.
// It is loaded once per process.
func DefaultMessages() *Messages {
	defaultOnce.Do(func() {
		m, err := NewMessages(context.Background(), bundledLocales())
		if err != nil {
			panic(fmt.Errorf("notify: bundled locales: %w", err))
		}
		defaultMessages = m
	})
	return defaultMessages
}

func bundledLocales() i18n.TranslationAdapter {
	return i18n.NewFSAdapter(localesFS, "locales")
}

// NewMessages builds a catalogue from any translation source.
func NewMessages(ctx context.Context, adapter i18n.TranslationAdapter, opts ...i18n.Option) (*Messages, error) {
	t, err := i18n.NewTranslator(ctx, adapter, opts...)
	if err != nil {
		return nil, err
	}
	return &Messages{translator: t}, nil
}

// LoadMessages builds a catalogue from the bundled templates overridden by the
// YAML and JSON files found in dir. Keys missing from dir keep their bundled text.
func LoadMessages(ctx context.Context, dir string, opts ...i18n.Option) (*Messages, error) {
	if dir == "" {
		return DefaultMessages(), nil
	}
	overrides, err := i18n.NewDirectoryAdapter(dir)
	if err != nil {
		return nil, err
	}
	return NewMessages(ctx, i18n.NewMergeAdapter(bundledLocales(), overrides), opts...)
}

// Languages returns the catalogue languages in sorted order.
func (m *Messages) Languages() []string {
	return m.translator.SupportedLanguages()
}

// Supports reports whether lang matches one of the catalogue languages.
func (m *Messages) Supports(lang string) bool {
	return i18n.MatchLanguage(lang, m.Languages(), "") != ""
}

// Match resolves a loosely written language code to a catalogue language.
func (m *Messages) Match(lang string) string {
	return m.translator.Match(lang)
}

// Render returns the message for a failed rule in lang. When the catalogue
// has no template for the rule key, the rule's own message is returned.
func (m *Messages) Render(lang string, e validator.ValidationError) string {
	if e.TranslationKey == "" || !m.translator.HasTranslation(lang, e.TranslationKey) {
		return e.Message
	}
	return m.translator.T(lang, e.TranslationKey, templateArgs(e.TranslationValues)...)
}

// templateArgs flattens rule parameters into sorted key, value pairs.
func templateArgs(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	args := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, formatValue(values[k]))
	}
	return args
}

func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
