package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// ErrLanguageNotSupported indicates that the requested language is not available
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Lang)
}

// Translator resolves message templates by language and dotted key.
// Translations are loaded once through a TranslationAdapter.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        discardLogger(),
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := t.validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

func (t *Translator) validateTranslations(trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.Warn("no translations provided")
		return nil
	}

	for lang, translations := range trans {
		if lang == "" {
			return errors.New("empty language code found")
		}
		if translations == nil {
			return fmt.Errorf("nil translations map for language: %s", lang)
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the sorted list of language codes that have translations.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used when a requested one cannot be matched.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match maps a loosely formatted language code ("pt_br", "PT-BR", "pt")
// onto one of the loaded languages. Unknown codes resolve to the default language.
func (t *Translator) Match(lang string) string {
	return MatchLanguage(lang, t.SupportedLanguages(), t.defaultLang)
}

// getTranslation traverses a nested map using dot-separated keys.
// Key "validation.range" reads m["validation"]["range"].
func getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		currentMap, ok := asStringMap(next)
		if !ok {
			return nil, false
		}
		current = currentMap
	}

	return nil, false
}

func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			if ks, ok := k.(string); ok {
				out[ks] = v
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}

	_, ok = getTranslation(langMap, key)
	return ok
}

// buildParams converts key, value, key, value pairs into a map.
// A trailing odd argument is ignored.
func buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Format substitutes "%{name}" placeholders in tmpl using key-value pairs.
// Unknown placeholders are left untouched.
func Format(tmpl string, args ...string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := buildParams(args)
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// lookup returns the string template for lang and key.
func (t *Translator) lookup(lang, key string) (string, bool) {
	langMap, ok := t.translations[lang]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", "lang", lang, "key", key)
		}
		return "", false
	}

	val, ok := getTranslation(langMap, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", "lang", lang, "key", key)
		}
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		if t.missingLogMode {
			t.logger.Warn("translation is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", v))
		}
		return "", false
	}
}

// T translates a key for the given language, substituting "%{name}"
// placeholders from key-value args.
//
//	// With translation "validation.range": "%{field} must be between %{a} and %{b}"
//	msg := translator.T("en", "validation.range", "field", "Age", "a", "1", "b", "10")
//	// Returns: "Age must be between 1 and 10"
//
// A missing translation yields the formatted key when fallback to key is
// enabled, and an empty string otherwise.
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.lookup(lang, key); ok {
		return Format(tmpl, args...)
	}
	if t.fallbackToKey {
		return Format(key, args...)
	}
	return ""
}

// Td translates a key with an explicit default template used when the key is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.lookup(lang, key); ok {
		return Format(tmpl, args...)
	}
	return Format(defaultValue, args...)
}

// Tc translates a key using the language stored in ctx by SetLocale.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}
