package i18n

import "log/slog"

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language Match resolves unknown codes to.
// Empty values are ignored.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey makes T return the key itself for missing translations
// (the default) or an empty string when disabled.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger routes translator diagnostics to l. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every lookup of a missing key.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) {
		t.missingLogMode = enabled
	}
}

// WithNoLogging drops all translator output, including missing key warnings.
func WithNoLogging() Option {
	return func(t *Translator) {
		t.logger = discardLogger()
		t.missingLogMode = false
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
