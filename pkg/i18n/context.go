package i18n

import "context"

type localeKey struct{}

// SetLocale returns a copy of ctx carrying the requested locale. The value is
// stored as given; matching against supported languages happens at lookup.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

// LocaleFromContext returns the locale stored by SetLocale and whether a
// non-empty one was found.
func LocaleFromContext(ctx context.Context) (string, bool) {
	locale, _ := ctx.Value(localeKey{}).(string)
	return locale, locale != ""
}

// GetLocale returns the locale stored in ctx, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	if locale, ok := LocaleFromContext(ctx); ok {
		return locale
	}
	return DefaultLanguage
}
