package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the language code used when no language is requested.
const DefaultLanguage = "en"

// MatchLanguage picks the entry of supported that best serves requested.
//
// Matching is case-insensitive and accepts "_" as a subtag separator, so
// "pt_br" selects "pt-BR". A bare base language selects its most likely
// regional variant ("pt" selects "pt-BR" when no plain "pt" exists).
// Empty, malformed or unmatched codes return fallback.
func MatchLanguage(requested string, supported []string, fallback string) string {
	requested = strings.TrimSpace(requested)
	if requested == "" || len(supported) == 0 {
		return fallback
	}

	normalized := strings.ReplaceAll(requested, "_", "-")
	for _, lang := range supported {
		if strings.EqualFold(lang, normalized) {
			return lang
		}
	}

	tag, err := language.Parse(normalized)
	if err != nil {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	index := make([]int, 0, len(supported))
	for i, lang := range supported {
		st, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
		if err != nil {
			continue
		}
		tags = append(tags, st)
		index = append(index, i)
	}
	if len(tags) == 0 {
		return fallback
	}

	_, i, confidence := language.NewMatcher(tags).Match(tag)
	if confidence == language.No {
		return fallback
	}
	return supported[index[i]]
}
