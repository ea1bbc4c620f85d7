// Package i18n loads message catalogs and renders translated templates.
//
// Catalogs are nested maps keyed first by language code and then by
// translation key. They are loaded through a TranslationAdapter: MapAdapter
// for in-memory data, FSAdapter for YAML and JSON files in any fs.FS (an
// embed.FS or a local directory) and MergeAdapter for layering overrides on
// top of bundled defaults.
//
// Templates use named placeholders in the form "%{name}":
//
//	adapter := i18n.NewMergeAdapter(
//		i18n.NewFSAdapter(localesFS, "locales"),
//		overrides,
//	)
//	translator, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//		return err
//	}
//	msg := translator.Td(translator.Match("pt_br"), "validation.range",
//		"%{field} must be between %{a} and %{b}",
//		"field", "Age", "a", "1", "b", "10")
//
// Match normalizes loosely written language codes with golang.org/x/text/language
// so that "pt_br", "PT-BR" and "pt" all resolve to a "pt-BR" catalog.
//
// The active language can travel in a context.Context via SetLocale and GetLocale.
package i18n
