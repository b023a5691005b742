// Package i18n localizes validation error messages.
//
// Translations are nested maps keyed by language and loaded from YAML or
// JSON files:
//
//	en:
//	  validation:
//	    required: "is required"
//	    range: "must be between %{min} and %{max}"
//	de:
//	  validation:
//	    required: "ist erforderlich"
//
// Keys use dot notation and templates use named placeholders (%{name}).
// Localize rewrites the messages of a valida.Errors set: each error is looked
// up by its translation key, or by "validation.<validator>" when it has none,
// and its params fill the placeholders.
//
//	tr, err := i18n.LoadFile(ctx, "messages.yaml", i18n.WithDefaultLanguage("en"))
//	if err != nil {
//		return err
//	}
//	localized := i18n.Localize(tr, "de", rc.Errors())
package i18n
