package i18n

import (
	"fmt"

	"github.com/dmitrymomot/valida"
)

// Localize returns a copy of errs with messages translated to lang.
// Errors without a matching translation keep their message. Nested schema
// errors are localized recursively.
func Localize(t *Translator, lang string, errs valida.Errors) valida.Errors {
	if t == nil || errs == nil {
		return errs
	}

	out := make(valida.Errors, len(errs))
	for field, list := range errs {
		localized := make([]valida.Error, len(list))
		for i, e := range list {
			localized[i] = localizeError(t, lang, e)
		}
		out[field] = localized
	}
	return out
}

func localizeError(t *Translator, lang string, e valida.Error) valida.Error {
	key := e.TranslationKey
	if key == "" {
		key = "validation." + e.Validator
	}

	if tmpl, ok := t.Lookup(lang, key); ok {
		params := make(map[string]string, len(e.Params))
		for k, v := range e.Params {
			params[k] = fmt.Sprint(v)
		}
		e.Message = namedSprintf(tmpl, params)
	}

	if len(e.Children) > 0 {
		children := make(map[int]valida.Errors, len(e.Children))
		for i, c := range e.Children {
			children[i] = Localize(t, lang, c)
		}
		e.Children = children
	}

	return e
}
