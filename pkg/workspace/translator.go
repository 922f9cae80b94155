package workspace

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-reportgen/pkg/model"
	"github.com/goliatone/go-reportgen/pkg/render"
)

// DefaultLocale is consulted when a requested locale has no translation
// table.
const DefaultLocale = "en"

// Translator returns a render.Translator backed by the workspace translation
// tables. Lookup order: requested locale, then DefaultLocale. A missing key
// is an error so renderer fallback chains apply.
func (w *Workspace) Translator() render.Translator {
	return render.TranslatorFunc(func(locale, key string, _ ...any) (string, error) {
		if w == nil || len(w.Translations) == 0 {
			return "", render.ErrMissingTranslator
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return "", fmt.Errorf("workspace: translation key is required")
		}

		for _, candidate := range localeChain(locale) {
			table, ok := w.Translations[candidate]
			if !ok {
				continue
			}
			if msg, ok := table[key]; ok && strings.TrimSpace(msg) != "" {
				return msg, nil
			}
		}
		return "", fmt.Errorf("workspace: no translation for %q", key)
	})
}

// Labeler returns a label function for the report builder: field labels
// resolve through the workspace translations as "<EntityType>.<fieldKey>",
// falling back to a humanized key when the platform has no label.
func (w *Workspace) Labeler(locale string) model.LabelFunc {
	translator := w.Translator()
	return func(entityType, fieldKey string) string {
		key := fieldKey
		if entityType != "" {
			key = entityType + "." + fieldKey
		}
		if msg, err := translator.Translate(locale, key); err == nil {
			return msg
		}
		return model.DefaultLabeler(fieldKey)
	}
}

func localeChain(locale string) []string {
	locale = strings.TrimSpace(locale)
	if locale == "" || locale == DefaultLocale {
		return []string{DefaultLocale}
	}

	chain := []string{locale}
	// "en-US" also tries "en" before the default.
	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		chain = append(chain, locale[:idx])
	}
	if chain[len(chain)-1] != DefaultLocale {
		chain = append(chain, DefaultLocale)
	}
	return chain
}
