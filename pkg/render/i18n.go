package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-reportgen/pkg/model"
)

// Translator resolves a message key for a locale. The workspace client and
// view configuration both provide implementations; tests use simple maps.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function into a Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate calls the underlying function.
func (fn TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return fn(locale, key, args...)
}

// ErrMissingTranslator signals that a translation was requested while no
// Translator is configured.
var ErrMissingTranslator = errors.New("render: translator is not configured")

// MissingTranslationHandler decides the string emitted when a translation is
// missing or failed. The default falls back to the key.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	for _, arg := range args {
		params, ok := arg.(map[string]any)
		if !ok {
			continue
		}
		if fallback, ok := params["default"].(string); ok && strings.TrimSpace(fallback) != "" {
			return fallback
		}
	}
	return key
}

// Metadata hint keys consumed by LocalizeReportModel. Decorators write them;
// renderers see the already-localized values.
const (
	reportTitleKeyHint   = "titleKey"
	columnLabelKeyPrefix = "column.labelKey."
)

// LocalizeReportModel mutates the supplied report model in place, translating
// the title and column label `*Key` hints recorded in the model metadata.
//
// This is best-effort: missing keys are routed through opts.OnMissing and the
// prior value (or the key) stays in place.
func LocalizeReportModel(report *model.ReportModel, opts RenderOptions) {
	if report == nil || len(report.Metadata) == 0 {
		return
	}

	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}

	if key := strings.TrimSpace(report.Metadata[reportTitleKeyHint]); key != "" {
		report.Title = translate(opts.Locale, key, strings.TrimSpace(report.Title), opts.Translator, onMissing)
	}

	for i := range report.Columns {
		column := &report.Columns[i]
		key := strings.TrimSpace(report.Metadata[columnLabelKeyPrefix+column.Key])
		if key == "" {
			continue
		}
		column.Label = translate(opts.Locale, key, strings.TrimSpace(column.Label), opts.Translator, onMissing)
	}
}

// ColumnLabelKeyHint returns the metadata key holding the translation key for
// a column label. Decorators use it when applying view configuration.
func ColumnLabelKeyHint(columnKey string) string {
	return columnLabelKeyPrefix + columnKey
}

// TitleKeyHint is the metadata key holding the translation key for the report
// title.
const TitleKeyHint = reportTitleKeyHint

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	if t == nil {
		if onMissing != nil {
			return onMissing(locale, key, []any{map[string]any{"default": fallback}}, ErrMissingTranslator)
		}
		if strings.TrimSpace(fallback) != "" {
			return fallback
		}
		return key
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}

	if onMissing != nil {
		return onMissing(locale, key, []any{map[string]any{"default": fallback}}, err)
	}
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}
