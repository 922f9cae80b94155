package render

import theme "github.com/goliatone/go-theme"

// ThemeConfig aliases the go-theme renderer configuration: resolved partials,
// design tokens, derived CSS variables, and the asset URL resolver. The
// orchestrator produces one from a theme selection; renderers only read it.
type ThemeConfig = theme.RendererConfig

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the report model pipeline.
type RenderOptions struct {
	// Title overrides the model title for this render only.
	Title string

	// Locale selects the translation locale for column labels and panel
	// titles. Empty means the translator's default.
	Locale string

	// Translator resolves label keys. Nil is valid; renderers fall back to
	// the keys themselves (optionally routed through OnMissing).
	Translator Translator

	// OnMissing controls the string emitted when a translation is missing.
	OnMissing MissingTranslationHandler

	// Theme carries the resolved theme configuration, when one was selected.
	Theme *ThemeConfig

	// Panels narrows which debug panels are rendered, in the given order.
	// Empty means the renderer's default panel set.
	Panels []string

	// EmbedCSS inlines the stylesheet into HTML output instead of emitting a
	// link tag, for single-file reports.
	EmbedCSS bool
}
