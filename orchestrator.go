package reportgen

import (
	"context"

	"github.com/goliatone/go-reportgen/pkg/orchestrator"
	"github.com/goliatone/go-reportgen/pkg/query"
	"github.com/goliatone/go-reportgen/pkg/render"
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describes per-request overrides that renderers can use to
// retitle, localize, or theme the rendered report.
type RenderOptions = render.RenderOptions

// Request aliases the orchestrator request for callers driving the pipeline
// through the root package.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module so simple callers never import the sub-packages.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML loads the query-result source, builds the report model with
// the named view applied, and renders it with the default HTML renderer. It
// is the simplest entry point for callers that just want HTML output.
func GenerateHTML(ctx context.Context, source query.Source, viewName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source: source,
		View:   viewName,
	})
}

// GenerateHTMLFromDocument renders a report using a pre-loaded document,
// bypassing the loader stage while still delegating to the orchestrator.
func GenerateHTMLFromDocument(ctx context.Context, doc query.Document, viewName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document: &doc,
		View:     viewName,
	})
}

// WithRowFilter forwards a CEL row predicate expression to the orchestrator.
func WithRowFilter(expr string) orchestrator.Option {
	return orchestrator.WithRowFilter(expr)
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeProvider constructs a go-theme selector from a ThemeProvider and
// registers it with the orchestrator so renderers receive resolved partials,
// tokens, and assets.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) orchestrator.Option {
	return orchestrator.WithThemeProvider(provider, defaultTheme, defaultVariant)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}
