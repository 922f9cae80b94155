package orchestrator

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-reportgen/pkg/render"
	"github.com/goliatone/go-reportgen/pkg/viewconfig"
)

// ThemeSelector aliases the go-theme selector interface.
type ThemeSelector = theme.ThemeSelector

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// generated reports pick up partial overrides, design tokens, and asset URLs.
func WithThemeSelector(selector ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeProvider installs a go-theme provider together with the theme and
// variant applied when a request names neither. The provider must implement
// the selector contract (theme.NewRegistry does).
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) Option {
	return func(o *Orchestrator) {
		selector, ok := provider.(ThemeSelector)
		if !ok {
			o.initialiseErr = errors.New("orchestrator: theme provider does not implement selection")
			return
		}
		o.themeSelector = selector
		o.themeName = defaultTheme
		o.themeVariant = defaultVariant
	}
}

// WithThemeFallbacks overrides the partial mapping used when a selected theme
// does not supply its own template for a slot.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		if len(fallbacks) == 0 {
			return
		}
		if o.themeFallbacks == nil {
			o.themeFallbacks = make(map[string]string, len(fallbacks))
		}
		for slot, partial := range fallbacks {
			o.themeFallbacks[slot] = partial
		}
	}
}

// defaultThemeFallbacks maps the report template slots onto the embedded
// vanilla partials. Theme manifests override individual slots.
func defaultThemeFallbacks() map[string]string {
	return map[string]string{
		"report.layout":        "templates/report.tmpl",
		"report.table":         "templates/table.tmpl",
		"report.panel.summary": "templates/panel_summary.tmpl",
		"report.panel.columns": "templates/panel_columns.tmpl",
		"report.panel.average": "templates/panel_average.tmpl",
	}
}

// applyTheme resolves the theme for one request and attaches the renderer
// configuration to the options. Precedence: request, view, configured
// defaults. Options that already carry a theme config are left alone.
func (o *Orchestrator) applyTheme(req Request, view viewconfig.View, opts *render.RenderOptions) error {
	if o.themeSelector == nil || opts.Theme != nil {
		return nil
	}

	name := firstNonEmpty(req.ThemeName, view.Theme, o.themeName)
	if name == "" {
		return nil
	}
	variant := firstNonEmpty(req.ThemeVariant, view.ThemeVariant, o.themeVariant)

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil
	}

	fallbacks := o.themeFallbacks
	if fallbacks == nil {
		fallbacks = defaultThemeFallbacks()
	}
	opts.Theme = themeConfig(selection, fallbacks)
	return nil
}

// themeConfig flattens a theme selection into the renderer configuration:
// fallback partials overlaid with manifest and variant templates, tokens
// merged variant-last, CSS variables derived from the merged tokens, and an
// asset resolver rooted at the manifest's asset prefix.
func themeConfig(selection *theme.Selection, fallbacks map[string]string) *render.ThemeConfig {
	cfg := &render.ThemeConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: make(map[string]string, len(fallbacks)),
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
	}
	for slot, partial := range fallbacks {
		cfg.Partials[slot] = partial
	}

	manifest := selection.Manifest
	if manifest == nil {
		cfg.AssetURL = func(string) string { return "" }
		return cfg
	}

	for slot, partial := range manifest.Templates {
		cfg.Partials[slot] = partial
	}
	for token, value := range manifest.Tokens {
		cfg.Tokens[token] = value
	}

	assetFiles := make(map[string]string, len(manifest.Assets.Files))
	for name, file := range manifest.Assets.Files {
		assetFiles[name] = file
	}

	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for slot, partial := range variant.Templates {
			cfg.Partials[slot] = partial
		}
		for token, value := range variant.Tokens {
			cfg.Tokens[token] = value
		}
		for name, file := range variant.Assets.Files {
			assetFiles[name] = file
		}
	}

	for token, value := range cfg.Tokens {
		cfg.CSSVars["--"+token] = value
	}

	prefix := strings.TrimSuffix(manifest.Assets.Prefix, "/")
	cfg.AssetURL = func(name string) string {
		file, ok := assetFiles[name]
		if !ok || file == "" {
			return ""
		}
		return prefix + "/" + file
	}

	return cfg
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
