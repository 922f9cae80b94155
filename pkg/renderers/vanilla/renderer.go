package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-reportgen/pkg/model"
	"github.com/goliatone/go-reportgen/pkg/panels"
	"github.com/goliatone/go-reportgen/pkg/render"
	rendertemplate "github.com/goliatone/go-reportgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-reportgen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-reportgen/pkg/viewconfig"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	templateFuncs    map[string]any
	panelRegistry    *panels.Registry
	panelNames       []string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTemplateFuncs registers helper functions or filters on the default
// template engine. Ignored when a custom renderer is injected.
func WithTemplateFuncs(funcs map[string]any) Option {
	return func(cfg *config) {
		if len(funcs) == 0 {
			return
		}
		if cfg.templateFuncs == nil {
			cfg.templateFuncs = make(map[string]any, len(funcs))
		}
		for name, fn := range funcs {
			cfg.templateFuncs[name] = fn
		}
	}
}

// WithPanelRegistry replaces the built-in panel registry.
func WithPanelRegistry(registry *panels.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.panelRegistry = registry
		}
	}
}

// WithPanels narrows the default panel selection, in render order. Requests
// can still override per render via RenderOptions.Panels.
func WithPanels(names ...string) Option {
	return func(cfg *config) {
		cfg.panelNames = append([]string(nil), names...)
	}
}

// Renderer produces standalone HTML reports from embedded pongo2 templates.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	panels     *panels.Registry
	panelNames []string
}

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:    TemplatesFS(),
		panelRegistry: panels.NewRegistry(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
			gotemplate.WithTemplateFunc(cfg.templateFuncs),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:  renderer,
		panels:     cfg.panelRegistry,
		panelNames: cfg.panelNames,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the full HTML document: header, table, then the selected
// debug panels. Output is deterministic for a given model and options.
func (r *Renderer) Render(_ context.Context, report model.ReportModel, opts render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	// localization and sanitizing mutate labels and names; detach from the
	// caller's slices first
	report.Columns = append([]model.Column(nil), report.Columns...)
	report.Rows = append([]model.Row(nil), report.Rows...)

	render.LocalizeReportModel(&report, opts)
	sanitizeReport(&report)
	if opts.Title != "" {
		report.Title = sanitizeText(opts.Title)
	}

	selected, err := r.selectPanels(opts)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: %w", err)
	}

	locale := opts.Locale
	if locale == "" {
		locale = "en"
	}

	data := map[string]any{
		"report":   report,
		"locale":   locale,
		"panels":   r.panelContext(selected, locale, opts),
		"warnings": render.WarningLines(report),
		"subtitle": report.Metadata[viewconfig.SubtitleMetadataKey],
		"icon":     report.Metadata[viewconfig.IconMetadataKey],
	}
	r.applyTheme(data, opts)

	result, err := r.templates.RenderTemplate("templates/report.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) selectPanels(opts render.RenderOptions) ([]panels.Panel, error) {
	names := opts.Panels
	if len(names) == 0 {
		names = r.panelNames
	}
	if r.panels == nil {
		return nil, nil
	}
	return r.panels.Select(names)
}

func (r *Renderer) panelContext(selected []panels.Panel, locale string, opts render.RenderOptions) []map[string]any {
	out := make([]map[string]any, 0, len(selected))
	for _, panel := range selected {
		title := model.DefaultLabeler(panel.Name)
		if opts.Translator != nil && panel.TitleKey != "" {
			if msg, err := opts.Translator.Translate(locale, panel.TitleKey); err == nil && msg != "" {
				title = msg
			}
		}
		out = append(out, map[string]any{
			"name":        panel.Name,
			"title":       title,
			"partialFile": "templates/" + panel.Partial + ".tmpl",
		})
	}
	return out
}

func (r *Renderer) applyTheme(data map[string]any, opts render.RenderOptions) {
	stylesheetHref := "assets/" + StylesheetName
	themeName := ""
	cssVars := ""

	if opts.Theme != nil {
		themeName = opts.Theme.Theme
		cssVars = cssVarBlock(opts.Theme.CSSVars)
		if opts.Theme.AssetURL != nil {
			if href := opts.Theme.AssetURL(StylesheetName); href != "" {
				stylesheetHref = href
			}
		}
	}

	data["themeName"] = themeName
	data["cssVars"] = cssVars
	data["embedCSS"] = opts.EmbedCSS
	data["stylesheetHref"] = stylesheetHref
	if opts.EmbedCSS {
		data["stylesheet"] = defaultStylesheet()
	} else {
		data["stylesheet"] = ""
	}
}
