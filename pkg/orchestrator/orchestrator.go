package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	internalLoader "github.com/goliatone/go-reportgen/internal/query/loader"
	"github.com/goliatone/go-reportgen/pkg/filter"
	"github.com/goliatone/go-reportgen/pkg/graphql"
	"github.com/goliatone/go-reportgen/pkg/model"
	"github.com/goliatone/go-reportgen/pkg/query"
	"github.com/goliatone/go-reportgen/pkg/render"
	"github.com/goliatone/go-reportgen/pkg/renderers/vanilla"
	"github.com/goliatone/go-reportgen/pkg/viewconfig"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom result-document loader.
func WithLoader(loader query.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParserOptions overrides the parser options passed to format adapters,
// e.g. to pin the result path inside deeply nested payloads.
func WithParserOptions(options ...query.ParserOption) Option {
	return func(o *Orchestrator) {
		o.parserOptions = query.NewParserOptions(options...)
	}
}

// WithBuilder injects a custom report model builder. A configured builder
// takes precedence over builder options derived from views and filters.
func WithBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithRowFilter compiles a CEL row predicate applied to every build unless a
// request carries its own Filter expression. Compilation failures surface on
// the first Generate call instead of panicking here.
func WithRowFilter(expr string) Option {
	return func(o *Orchestrator) {
		if strings.TrimSpace(expr) == "" {
			return
		}
		predicate, err := filter.Compile(expr)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: compile row filter: %w", err)
			return
		}
		o.rowFilter = predicate
	}
}

// WithFilterPredicate installs a pre-compiled row predicate.
func WithFilterPredicate(predicate filter.Predicate) Option {
	return func(o *Orchestrator) {
		o.rowFilter = predicate
	}
}

// WithTranslator supplies the default translator for renderers.
func WithTranslator(translator render.Translator) Option {
	return func(o *Orchestrator) {
		o.translator = translator
	}
}

// WithLocale sets the default render locale used when neither the request nor
// the view names one.
func WithLocale(locale string) Option {
	return func(o *Orchestrator) {
		o.locale = locale
	}
}

// WithModelTransformer registers a Transformer that can mutate report models
// after building but before view decorators run.
func WithModelTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithDecorators registers decorators that run against the report model after
// the view configuration has been applied.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithViewFS supplies an fs.FS holding view configuration documents. Pass nil
// to disable the embedded defaults.
func WithViewFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.viewFS = fsys
		o.viewFSSpecified = true
	}
}

// WithViewStore injects an already-loaded view store, bypassing WithViewFS.
func WithViewStore(store *viewconfig.Store) Option {
	return func(o *Orchestrator) {
		o.viewStore = store
	}
}

// WithAdapterRegistry replaces the format adapter registry. The default
// registry holds the GraphQL envelope adapter.
func WithAdapterRegistry(registry *AdapterRegistry) Option {
	return func(o *Orchestrator) {
		o.adapterRegistry = registry
	}
}

// WithDefaultFormat names the adapter used when detection finds no match.
func WithDefaultFormat(name string) Option {
	return func(o *Orchestrator) {
		o.defaultFormat = name
	}
}

// Orchestrator coordinates the full pipeline from query-result document to
// rendered report. It applies sensible defaults (GraphQL adapter, vanilla
// renderer, embedded views) while remaining open to dependency injection.
type Orchestrator struct {
	loader          query.Loader
	parserOptions   query.ParserOptions
	builder         model.Builder
	registry        *render.Registry
	defaultRenderer string
	adapterRegistry *AdapterRegistry
	defaultFormat   string
	rowFilter       filter.Predicate
	translator      render.Translator
	locale          string
	transformer     Transformer
	decorators      []model.Decorator
	viewFS          fs.FS
	viewFSSpecified bool
	viewStore       *viewconfig.Store
	themeSelector   ThemeSelector
	themeName       string
	themeVariant    string
	themeFallbacks  map[string]string
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a report from a query
// result.
type Request struct {
	// Source identifies where the result document lives. Optional when
	// Document is supplied.
	Source query.Source

	// Document allows callers to bypass the loader when they already hold the
	// raw payload.
	Document *query.Document

	// View selects a named view configuration. Empty skips view decoration.
	View string

	// Format names the input format adapter. Empty triggers payload detection
	// with a fallback to the configured default format.
	Format string

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// Filter is a CEL row predicate applied for this request only. It takes
	// precedence over the orchestrator-level and view-level filters.
	Filter string

	// ThemeName and ThemeVariant select the theme for this render. Empty
	// values fall back to the view's theme, then the configured defaults.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request instructions such as title overrides,
	// locale, or panel selection. When omitted, renderers receive defaults
	// derived from the orchestrator configuration and the view.
	RenderOptions render.RenderOptions
}

// Generate executes the loader → adapter → model builder → renderer sequence
// and returns the rendered bytes (HTML for the default vanilla renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	report, view, err := o.buildModel(ctx, req)
	if err != nil {
		return nil, err
	}

	opts := o.renderOptionsFor(req, view)
	if err := o.applyTheme(req, view, &opts); err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, report, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// BuildModel runs the pipeline up to (and including) decoration and returns
// the report model without rendering it.
func (o *Orchestrator) BuildModel(ctx context.Context, req Request) (model.ReportModel, error) {
	report, _, err := o.buildModel(ctx, req)
	return report, err
}

func (o *Orchestrator) buildModel(ctx context.Context, req Request) (model.ReportModel, viewconfig.View, error) {
	if ctx == nil {
		return model.ReportModel{}, viewconfig.View{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return model.ReportModel{}, viewconfig.View{}, err
	}
	if err := o.initialiseErr; err != nil {
		return model.ReportModel{}, viewconfig.View{}, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return model.ReportModel{}, viewconfig.View{}, err
		}
	}

	view, hasView, err := o.resolveView(req)
	if err != nil {
		return model.ReportModel{}, viewconfig.View{}, err
	}

	adapter, err := o.resolveAdapter(ctx, req)
	if err != nil {
		return model.ReportModel{}, viewconfig.View{}, err
	}

	doc, err := o.resolveDocument(ctx, req, adapter)
	if err != nil {
		return model.ReportModel{}, viewconfig.View{}, err
	}

	result, err := adapter.Parse(ctx, doc, o.parserOptions)
	if err != nil {
		return model.ReportModel{}, viewconfig.View{}, fmt.Errorf("orchestrator: parse result: %w", err)
	}

	builder, err := o.builderFor(req, view)
	if err != nil {
		return model.ReportModel{}, viewconfig.View{}, err
	}

	report, err := builder.Build(result)
	if err != nil {
		return model.ReportModel{}, viewconfig.View{}, fmt.Errorf("orchestrator: build report model: %w", err)
	}

	if err := o.applyTransformer(ctx, &report); err != nil {
		return model.ReportModel{}, viewconfig.View{}, err
	}
	if hasView {
		viewconfig.Apply(&report, view)
	}
	if err := o.applyDecorators(&report); err != nil {
		return model.ReportModel{}, viewconfig.View{}, err
	}

	return report, view, nil
}

func (o *Orchestrator) resolveView(req Request) (viewconfig.View, bool, error) {
	name := strings.TrimSpace(req.View)
	if name == "" {
		return viewconfig.View{}, false, nil
	}
	view, ok := o.viewStore.View(name)
	if !ok {
		return viewconfig.View{}, false, fmt.Errorf("orchestrator: view %q not found", name)
	}
	return view, true, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request, adapter query.FormatAdapter) (query.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return query.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := adapter.Load(ctx, req.Source)
	if err == nil {
		return doc, nil
	}
	if o.loader != nil {
		if doc, lerr := o.loader.Load(ctx, req.Source); lerr == nil {
			return doc, nil
		}
	}
	return query.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
}

// builderFor resolves the builder for one request. An injected builder wins
// outright; otherwise one is assembled from the view configuration with the
// row predicate resolved request-first, then orchestrator, then view.
func (o *Orchestrator) builderFor(req Request, view viewconfig.View) (model.Builder, error) {
	if o.builder != nil {
		return o.builder, nil
	}

	predicate := o.rowFilter
	expr := strings.TrimSpace(req.Filter)
	if expr == "" && predicate == nil {
		expr = strings.TrimSpace(view.Filter)
	}
	if expr != "" {
		compiled, err := filter.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: compile filter: %w", err)
		}
		predicate = compiled
	}

	options := []model.BuilderOption{
		model.WithEntityType(view.EntityType),
		model.WithTitle(view.Title),
	}
	if keys := view.Keys(); len(keys) > 0 {
		options = append(options, model.WithColumnKeys(keys...))
	}
	if predicate != nil {
		options = append(options, model.WithFilter(filter.RowPredicate(predicate)))
	}
	return model.NewBuilder(options...), nil
}

func (o *Orchestrator) renderOptionsFor(req Request, view viewconfig.View) render.RenderOptions {
	opts := req.RenderOptions
	if opts.Locale == "" {
		opts.Locale = view.Locale
	}
	if opts.Locale == "" {
		opts.Locale = o.locale
	}
	if opts.Translator == nil {
		opts.Translator = o.translator
	}
	if len(opts.Panels) == 0 && len(view.Panels) > 0 {
		opts.Panels = append([]string(nil), view.Panels...)
	}
	return opts
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDecorators(report *model.ReportModel) error {
	if len(o.decorators) == 0 || report == nil {
		return nil
	}
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(report); err != nil {
			return fmt.Errorf("orchestrator: decorate report: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, report *model.ReportModel) error {
	if o.transformer == nil || report == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, report); err != nil {
		return fmt.Errorf("orchestrator: transform report: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(query.NewLoaderOptions())
	}
	if o.adapterRegistry == nil {
		o.adapterRegistry = NewAdapterRegistry()
		o.adapterRegistry.MustRegister(graphql.NewAdapter(o.loader))
	}
	if o.defaultFormat == "" {
		o.defaultFormat = graphql.DefaultAdapterName
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.ensureViewStore()

	o.defaultsApplied = true
}

func (o *Orchestrator) ensureViewStore() {
	if o.viewStore != nil {
		return
	}
	if !o.viewFSSpecified && o.viewFS == nil {
		o.viewFS = viewconfig.EmbeddedFS()
	}

	store, err := viewconfig.LoadFS(o.viewFS)
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: load views: %w", err)
		return
	}
	o.viewStore = store
}
