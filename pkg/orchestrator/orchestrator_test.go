package orchestrator

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-reportgen/pkg/model"
	"github.com/goliatone/go-reportgen/pkg/query"
	"github.com/goliatone/go-reportgen/pkg/render"
)

const samplePayload = `{"data":{"allFactSheets":{"totalCount":3,"edges":[
	{"node":{"name":"App1","completion":{"completion":0.2}}},
	{"node":{"name":"App2","completion":{"completion":0.9}}},
	{"node":{"completion":{"completion":0.4}}}
]}}}`

func sampleDocument(t *testing.T) *query.Document {
	t.Helper()
	doc, err := query.NewDocument(query.SourceFromFS("sample.json"), []byte(samplePayload))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return &doc
}

type captureRenderer struct {
	report  model.ReportModel
	options render.RenderOptions
}

func (r *captureRenderer) Name() string        { return "capture" }
func (r *captureRenderer) ContentType() string { return "text/plain" }

func (r *captureRenderer) Render(_ context.Context, report model.ReportModel, opts render.RenderOptions) ([]byte, error) {
	r.report = report
	r.options = opts
	return []byte(report.Title), nil
}

func newCaptureOrchestrator(t *testing.T, options ...Option) (*Orchestrator, *captureRenderer) {
	t.Helper()
	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	base := []Option{
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithViewFS(nil),
	}
	return New(append(base, options...)...), renderer
}

func TestGenerate_DefaultPipeline(t *testing.T) {
	orch, renderer := newCaptureOrchestrator(t)

	_, err := orch.Generate(context.Background(), Request{Document: sampleDocument(t)})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	report := renderer.report
	if len(report.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(report.Rows))
	}
	if report.Rows[0].Name != "App1" || report.Rows[1].Name != "App2" {
		t.Errorf("unexpected row order: %+v", report.Rows)
	}
	if report.Average != "55.0%" {
		t.Errorf("average: want 55.0%%, got %s", report.Average)
	}
	if report.Skipped != 1 || report.TotalEdges != 3 {
		t.Errorf("counts: skipped=%d total=%d", report.Skipped, report.TotalEdges)
	}
	if renderer.options.Theme != nil {
		t.Errorf("expected no theme config by default")
	}
}

func TestGenerate_RequestFilter(t *testing.T) {
	orch, renderer := newCaptureOrchestrator(t)

	_, err := orch.Generate(context.Background(), Request{
		Document: sampleDocument(t),
		Filter:   "completionValue < 0.5",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	report := renderer.report
	if len(report.Rows) != 1 || report.Rows[0].Name != "App1" {
		t.Fatalf("expected only App1, got %+v", report.Rows)
	}
	if report.Average != "20.0%" {
		t.Errorf("average: want 20.0%%, got %s", report.Average)
	}
	// filtered-out rows still count against the edge totals
	if report.TotalEdges != 3 || report.Skipped != 1 {
		t.Errorf("counts: skipped=%d total=%d", report.Skipped, report.TotalEdges)
	}
}

func TestGenerate_BadRequestFilter(t *testing.T) {
	orch, _ := newCaptureOrchestrator(t)

	_, err := orch.Generate(context.Background(), Request{
		Document: sampleDocument(t),
		Filter:   "completionValue <",
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "orchestrator: compile filter") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGenerate_WithRowFilterOption(t *testing.T) {
	orch, renderer := newCaptureOrchestrator(t, WithRowFilter(`completionValue > 0.5`))

	_, err := orch.Generate(context.Background(), Request{Document: sampleDocument(t)})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(renderer.report.Rows) != 1 || renderer.report.Rows[0].Name != "App2" {
		t.Fatalf("expected only App2, got %+v", renderer.report.Rows)
	}
}

func TestGenerate_WithRowFilterCompileError(t *testing.T) {
	orch, _ := newCaptureOrchestrator(t, WithRowFilter(`completionValue >`))

	_, err := orch.Generate(context.Background(), Request{Document: sampleDocument(t)})
	if err == nil {
		t.Fatalf("expected deferred compile error")
	}
	if !strings.Contains(err.Error(), "orchestrator: compile row filter") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGenerate_ViewApplied(t *testing.T) {
	views := fstest.MapFS{
		"views.yaml": &fstest.MapFile{Data: []byte(`views:
  focus:
    title: Focus Report
    entityType: Application
    filter: "completionValue > 0.5"
    locale: de
    panels:
      - summary
    columns:
      - key: name
        label: Anwendung
`)},
	}

	orch, renderer := newCaptureOrchestrator(t, WithViewFS(views))

	_, err := orch.Generate(context.Background(), Request{
		Document: sampleDocument(t),
		View:     "focus",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	report := renderer.report
	if report.Title != "Focus Report" {
		t.Errorf("title: got %q", report.Title)
	}
	if report.EntityType != "Application" {
		t.Errorf("entity type: got %q", report.EntityType)
	}
	if len(report.Rows) != 1 || report.Rows[0].Name != "App2" {
		t.Errorf("expected view filter applied, got %+v", report.Rows)
	}
	if len(report.Columns) != 1 || report.Columns[0].Label != "Anwendung" {
		t.Errorf("expected narrowed columns, got %+v", report.Columns)
	}
	if renderer.options.Locale != "de" {
		t.Errorf("locale: got %q", renderer.options.Locale)
	}
	if len(renderer.options.Panels) != 1 || renderer.options.Panels[0] != "summary" {
		t.Errorf("panels: got %+v", renderer.options.Panels)
	}
}

func TestGenerate_UnknownView(t *testing.T) {
	orch, _ := newCaptureOrchestrator(t)

	_, err := orch.Generate(context.Background(), Request{
		Document: sampleDocument(t),
		View:     "missing",
	})
	if err == nil || !strings.Contains(err.Error(), `view "missing" not found`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerate_UnknownRenderer(t *testing.T) {
	orch, _ := newCaptureOrchestrator(t)

	_, err := orch.Generate(context.Background(), Request{
		Document: sampleDocument(t),
		Renderer: "pdf",
	})
	if err == nil || !strings.Contains(err.Error(), `renderer "pdf"`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerate_UnknownFormat(t *testing.T) {
	orch, _ := newCaptureOrchestrator(t)

	_, err := orch.Generate(context.Background(), Request{
		Document: sampleDocument(t),
		Format:   "csv",
	})
	if err == nil || !strings.Contains(err.Error(), `adapter "csv" not found`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerate_TransformerAndDecorators(t *testing.T) {
	transformer := TransformerFunc(func(_ context.Context, report *model.ReportModel) error {
		report.Title = "Transformed"
		return nil
	})
	decorator := model.DecoratorFunc(func(report *model.ReportModel) error {
		report.Metadata = model.MergeMetadata(report.Metadata, map[string]string{"decorated": "yes"})
		return nil
	})

	orch, renderer := newCaptureOrchestrator(t,
		WithModelTransformer(transformer),
		WithDecorators(decorator),
	)

	_, err := orch.Generate(context.Background(), Request{Document: sampleDocument(t)})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if renderer.report.Title != "Transformed" {
		t.Errorf("title: got %q", renderer.report.Title)
	}
	if renderer.report.Metadata["decorated"] != "yes" {
		t.Errorf("decorator did not run: %+v", renderer.report.Metadata)
	}
}

func TestBuildModel(t *testing.T) {
	orch, _ := newCaptureOrchestrator(t)

	report, err := orch.BuildModel(context.Background(), Request{Document: sampleDocument(t)})
	if err != nil {
		t.Fatalf("build model: %v", err)
	}
	if len(report.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(report.Rows))
	}
}

func TestGenerate_RequiresSourceOrDocument(t *testing.T) {
	orch, _ := newCaptureOrchestrator(t)

	_, err := orch.Generate(context.Background(), Request{})
	if err == nil || !strings.Contains(err.Error(), "source or document is required") {
		t.Fatalf("unexpected error: %v", err)
	}
}
