package vanilla_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-reportgen/pkg/model"
	"github.com/goliatone/go-reportgen/pkg/panels"
	"github.com/goliatone/go-reportgen/pkg/render"
	"github.com/goliatone/go-reportgen/pkg/renderers/vanilla"
)

func sampleReport() model.ReportModel {
	return model.ReportModel{
		EntityType: "Application",
		Title:      "Application Completion",
		Columns: []model.Column{
			{Key: "name", Label: "Name"},
			{Key: "completion", Label: "Completion"},
		},
		Rows: []model.Row{
			{Name: "App1", Completion: "20.0%", CompletionValue: 0.2},
			{Name: "App2", Completion: "90.0%", CompletionValue: 0.9},
		},
		Average:      "55.0%",
		AverageValue: 0.55,
		AverageValid: true,
		TotalEdges:   3,
		Skipped:      1,
		Warnings: []model.Warning{
			{Edge: 2, Reason: "node has no completion record"},
		},
	}
}

func renderHTML(t *testing.T, report model.ReportModel, opts render.RenderOptions, options ...vanilla.Option) string {
	t.Helper()

	renderer, err := vanilla.New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(context.Background(), report, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRenderer_Identity(t *testing.T) {
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != "vanilla" {
		t.Errorf("unexpected name %q", renderer.Name())
	}
	if renderer.ContentType() != "text/html; charset=utf-8" {
		t.Errorf("unexpected content type %q", renderer.ContentType())
	}
}

func TestRenderer_RenderTable(t *testing.T) {
	html := renderHTML(t, sampleReport(), render.RenderOptions{})

	for _, want := range []string{
		`<h1 class="rg-title">Application Completion</h1>`,
		`data-rows="2"`,
		`<th class="rg-col-name">Name</th>`,
		`<th class="rg-col-completion">Completion</th>`,
		`App1`,
		`20.0%`,
		`rg-band-low`,
		`rg-band-high`,
		`data-entity-type="Application"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestRenderer_RenderPanels(t *testing.T) {
	html := renderHTML(t, sampleReport(), render.RenderOptions{})

	for _, want := range []string{
		`rg-panel-summary`,
		`rg-panel-columns`,
		`rg-panel-average`,
		`data-total-edges="3"`,
		`data-skipped="1"`,
		`edge 2: node has no completion record`,
		`55.0%`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestRenderer_PanelSelection(t *testing.T) {
	html := renderHTML(t, sampleReport(), render.RenderOptions{
		Panels: []string{panels.PanelAverage},
	})

	if strings.Contains(html, "rg-panel-summary") {
		t.Errorf("expected summary panel suppressed")
	}
	if !strings.Contains(html, "rg-panel-average") {
		t.Errorf("expected average panel rendered")
	}

	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if _, err := renderer.Render(context.Background(), sampleReport(), render.RenderOptions{
		Panels: []string{"bogus"},
	}); err == nil {
		t.Fatalf("expected unknown panel error")
	}
}

func TestRenderer_AverageSentinel(t *testing.T) {
	report := sampleReport()
	report.Rows = nil
	report.Average = model.NotAvailable
	report.AverageValue = 0
	report.AverageValid = false

	html := renderHTML(t, report, render.RenderOptions{})

	if !strings.Contains(html, "rg-average-na") {
		t.Errorf("expected n/a styling on average")
	}
	if !strings.Contains(html, ">n/a</p>") {
		t.Errorf("expected sentinel rendered")
	}
}

func TestRenderer_SanitizesNames(t *testing.T) {
	report := sampleReport()
	report.Rows[0].Name = `<script>alert(1)</script>App1`

	html := renderHTML(t, report, render.RenderOptions{})

	if strings.Contains(html, "script>") {
		t.Errorf("expected script stripped from output")
	}
	if !strings.Contains(html, "App1") {
		t.Errorf("expected name text preserved")
	}
}

func TestRenderer_DoesNotMutateInput(t *testing.T) {
	report := sampleReport()
	report.Metadata = map[string]string{
		render.ColumnLabelKeyHint("name"): "report.column.name",
	}

	_ = renderHTML(t, report, render.RenderOptions{
		Locale: "es-ES",
		Translator: render.TranslatorFunc(func(locale, key string, _ ...any) (string, error) {
			return "Nombre", nil
		}),
	})

	if report.Columns[0].Label != "Name" {
		t.Errorf("caller columns mutated: %q", report.Columns[0].Label)
	}
}

func TestRenderer_EmbedCSS(t *testing.T) {
	html := renderHTML(t, sampleReport(), render.RenderOptions{EmbedCSS: true})

	if strings.Contains(html, `<link rel="stylesheet"`) {
		t.Errorf("expected no stylesheet link with embedded CSS")
	}
	if !strings.Contains(html, "--rg-color-bg") {
		t.Errorf("expected stylesheet inlined")
	}
}

func TestRenderer_Theme(t *testing.T) {
	theme := render.ThemeConfig{
		Theme: "dark",
		CSSVars: map[string]string{
			"--rg-color-bg": "#111827",
		},
		AssetURL: func(name string) string {
			return "/static/dark/" + name
		},
	}

	html := renderHTML(t, sampleReport(), render.RenderOptions{Theme: &theme})

	for _, want := range []string{
		`rg-theme-dark`,
		`--rg-color-bg: #111827;`,
		`href="/static/dark/report.css"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestRenderer_TranslatedTitleAndLabels(t *testing.T) {
	report := sampleReport()
	report.Metadata = map[string]string{
		render.TitleKeyHint:               "report.title",
		render.ColumnLabelKeyHint("name"): "report.column.name",
	}

	messages := map[string]string{
		"report.title":       "Avance de Aplicaciones",
		"report.column.name": "Nombre",
	}

	html := renderHTML(t, report, render.RenderOptions{
		Locale: "es-ES",
		Translator: render.TranslatorFunc(func(_, key string, _ ...any) (string, error) {
			return messages[key], nil
		}),
	})

	if !strings.Contains(html, "Avance de Aplicaciones") {
		t.Errorf("expected translated title")
	}
	if !strings.Contains(html, `<th class="rg-col-name">Nombre</th>`) {
		t.Errorf("expected translated column label")
	}
}
