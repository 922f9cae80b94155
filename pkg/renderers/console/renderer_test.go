package console_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-reportgen/pkg/model"
	"github.com/goliatone/go-reportgen/pkg/panels"
	"github.com/goliatone/go-reportgen/pkg/render"
	"github.com/goliatone/go-reportgen/pkg/renderers/console"
)

func sampleReport() model.ReportModel {
	return model.ReportModel{
		Title: "Application Completion",
		Columns: []model.Column{
			{Key: "name", Label: "Name"},
			{Key: "completion", Label: "Completion"},
		},
		Rows: []model.Row{
			{Name: "App1", Completion: "20.0%", CompletionValue: 0.2},
			{Name: "Application Two", Completion: "90.0%", CompletionValue: 0.9},
		},
		Average:      "55.0%",
		AverageValue: 0.55,
		AverageValid: true,
		TotalEdges:   3,
		Skipped:      1,
		Warnings: []model.Warning{
			{Edge: 2, Reason: "node has no name"},
		},
	}
}

func renderPlain(t *testing.T, report model.ReportModel, opts render.RenderOptions) string {
	t.Helper()

	renderer, err := console.New(console.WithColor(false))
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
	renderer, err := console.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != "console" {
		t.Errorf("unexpected name %q", renderer.Name())
	}
	if renderer.ContentType() != "text/plain; charset=utf-8" {
		t.Errorf("unexpected content type %q", renderer.ContentType())
	}
}

func TestRenderer_Render(t *testing.T) {
	out := renderPlain(t, sampleReport(), render.RenderOptions{})

	for _, want := range []string{
		"Application Completion\n",
		"Name             Completion\n",
		"App1                  20.0%\n",
		"Application Two       90.0%\n",
		"rows: 2  edges: 3  skipped: 1",
		"- edge 2: node has no name",
		"name: Name",
		"Average\n  55.0%\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderer_PanelSelection(t *testing.T) {
	out := renderPlain(t, sampleReport(), render.RenderOptions{
		Panels: []string{panels.PanelAverage},
	})

	if strings.Contains(out, "Summary") {
		t.Errorf("expected summary suppressed:\n%s", out)
	}
	if !strings.Contains(out, "Average") {
		t.Errorf("expected average rendered:\n%s", out)
	}

	renderer, err := console.New(console.WithColor(false))
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
	report.AverageValid = false

	out := renderPlain(t, report, render.RenderOptions{})

	if !strings.Contains(out, "Average\n  n/a\n") {
		t.Errorf("expected sentinel average, got:\n%s", out)
	}
}

type fakeDriver struct {
	selections []int
	confirms   []bool
	infos      []string
	selectErr  error
}

func (d *fakeDriver) Select(_ context.Context, cfg console.SelectConfig) (int, error) {
	if d.selectErr != nil {
		return 0, d.selectErr
	}
	if len(d.selections) == 0 {
		return -1, nil
	}
	idx := d.selections[0]
	d.selections = d.selections[1:]
	return idx, nil
}

func (d *fakeDriver) Confirm(_ context.Context, cfg console.ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		return false, nil
	}
	out := d.confirms[0]
	d.confirms = d.confirms[1:]
	return out, nil
}

func (d *fakeDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func TestRenderer_Explore(t *testing.T) {
	driver := &fakeDriver{
		selections: []int{0, 1},
		confirms:   []bool{true, false},
	}

	renderer, err := console.New(console.WithColor(false), console.WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	if err := renderer.Explore(context.Background(), sampleReport()); err != nil {
		t.Fatalf("explore: %v", err)
	}

	if len(driver.infos) != 2 {
		t.Fatalf("expected two row details, got %d", len(driver.infos))
	}
	if !strings.Contains(driver.infos[0], "App1") || !strings.Contains(driver.infos[0], "band low") {
		t.Errorf("unexpected detail %q", driver.infos[0])
	}
	if !strings.Contains(driver.infos[1], "Application Two") {
		t.Errorf("unexpected detail %q", driver.infos[1])
	}
}

func TestRenderer_ExploreAborted(t *testing.T) {
	driver := &fakeDriver{selectErr: console.ErrAborted}

	renderer, err := console.New(console.WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	if err := renderer.Explore(context.Background(), sampleReport()); err != console.ErrAborted {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}
