package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-reportgen/pkg/model"
	"github.com/goliatone/go-reportgen/pkg/render"
)

func sampleReport() model.ReportModel {
	return model.ReportModel{
		Columns: []model.Column{
			{Key: "name", Label: "Name"},
			{Key: "completion", Label: "Completion"},
		},
		Rows: []model.Row{
			{Name: "App1", Completion: "20.0%", CompletionValue: 0.2},
			{Name: "App2", Completion: "5.0%", CompletionValue: 0.05},
		},
		Metadata: map[string]string{
			render.ColumnLabelKeyHint("name"):       "report.column.name",
			render.ColumnLabelKeyHint("completion"): "report.column.completion",
			"viewName":                              "default",
		},
	}
}

func TestSubset(t *testing.T) {
	report := sampleReport()

	got := render.Subset(report, "completion", "bogus", "completion")

	wantColumns := []model.Column{{Key: "completion", Label: "Completion"}}
	if diff := cmp.Diff(wantColumns, got.Columns); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}

	wantMetadata := map[string]string{
		render.ColumnLabelKeyHint("completion"): "report.column.completion",
		"viewName":                              "default",
	}
	if diff := cmp.Diff(wantMetadata, got.Metadata); diff != "" {
		t.Errorf("metadata mismatch (-want +got):\n%s", diff)
	}

	// rows are untouched; renderers consult the column list
	if len(got.Rows) != 2 {
		t.Errorf("expected rows preserved, got %d", len(got.Rows))
	}
}

func TestSubset_NoKeysReturnsReportUnchanged(t *testing.T) {
	report := sampleReport()
	got := render.Subset(report)
	if diff := cmp.Diff(report, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestSubset_PreservesRequestedOrder(t *testing.T) {
	got := render.Subset(sampleReport(), "completion", "name")
	want := []string{"completion", "name"}
	keys := make([]string, 0, len(got.Columns))
	for _, column := range got.Columns {
		keys = append(keys, column.Key)
	}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}
