package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-reportgen/pkg/model"
	"github.com/goliatone/go-reportgen/pkg/query"
)

func TestNewBuilder_AppliesOptions(t *testing.T) {
	builder := model.NewBuilder(
		model.WithEntityType("application"),
		model.WithTitle("Completion Report"),
		model.WithFilter(func(row model.Row) (bool, error) {
			return row.CompletionValue < 0.1, nil
		}),
		model.WithMetadata(map[string]string{"view": "default"}),
	)

	report, err := builder.Build(query.Result{Edges: []query.Edge{
		{Node: query.Node{Name: "App1", Completion: &query.Completion{Completion: 0.2}}},
		{Node: query.Node{Name: "App2", Completion: &query.Completion{Completion: 0.05}}},
	}})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if report.EntityType != "application" {
		t.Fatalf("entity type: got %s", report.EntityType)
	}
	if report.Title != "Completion Report" {
		t.Fatalf("title: got %s", report.Title)
	}
	if report.Metadata["view"] != "default" {
		t.Fatalf("metadata not applied: %+v", report.Metadata)
	}

	wantRows := []model.Row{{Name: "App2", Completion: "5.0%", CompletionValue: 0.05}}
	if diff := cmp.Diff(wantRows, report.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
	if report.Average != "5.0%" {
		t.Fatalf("average: got %s", report.Average)
	}
}

func TestNewBuilder_DefaultColumns(t *testing.T) {
	report, err := model.NewBuilder().Build(query.Result{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := []model.Column{
		{Key: "name", Label: "Name"},
		{Key: "completion", Label: "Completion"},
	}
	if diff := cmp.Diff(want, report.Columns); diff != "" {
		t.Fatalf("columns mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeMetadata(t *testing.T) {
	dst := map[string]string{"a": "1"}
	got := model.MergeMetadata(dst, map[string]string{"b": "2", "a": "3"})
	want := map[string]string{"a": "3", "b": "2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
	if model.MergeMetadata(nil, nil) != nil {
		t.Fatalf("expected nil result for empty merge")
	}
}

func TestZero(t *testing.T) {
	zero := model.Zero()
	if len(zero.Rows) != 0 {
		t.Fatalf("zero model carries rows")
	}
	if zero.Average != model.NotAvailable {
		t.Fatalf("zero average: got %q", zero.Average)
	}
}
