package viewconfig_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-reportgen/pkg/viewconfig"
)

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"views.yaml": &fstest.MapFile{Data: []byte(`
views:
  default:
    title: Application Completion
    entityType: Application
    columns:
      - key: name
        labelKey: report.column.name
      - key: completion
    filter: completionValue < 0.1
    panels: [summary, average]
`)},
		"extra.json": &fstest.MapFile{Data: []byte(`{
  "views": {
    "json-view": {"title": "From JSON", "columns": [{"key": "name"}]}
  }
}`)},
		"notes.txt": &fstest.MapFile{Data: []byte("ignored")},
	}

	store, err := viewconfig.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff([]string{"default", "json-view"}, store.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	view, ok := store.View("default")
	if !ok {
		t.Fatalf("expected default view")
	}
	if view.Title != "Application Completion" {
		t.Errorf("unexpected title %q", view.Title)
	}
	if view.Filter != "completionValue < 0.1" {
		t.Errorf("unexpected filter %q", view.Filter)
	}
	if diff := cmp.Diff([]string{"name", "completion"}, view.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if view.Columns[0].LabelKey != "report.column.name" {
		t.Errorf("unexpected labelKey %q", view.Columns[0].LabelKey)
	}
	if diff := cmp.Diff([]string{"summary", "average"}, view.Panels); diff != "" {
		t.Errorf("panels mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS_DuplicateView(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte("views:\n  default:\n    title: A\n")},
		"b.yaml": &fstest.MapFile{Data: []byte("views:\n  default:\n    title: B\n")},
	}

	if _, err := viewconfig.LoadFS(fsys); err == nil {
		t.Fatalf("expected duplicate view error")
	}
}

func TestLoadFS_DuplicateColumn(t *testing.T) {
	fsys := fstest.MapFS{
		"views.yaml": &fstest.MapFile{Data: []byte(`
views:
  broken:
    columns:
      - key: name
      - key: name
`)},
	}

	_, err := viewconfig.LoadFS(fsys)
	if err == nil || !strings.Contains(err.Error(), "duplicate column") {
		t.Fatalf("expected duplicate column error, got %v", err)
	}
}

func TestLoadFS_NilFS(t *testing.T) {
	store, err := viewconfig.LoadFS(nil)
	if err != nil {
		t.Fatalf("load nil fs: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
}

func TestLoadFS_SanitizesIcon(t *testing.T) {
	fsys := fstest.MapFS{
		"views.yaml": &fstest.MapFile{Data: []byte(`
views:
  default:
    icon: '<svg viewBox="0 0 16 16"><script>alert(1)</script><path d="M0 0h16"/></svg>'
`)},
	}

	store, err := viewconfig.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	view, _ := store.View("default")
	if strings.Contains(view.Icon, "script") {
		t.Errorf("expected script stripped from icon, got %q", view.Icon)
	}
	if !strings.Contains(view.Icon, "<path") {
		t.Errorf("expected path preserved in icon, got %q", view.Icon)
	}
}

func TestEmbeddedFS(t *testing.T) {
	store, err := viewconfig.LoadFS(viewconfig.EmbeddedFS())
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}

	view, ok := store.View("default")
	if !ok {
		t.Fatalf("expected embedded default view")
	}
	if diff := cmp.Diff([]string{"name", "completion"}, view.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	low, ok := store.View("low-completion")
	if !ok {
		t.Fatalf("expected embedded low-completion view")
	}
	if low.Filter == "" {
		t.Errorf("expected low-completion filter expression")
	}
}
