package panels_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-reportgen/pkg/panels"
)

func TestRegistry_Builtins(t *testing.T) {
	registry := panels.NewRegistry()

	want := []string{panels.PanelSummary, panels.PanelColumns, panels.PanelAverage}
	if diff := cmp.Diff(want, registry.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	summary, ok := registry.Get(panels.PanelSummary)
	if !ok {
		t.Fatalf("expected summary panel")
	}
	if summary.Partial != "panel_summary" {
		t.Errorf("unexpected partial %q", summary.Partial)
	}
	if !summary.Default {
		t.Errorf("expected summary to be a default panel")
	}
}

func TestRegistry_Register(t *testing.T) {
	registry := panels.NewEmptyRegistry()

	if err := registry.Register(panels.Panel{Name: "warnings"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(panels.Panel{Name: "warnings"}); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := registry.Register(panels.Panel{}); err == nil {
		t.Fatalf("expected empty name to fail")
	}
	if !registry.Has("warnings") {
		t.Fatalf("expected warnings panel registered")
	}
}

func TestRegistry_Select(t *testing.T) {
	registry := panels.NewRegistry()

	selected, err := registry.Select([]string{panels.PanelAverage, panels.PanelSummary})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	got := make([]string, 0, len(selected))
	for _, panel := range selected {
		got = append(got, panel.Name)
	}
	if diff := cmp.Diff([]string{panels.PanelAverage, panels.PanelSummary}, got); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}

	if _, err := registry.Select([]string{"bogus"}); err == nil {
		t.Fatalf("expected unknown panel error")
	}

	defaults, err := registry.Select(nil)
	if err != nil {
		t.Fatalf("select defaults: %v", err)
	}
	if len(defaults) != 3 {
		t.Fatalf("expected 3 default panels, got %d", len(defaults))
	}
}
